// Package refcode generates the short human-readable codes handed out to
// guests: booking codes (RSV-XXXXXX) and transaction references (TX-XXXXXX).
// Codes are random, not sequential; collision probability over 36^6 values is
// accepted as negligible and is additionally backstopped by unique indexes.
package refcode

import (
	"crypto/rand"
	"fmt"
)

const (
	ReservationPrefix = "RSV"
	TransactionPrefix = "TX"

	suffixLen = 6
	alphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

func New(prefix string) (string, error) {
	buf := make([]byte, suffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("refcode: crypto/rand unavailable: %w", err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return prefix + "-" + string(buf), nil
}

func NewReservationCode() (string, error) {
	return New(ReservationPrefix)
}

func NewTransactionReference() (string, error) {
	return New(TransactionPrefix)
}
