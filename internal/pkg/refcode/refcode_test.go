//go:build unit

package refcode_test

import (
	"regexp"
	"testing"

	"loca-api/internal/pkg/refcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	reservationPattern := regexp.MustCompile(`^RSV-[A-Z0-9]{6}$`)
	transactionPattern := regexp.MustCompile(`^TX-[A-Z0-9]{6}$`)

	for i := 0; i < 100; i++ {
		code, err := refcode.NewReservationCode()
		require.NoError(t, err)
		assert.Regexp(t, reservationPattern, code)

		ref, err := refcode.NewTransactionReference()
		require.NoError(t, err)
		assert.Regexp(t, transactionPattern, ref)
	}
}

func TestNewIsNotConstant(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code, err := refcode.NewReservationCode()
		require.NoError(t, err)
		seen[code] = struct{}{}
	}
	// 50 draws from 36^6 values colliding down to one would mean rand is broken
	require.Greater(t, len(seen), 1)
}
