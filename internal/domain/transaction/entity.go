package transaction

import (
	"errors"
	"time"

	"loca-api/internal/domain/shared/payment"

	"github.com/google/uuid"
)

var (
	ErrInvalidChannel = errors.New("invalid payment channel")
	ErrInvalidAmount  = errors.New("transaction amount must be positive")
	ErrInvalidStatus  = errors.New("invalid transaction status")
	ErrInvalidState   = errors.New("invalid payment state")
)

type Transaction struct {
	id                uuid.UUID
	reservationID     uuid.UUID
	channel           Channel
	nomMobileMoney    *string
	numeroMobileMoney *string
	reference         string
	montant           int64
	devise            string
	statut            Status
	etat              payment.State
	dateTransaction   time.Time
}

// NewTransaction is the payment record created atomically with its
// reservation at booking time: pending status, unpaid state.
func NewTransaction(
	reservationID uuid.UUID,
	channel Channel,
	reference string,
	montant int64,
	devise string,
	nomMobileMoney, numeroMobileMoney *string,
	now time.Time,
) (*Transaction, error) {
	if !channel.IsValid() {
		return nil, ErrInvalidChannel
	}
	if montant <= 0 {
		return nil, ErrInvalidAmount
	}

	return &Transaction{
		id:                uuid.New(),
		reservationID:     reservationID,
		channel:           channel,
		nomMobileMoney:    nomMobileMoney,
		numeroMobileMoney: numeroMobileMoney,
		reference:         reference,
		montant:           montant,
		devise:            devise,
		statut:            StatusPending,
		etat:              payment.StateUnpaid,
		dateTransaction:   now,
	}, nil
}

func ReconstructTransaction(
	id, reservationID uuid.UUID,
	channel Channel,
	reference string,
	montant int64,
	devise string,
	nomMobileMoney, numeroMobileMoney *string,
	statut Status,
	etat payment.State,
	dateTransaction time.Time,
) *Transaction {
	return &Transaction{
		id:                id,
		reservationID:     reservationID,
		channel:           channel,
		nomMobileMoney:    nomMobileMoney,
		numeroMobileMoney: numeroMobileMoney,
		reference:         reference,
		montant:           montant,
		devise:            devise,
		statut:            statut,
		etat:              etat,
		dateTransaction:   dateTransaction,
	}
}

// IsSettled reports whether the payment both succeeded and fully covers the
// reservation, the condition gating guest arrival validation.
func (t *Transaction) IsSettled() bool {
	return t.statut == StatusSucceeded && t.etat == payment.StatePaid
}

func (t *Transaction) IsSuccessful() bool {
	return t.statut == StatusSucceeded
}

func (t *Transaction) ID() uuid.UUID              { return t.id }
func (t *Transaction) ReservationID() uuid.UUID   { return t.reservationID }
func (t *Transaction) Channel() Channel           { return t.channel }
func (t *Transaction) NomMobileMoney() *string    { return t.nomMobileMoney }
func (t *Transaction) NumeroMobileMoney() *string { return t.numeroMobileMoney }
func (t *Transaction) Reference() string          { return t.reference }
func (t *Transaction) Montant() int64             { return t.montant }
func (t *Transaction) Devise() string             { return t.devise }
func (t *Transaction) Statut() Status             { return t.statut }
func (t *Transaction) Etat() payment.State        { return t.etat }
func (t *Transaction) DateTransaction() time.Time { return t.dateTransaction }
