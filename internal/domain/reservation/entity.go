package reservation

import (
	"errors"
	"time"

	"loca-api/internal/domain/shared/daterange"
	"loca-api/internal/domain/shared/payment"

	"github.com/google/uuid"
)

var (
	ErrNonPositivePrice        = errors.New("total price must be positive")
	ErrReservationCancelled    = errors.New("reservation is cancelled")
	ErrReservationNotConfirmed = errors.New("reservation is not confirmed")
	ErrReservationNotCancelled = errors.New("reservation is not cancelled")
	ErrAlreadyArchived         = errors.New("reservation is already archived")
	ErrPaymentAlreadyConfirmed = errors.New("payment already confirmed by host")
	ErrArrivalAlreadyValidated = errors.New("arrival already validated by guest")
	ErrNoSuccessfulTransaction = errors.New("no successful transaction")
	ErrPaymentNotSettled       = errors.New("payment not settled")
)

type Reservation struct {
	id           uuid.UUID
	userID       uuid.UUID
	listingID    uuid.UUID
	stay         daterange.DateRange
	totalPrice   int64
	status       Status
	statusClient PartyConfirmation
	statusHote   PartyConfirmation
	etat         payment.State
	motif        string
	code         string
	checkInHours *string
	dateVisite   *time.Time
	heureVisite  *string
	archivedAt   *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// NewReservation is the guest booking action: pending status, unpaid state.
// The booking code is generated by the caller so the aggregate stays
// deterministic under test.
func NewReservation(
	userID, listingID uuid.UUID,
	stay daterange.DateRange,
	totalPrice int64,
	code string,
	checkInHours *string,
	dateVisite *time.Time,
	heureVisite *string,
) (*Reservation, error) {
	if totalPrice <= 0 {
		return nil, ErrNonPositivePrice
	}

	return &Reservation{
		id:           uuid.New(),
		userID:       userID,
		listingID:    listingID,
		stay:         stay,
		totalPrice:   totalPrice,
		status:       StatusPending,
		statusClient: ConfirmationNone,
		statusHote:   ConfirmationNone,
		etat:         payment.StateUnpaid,
		code:         code,
		checkInHours: checkInHours,
		dateVisite:   dateVisite,
		heureVisite:  heureVisite,
	}, nil
}

func ReconstructReservation(
	id, userID, listingID uuid.UUID,
	stay daterange.DateRange,
	totalPrice int64,
	status Status,
	statusClient, statusHote PartyConfirmation,
	etat payment.State,
	motif, code string,
	checkInHours *string,
	dateVisite *time.Time,
	heureVisite *string,
	archivedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		userID:       userID,
		listingID:    listingID,
		stay:         stay,
		totalPrice:   totalPrice,
		status:       status,
		statusClient: statusClient,
		statusHote:   statusHote,
		etat:         etat,
		motif:        motif,
		code:         code,
		checkInHours: checkInHours,
		dateVisite:   dateVisite,
		heureVisite:  heureVisite,
		archivedAt:   archivedAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Cancel moves the reservation to its terminal state. Cancelling an
// already-cancelled reservation re-applies the same state: callers treat it
// as a no-op, not an error.
func (r *Reservation) Cancel(motif string) {
	r.status = StatusCancelled
	if motif != "" {
		r.motif = motif
	}
}

// ConfirmByHost is the host accepting the booking: pending -> confirmed.
// Status never moves backwards and never leaves cancelled.
func (r *Reservation) ConfirmByHost() error {
	if r.status == StatusCancelled {
		return ErrReservationCancelled
	}
	r.status = StatusConfirmed
	return nil
}

// ConfirmPaymentByHost sets the host-side payment acknowledgment. It
// requires at least one successful transaction and rejects a second
// confirmation so the flag cannot be toggled.
func (r *Reservation) ConfirmPaymentByHost(hasSuccessfulTx bool) error {
	if r.status == StatusCancelled {
		return ErrReservationCancelled
	}
	if r.statusHote.IsGiven() {
		return ErrPaymentAlreadyConfirmed
	}
	if !hasSuccessfulTx {
		return ErrNoSuccessfulTransaction
	}
	r.statusHote = ConfirmationGiven
	return nil
}

// ValidateArrival sets the guest-side check-in confirmation. It is gated on
// the reservation being confirmed and on a settled payment (a transaction
// that is both successful and fully paid).
func (r *Reservation) ValidateArrival(hasSettledTx bool) error {
	if r.status == StatusCancelled {
		return ErrReservationCancelled
	}
	if r.status != StatusConfirmed {
		return ErrReservationNotConfirmed
	}
	if r.statusClient.IsGiven() {
		return ErrArrivalAlreadyValidated
	}
	if !hasSettledTx {
		return ErrPaymentNotSettled
	}
	r.statusClient = ConfirmationGiven
	return nil
}

// Archive marks a cancelled reservation as archived, exactly once. The row
// is kept for audit: an annotation is appended to motif and archivedAt set.
func (r *Reservation) Archive(now time.Time) error {
	if r.status != StatusCancelled {
		return ErrReservationNotCancelled
	}
	if r.archivedAt != nil {
		return ErrAlreadyArchived
	}
	at := now
	r.archivedAt = &at
	r.motif = appendArchiveAnnotation(r.motif, now)
	return nil
}

func appendArchiveAnnotation(motif string, now time.Time) string {
	annotation := "[archivée le " + now.UTC().Format("2006-01-02 15:04:05") + "]"
	if motif == "" {
		return annotation
	}
	return motif + " " + annotation
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

func (r *Reservation) IsArchived() bool {
	return r.archivedAt != nil
}

func (r *Reservation) ID() uuid.UUID                   { return r.id }
func (r *Reservation) UserID() uuid.UUID               { return r.userID }
func (r *Reservation) ListingID() uuid.UUID            { return r.listingID }
func (r *Reservation) Stay() daterange.DateRange       { return r.stay }
func (r *Reservation) TotalPrice() int64               { return r.totalPrice }
func (r *Reservation) Status() Status                  { return r.status }
func (r *Reservation) StatusClient() PartyConfirmation { return r.statusClient }
func (r *Reservation) StatusHote() PartyConfirmation   { return r.statusHote }
func (r *Reservation) Etat() payment.State             { return r.etat }
func (r *Reservation) Motif() string                   { return r.motif }
func (r *Reservation) Code() string                    { return r.code }
func (r *Reservation) CheckInHours() *string           { return r.checkInHours }
func (r *Reservation) DateVisite() *time.Time          { return r.dateVisite }
func (r *Reservation) HeureVisite() *string            { return r.heureVisite }
func (r *Reservation) ArchivedAt() *time.Time          { return r.archivedAt }
func (r *Reservation) CreatedAt() time.Time            { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time            { return r.updatedAt }
