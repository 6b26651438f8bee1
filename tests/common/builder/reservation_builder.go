package builder

import (
	"time"

	"loca-api/internal/domain/reservation"
	"loca-api/internal/domain/shared/daterange"
	"loca-api/internal/domain/shared/payment"

	"github.com/google/uuid"
)

// ReservationBuilder assembles reservations for unit tests. BuildDomain goes
// through the booking constructor; BuildReconstructed rebuilds an aggregate
// in an arbitrary lifecycle state, the way a repository would.
type ReservationBuilder struct {
	id           uuid.UUID
	userID       uuid.UUID
	listingID    uuid.UUID
	start        time.Time
	end          time.Time
	totalPrice   int64
	status       reservation.Status
	statusClient reservation.PartyConfirmation
	statusHote   reservation.PartyConfirmation
	etat         payment.State
	motif        string
	code         string
	archivedAt   *time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		id:           uuid.New(),
		userID:       uuid.New(),
		listingID:    uuid.New(),
		start:        time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		end:          time.Date(2024, 3, 12, 12, 0, 0, 0, time.UTC),
		totalPrice:   45000,
		status:       reservation.StatusPending,
		statusClient: reservation.ConfirmationNone,
		statusHote:   reservation.ConfirmationNone,
		etat:         payment.StateUnpaid,
		code:         "RSV-TEST01",
	}
}

func (b *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	b.id = id
	return b
}

func (b *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	b.userID = id
	return b
}

func (b *ReservationBuilder) WithListingID(id uuid.UUID) *ReservationBuilder {
	b.listingID = id
	return b
}

func (b *ReservationBuilder) WithStay(start, end time.Time) *ReservationBuilder {
	b.start = start
	b.end = end
	return b
}

func (b *ReservationBuilder) WithTotalPrice(price int64) *ReservationBuilder {
	b.totalPrice = price
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.status = status
	return b
}

func (b *ReservationBuilder) WithStatusClient(c reservation.PartyConfirmation) *ReservationBuilder {
	b.statusClient = c
	return b
}

func (b *ReservationBuilder) WithStatusHote(c reservation.PartyConfirmation) *ReservationBuilder {
	b.statusHote = c
	return b
}

func (b *ReservationBuilder) WithEtat(s payment.State) *ReservationBuilder {
	b.etat = s
	return b
}

func (b *ReservationBuilder) WithMotif(motif string) *ReservationBuilder {
	b.motif = motif
	return b
}

func (b *ReservationBuilder) WithArchivedAt(t time.Time) *ReservationBuilder {
	b.archivedAt = &t
	return b
}

func (b *ReservationBuilder) Stay() (daterange.DateRange, error) {
	return daterange.New(b.start, b.end)
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	stay, err := daterange.New(b.start, b.end)
	if err != nil {
		return nil, err
	}
	return reservation.NewReservation(b.userID, b.listingID, stay, b.totalPrice, b.code, nil, nil, nil)
}

func (b *ReservationBuilder) BuildReconstructed() *reservation.Reservation {
	stay, err := daterange.New(b.start, b.end)
	if err != nil {
		panic(err)
	}
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return reservation.ReconstructReservation(
		b.id, b.userID, b.listingID,
		stay, b.totalPrice,
		b.status, b.statusClient, b.statusHote, b.etat,
		b.motif, b.code,
		nil, nil, nil,
		b.archivedAt,
		now, now,
	)
}
