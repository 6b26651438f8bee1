package shared

import (
	"context"
	"time"

	"loca-api/internal/domain/listing"
	"loca-api/internal/domain/reservation"
	"loca-api/internal/domain/shared/payment"
	"loca-api/internal/domain/transaction"
	"loca-api/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller as resolved by the auth middleware.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

// UnitOfWork runs command work either inside one storage transaction
// (Within) or against the pool directly (Direct), where each repository
// call is its own unit — deliberately so for the per-date availability
// upsert loop.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	Direct() Tx
}

type Tx interface {
	Reservations() ReservationRepository
	Transactions() TransactionRepository
	Availability() AvailabilityRepository
	Listings() ListingRepository
	Conversations() ConversationRepository
}

// Write-side snapshots keep commands off the read-side view types.
type ReservationSnapshot struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	ListingID    uuid.UUID
	HostID       uuid.UUID
	StartDate    time.Time
	EndDate      time.Time
	Status       reservation.Status
	StatusClient reservation.PartyConfirmation
	StatusHote   reservation.PartyConfirmation
	Etat         payment.State
	Motif        string
	ArchivedAt   *time.Time
}

type TransactionSnapshot struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Statut        transaction.Status
	Etat          payment.State
}

type ListingSnapshot struct {
	ID           uuid.UUID
	HostID       uuid.UUID
	Title        string
	RentalType   listing.RentalType
	NightlyPrice int64
	MonthlyPrice int64
}

type ConversationSnapshot struct {
	ID        uuid.UUID
	UserAID   uuid.UUID
	UserBID   uuid.UUID
	ListingID *uuid.UUID
}

func (c ConversationSnapshot) HasParticipant(id uuid.UUID) bool {
	return c.UserAID == id || c.UserBID == id
}

// ReservationRepository is the write side of the reservation state machine.
// Guarded transitions are single conditional UPDATEs: the affected-row count
// is the success signal, which closes the check-then-write race window.
type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	ExistsOverlapping(ctx context.Context, listingID uuid.UUID, start, end time.Time) (bool, error)
	Cancel(ctx context.Context, id uuid.UUID, motif string) (int64, error)
	ConfirmByHost(ctx context.Context, id, hostID uuid.UUID) (int64, error)
	ConfirmPayment(ctx context.Context, id uuid.UUID) (int64, error)
	ValidateArrival(ctx context.Context, id uuid.UUID) (int64, error)
	Archive(ctx context.Context, id uuid.UUID, motif string, archivedAt time.Time) (int64, error)
	SetEtat(ctx context.Context, id uuid.UUID, etat payment.State) error
	DeleteOwned(ctx context.Context, id, callerID uuid.UUID) (int64, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, t *transaction.Transaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*TransactionSnapshot, error)
	FailAllForReservation(ctx context.Context, reservationID uuid.UUID) (int64, error)
	HasSuccessful(ctx context.Context, reservationID uuid.UUID) (bool, error)
	HasSettled(ctx context.Context, reservationID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, statut *transaction.Status, etat *payment.State) (int64, error)
}

type AvailabilityRepository interface {
	Upsert(ctx context.Context, listingID uuid.UUID, date time.Time, isAvailable bool) error
}

type ListingRepository interface {
	Create(ctx context.Context, l *listing.Listing) error
	FindByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
	UpdateOwned(ctx context.Context, id, hostID uuid.UUID, title string, rentalType listing.RentalType, nightlyPrice, monthlyPrice int64) (int64, error)
	DeleteOwned(ctx context.Context, id, hostID uuid.UUID) (int64, error)
}

type ConversationRepository interface {
	GetOrCreate(ctx context.Context, userA, userB uuid.UUID, listingID *uuid.UUID) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ConversationSnapshot, error)
	AppendMessage(ctx context.Context, conversationID, senderID uuid.UUID, body string) (uuid.UUID, error)
}
