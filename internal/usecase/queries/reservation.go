package queries

import (
	"context"
	"time"

	"loca-api/internal/domain/shared/daterange"
	"loca-api/internal/pkg/errs"
	"loca-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side). Stay dates are serialized calendar days,
// never raw timestamps, so clients cannot reintroduce timezone drift.
type ReservationView struct {
	ID           uuid.UUID         `json:"id"`
	Code         string            `json:"code_reservation"`
	ListingID    uuid.UUID         `json:"listing_id"`
	ListingTitle string            `json:"listing_title"`
	HostID       uuid.UUID         `json:"host_id"`
	UserID       uuid.UUID         `json:"user_id"`
	GuestEmail   string            `json:"guest_email"`
	StartDate    string            `json:"start_date"`
	EndDate      string            `json:"end_date"`
	TotalPrice   int64             `json:"total_price"`
	Status       string            `json:"status"`
	StatusClient *string           `json:"status_client"`
	StatusHote   *string           `json:"status_hote"`
	Etat         string            `json:"etat"`
	Motif        *string           `json:"motif,omitempty"`
	CheckInHours *string           `json:"check_in_hours,omitempty"`
	DateVisite   *string           `json:"date_visite,omitempty"`
	HeureVisite  *string           `json:"heure_visite,omitempty"`
	ArchivedAt   *time.Time        `json:"archived_at,omitempty"`
	Transactions []TransactionView `json:"transactions"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type TransactionView struct {
	ID                uuid.UUID `json:"id"`
	ReservationID     uuid.UUID `json:"reservation_id"`
	Type              string    `json:"type_transaction"`
	Reference         string    `json:"reference_transaction"`
	Montant           int64     `json:"montant"`
	Devise            string    `json:"devise"`
	Statut            string    `json:"statut"`
	Etat              string    `json:"etat"`
	NomMobileMoney    *string   `json:"nom_mobile_money,omitempty"`
	NumeroMobileMoney *string   `json:"numero_mobile_money,omitempty"`
	DateTransaction   time.Time `json:"date_transaction"`
}

type ReservationListItem struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code_reservation"`
	ListingID    uuid.UUID `json:"listing_id"`
	ListingTitle string    `json:"listing_title"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	TotalPrice   int64     `json:"total_price"`
	Status       string    `json:"status"`
	Etat         string    `json:"etat"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReservationReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByGuest(ctx context.Context, userID uuid.UUID) ([]*ReservationListItem, error)
	// FindActiveStays returns the stay ranges of every non-cancelled
	// reservation on a listing, for booked-date derivation.
	FindActiveStays(ctx context.Context, listingID uuid.UUID) ([]daterange.DateRange, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error)
	ListByGuest(ctx context.Context, userID uuid.UUID) ([]*ReservationListItem, error)
	BookedDates(ctx context.Context, listingID uuid.UUID) ([]string, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindViewByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && actor.ID != view.UserID && actor.ID != view.HostID {
		return nil, errs.ErrReservationNotOwned
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByGuest(ctx context.Context, userID uuid.UUID) ([]*ReservationListItem, error) {
	return q.store.FindByGuest(ctx, userID)
}

// BookedDates expands every non-cancelled reservation's inclusive stay into
// individual YYYY-MM-DD entries. Duplicates across overlapping reservations
// are kept; deduplication is the caller's concern.
func (q *reservationQueriesImpl) BookedDates(ctx context.Context, listingID uuid.UUID) ([]string, error) {
	stays, err := q.store.FindActiveStays(ctx, listingID)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0)
	for _, stay := range stays {
		dates = append(dates, stay.DayStrings()...)
	}
	return dates, nil
}
