package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ListingView struct {
	ID           uuid.UUID `json:"id"`
	HostID       uuid.UUID `json:"host_id"`
	Title        string    `json:"title"`
	RentalType   string    `json:"rental_type"`
	NightlyPrice int64     `json:"nightly_price"`
	MonthlyPrice int64     `json:"monthly_price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ListingReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
}

type ListingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
}

type listingQueriesImpl struct {
	store ListingReadStore
}

func NewListingQueries(store ListingReadStore) ListingQueries {
	return &listingQueriesImpl{store: store}
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	return q.store.FindViewByID(ctx, id)
}
