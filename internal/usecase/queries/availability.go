package queries

import (
	"context"
	"time"

	"loca-api/internal/domain/shared/daterange"

	"github.com/google/uuid"
)

type AvailabilityReadStore interface {
	// BlockedDates returns explicit host-set isAvailable=false override rows.
	// Reservation-derived blocking is a separate read path (BookedDates);
	// callers union the two.
	BlockedDates(ctx context.Context, listingID uuid.UUID) ([]time.Time, error)
}

type AvailabilityQueries interface {
	BlockedDates(ctx context.Context, listingID uuid.UUID) ([]string, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
}

func NewAvailabilityQueries(store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

func (q *availabilityQueriesImpl) BlockedDates(ctx context.Context, listingID uuid.UUID) ([]string, error) {
	dates, err := q.store.BlockedDates(ctx, listingID)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = daterange.Normalize(d).Format(daterange.DayFormat)
	}
	return out, nil
}
