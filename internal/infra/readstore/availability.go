package readstore

import (
	"context"
	"time"

	"loca-api/internal/infra"
	"loca-api/internal/infra/db"

	"github.com/google/uuid"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

func (s *AvailabilityReadStore) BlockedDates(ctx context.Context, listingID uuid.UUID) ([]time.Time, error) {
	const query = `
		SELECT date
		FROM availabilities
		WHERE listing_id = $1 AND is_available = FALSE
		ORDER BY date`

	rows, err := s.db.Query(ctx, query, listingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load blocked dates", err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocked date", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocked dates", err)
	}
	return dates, nil
}
