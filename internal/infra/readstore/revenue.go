package readstore

import (
	"context"
	"time"

	"loca-api/internal/domain/shared/daterange"
	"loca-api/internal/infra"
	"loca-api/internal/infra/db"
	"loca-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RevenueReadStore struct {
	db db.DBTX
}

func NewRevenueReadStore(dbtx db.DBTX) *RevenueReadStore {
	return &RevenueReadStore{db: dbtx}
}

// ConfirmedStays returns the raw overlapping stays; clamping and night
// arithmetic happen in the query layer so the math is unit-testable.
func (s *RevenueReadStore) ConfirmedStays(ctx context.Context, hostID uuid.UUID, bounds daterange.DateRange) ([]queries.RevenueStay, error) {
	const query = `
		SELECT r.start_date, r.end_date, l.nightly_price
		FROM reservations r
		JOIN listings l ON l.id = r.listing_id
		WHERE l.host_id = $1
		  AND r.status = 'confirmed'
		  AND r.end_date >= $2
		  AND r.start_date <= $3
		ORDER BY r.start_date`

	rows, err := s.db.Query(ctx, query, hostID, bounds.Start(), bounds.End())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load confirmed stays", err)
	}
	defer rows.Close()

	stays := make([]queries.RevenueStay, 0)
	for rows.Next() {
		var (
			start, end   time.Time
			nightlyPrice int64
		)
		if err := rows.Scan(&start, &end, &nightlyPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan confirmed stay", err)
		}
		stay, err := daterange.New(start, end)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stay range in storage", err)
		}
		stays = append(stays, queries.RevenueStay{Stay: stay, NightlyPrice: nightlyPrice})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate confirmed stays", err)
	}
	return stays, nil
}
