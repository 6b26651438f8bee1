package repository

import (
	"context"
	"time"

	"loca-api/internal/infra"
	"loca-api/internal/infra/db"

	"github.com/google/uuid"
)

type AvailabilityRepository struct {
	db db.DBTX
}

func NewAvailabilityRepository(dbtx db.DBTX) *AvailabilityRepository {
	return &AvailabilityRepository{db: dbtx}
}

// Upsert writes one explicit override row, keyed by (listing, date).
func (r *AvailabilityRepository) Upsert(ctx context.Context, listingID uuid.UUID, date time.Time, isAvailable bool) error {
	const query = `
		INSERT INTO availabilities (listing_id, date, is_available)
		VALUES ($1, $2, $3)
		ON CONFLICT (listing_id, date)
		DO UPDATE SET is_available = EXCLUDED.is_available, updated_at = NOW()`

	_, err := r.db.Exec(ctx, query, listingID, date, isAvailable)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert availability", err)
	}
	return nil
}
