package readstore

import (
	"context"
	"errors"

	"loca-api/internal/infra"
	"loca-api/internal/infra/db"
	"loca-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ListingReadStore struct {
	db db.DBTX
}

func NewListingReadStore(dbtx db.DBTX) *ListingReadStore {
	return &ListingReadStore{db: dbtx}
}

func (s *ListingReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	const query = `
		SELECT id, host_id, title, rental_type, nightly_price, monthly_price,
		       created_at, updated_at
		FROM listings
		WHERE id = $1`

	var view queries.ListingView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.HostID, &view.Title, &view.RentalType,
		&view.NightlyPrice, &view.MonthlyPrice,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.NewRepoErr(infra.KindNotFound, "listing not found")
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load listing view", err)
	}
	return &view, nil
}
