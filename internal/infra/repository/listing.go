package repository

import (
	"context"
	"errors"

	"loca-api/internal/domain/listing"
	"loca-api/internal/infra"
	"loca-api/internal/infra/db"
	"loca-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ListingRepository struct {
	db db.DBTX
}

func NewListingRepository(dbtx db.DBTX) *ListingRepository {
	return &ListingRepository{db: dbtx}
}

func (r *ListingRepository) Create(ctx context.Context, l *listing.Listing) error {
	const query = `
		INSERT INTO listings (id, host_id, title, rental_type, nightly_price, monthly_price)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		l.ID(), l.HostID(), l.Title(), l.RentalType().String(),
		l.NightlyPrice(), l.MonthlyPrice(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create listing", err)
	}
	return nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	const query = `
		SELECT id, host_id, title, rental_type, nightly_price, monthly_price
		FROM listings
		WHERE id = $1`

	var (
		snap       shared.ListingSnapshot
		rentalType string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.HostID, &snap.Title, &rentalType,
		&snap.NightlyPrice, &snap.MonthlyPrice,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.NewRepoErr(infra.KindNotFound, "listing not found")
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find listing", err)
	}

	snap.RentalType = listing.RentalType(rentalType)
	return &snap, nil
}

func (r *ListingRepository) UpdateOwned(ctx context.Context, id, hostID uuid.UUID, title string, rentalType listing.RentalType, nightlyPrice, monthlyPrice int64) (int64, error) {
	const query = `
		UPDATE listings
		SET title = $3, rental_type = $4, nightly_price = $5, monthly_price = $6,
		    updated_at = NOW()
		WHERE id = $1 AND host_id = $2`

	tag, err := r.db.Exec(ctx, query, id, hostID, title, rentalType.String(), nightlyPrice, monthlyPrice)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update listing", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ListingRepository) DeleteOwned(ctx context.Context, id, hostID uuid.UUID) (int64, error) {
	const query = `DELETE FROM listings WHERE id = $1 AND host_id = $2`

	tag, err := r.db.Exec(ctx, query, id, hostID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete listing", err)
	}
	return tag.RowsAffected(), nil
}
