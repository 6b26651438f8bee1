package repository

import (
	"context"
	"errors"
	"time"

	"loca-api/internal/domain/reservation"
	"loca-api/internal/domain/shared/payment"
	"loca-api/internal/infra"
	"loca-api/internal/infra/db"
	"loca-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, rsv *reservation.Reservation) error {
	const query = `
		INSERT INTO reservations (
			id, user_id, listing_id, start_date, end_date, total_price,
			status, status_client, status_hote, etat, motif, code_reservation,
			check_in_hours, date_visite, heure_visite
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, $11, $12, $13, $14, $15)`

	_, err := r.db.Exec(ctx, query,
		rsv.ID(), rsv.UserID(), rsv.ListingID(),
		rsv.Stay().Start(), rsv.Stay().End(), rsv.TotalPrice(),
		rsv.Status().String(), rsv.StatusClient().String(), rsv.StatusHote().String(),
		rsv.Etat().String(), rsv.Motif(), rsv.Code(),
		rsv.CheckInHours(), rsv.DateVisite(), rsv.HeureVisite(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	const query = `
		SELECT r.id, r.user_id, r.listing_id, l.host_id,
		       r.start_date, r.end_date, r.status,
		       COALESCE(r.status_client, ''), COALESCE(r.status_hote, ''),
		       r.etat, r.motif, r.archived_at
		FROM reservations r
		JOIN listings l ON l.id = r.listing_id
		WHERE r.id = $1`

	var (
		snap                       shared.ReservationSnapshot
		status, client, hote, etat string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.UserID, &snap.ListingID, &snap.HostID,
		&snap.StartDate, &snap.EndDate, &status,
		&client, &hote, &etat, &snap.Motif, &snap.ArchivedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	snap.Status = reservation.Status(status)
	snap.StatusClient = reservation.PartyConfirmation(client)
	snap.StatusHote = reservation.PartyConfirmation(hote)
	snap.Etat = payment.State(etat)
	return &snap, nil
}

func (r *ReservationRepository) ExistsOverlapping(ctx context.Context, listingID uuid.UUID, start, end time.Time) (bool, error) {
	const query = `
		SELECT EXISTS(
			SELECT 1 FROM reservations
			WHERE listing_id = $1
			  AND status <> 'cancelled'
			  AND end_date >= $2
			  AND start_date <= $3
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, listingID, start, end).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping reservations", err)
	}
	return exists, nil
}

func (r *ReservationRepository) Cancel(ctx context.Context, id uuid.UUID, motif string) (int64, error) {
	const query = `
		UPDATE reservations
		SET status = 'cancelled',
		    motif = CASE WHEN $2 <> '' THEN $2 ELSE motif END,
		    updated_at = NOW()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, motif)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel reservation", err)
	}
	return tag.RowsAffected(), nil
}

// ConfirmByHost carries the ownership and not-cancelled predicates in the
// UPDATE itself; callers read the affected-row count as the success signal.
func (r *ReservationRepository) ConfirmByHost(ctx context.Context, id, hostID uuid.UUID) (int64, error) {
	const query = `
		UPDATE reservations r
		SET status = 'confirmed', updated_at = NOW()
		FROM listings l
		WHERE r.id = $1
		  AND l.id = r.listing_id
		  AND l.host_id = $2
		  AND r.status <> 'cancelled'`

	tag, err := r.db.Exec(ctx, query, id, hostID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to confirm reservation", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) ConfirmPayment(ctx context.Context, id uuid.UUID) (int64, error) {
	const query = `
		UPDATE reservations
		SET status_hote = 'confirmed', updated_at = NOW()
		WHERE id = $1
		  AND status <> 'cancelled'
		  AND status_hote IS NULL`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to confirm payment", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) ValidateArrival(ctx context.Context, id uuid.UUID) (int64, error) {
	const query = `
		UPDATE reservations
		SET status_client = 'confirmed', updated_at = NOW()
		WHERE id = $1
		  AND status = 'confirmed'
		  AND status_client IS NULL`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to validate arrival", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) Archive(ctx context.Context, id uuid.UUID, motif string, archivedAt time.Time) (int64, error) {
	const query = `
		UPDATE reservations
		SET archived_at = $3, motif = $2, updated_at = NOW()
		WHERE id = $1
		  AND status = 'cancelled'
		  AND archived_at IS NULL`

	tag, err := r.db.Exec(ctx, query, id, motif, archivedAt)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to archive reservation", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) SetEtat(ctx context.Context, id uuid.UUID, etat payment.State) error {
	const query = `UPDATE reservations SET etat = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, etat.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation payment state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return nil
}

func (r *ReservationRepository) DeleteOwned(ctx context.Context, id, callerID uuid.UUID) (int64, error) {
	const query = `
		DELETE FROM reservations r
		USING listings l
		WHERE r.id = $1
		  AND l.id = r.listing_id
		  AND (r.user_id = $2 OR l.host_id = $2)`

	tag, err := r.db.Exec(ctx, query, id, callerID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete reservation", err)
	}
	return tag.RowsAffected(), nil
}
