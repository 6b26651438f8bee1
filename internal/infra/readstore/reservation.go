package readstore

import (
	"context"
	"errors"
	"time"

	"loca-api/internal/domain/shared/daterange"
	"loca-api/internal/infra"
	"loca-api/internal/infra/db"
	"loca-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (s *ReservationReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	const query = `
		SELECT r.id, r.code_reservation, r.listing_id, l.title, l.host_id,
		       r.user_id, u.email, r.start_date, r.end_date, r.total_price,
		       r.status, r.status_client, r.status_hote, r.etat,
		       NULLIF(r.motif, ''), r.check_in_hours, r.date_visite,
		       r.heure_visite, r.archived_at, r.created_at, r.updated_at
		FROM reservations r
		JOIN listings l ON l.id = r.listing_id
		JOIN users u ON u.id = r.user_id
		WHERE r.id = $1`

	var (
		view       queries.ReservationView
		start, end time.Time
		dateVisite *time.Time
	)
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Code, &view.ListingID, &view.ListingTitle, &view.HostID,
		&view.UserID, &view.GuestEmail, &start, &end, &view.TotalPrice,
		&view.Status, &view.StatusClient, &view.StatusHote, &view.Etat,
		&view.Motif, &view.CheckInHours, &dateVisite,
		&view.HeureVisite, &view.ArchivedAt, &view.CreatedAt, &view.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation view", err)
	}

	view.StartDate = daterange.Normalize(start).Format(daterange.DayFormat)
	view.EndDate = daterange.Normalize(end).Format(daterange.DayFormat)
	if dateVisite != nil {
		d := daterange.Normalize(*dateVisite).Format(daterange.DayFormat)
		view.DateVisite = &d
	}

	txns, err := s.findTransactions(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Transactions = txns
	return &view, nil
}

func (s *ReservationReadStore) findTransactions(ctx context.Context, reservationID uuid.UUID) ([]queries.TransactionView, error) {
	const query = `
		SELECT id, reservation_id, type_transaction, reference_transaction,
		       montant, devise, statut, etat, nom_mobile_money,
		       numero_mobile_money, date_transaction
		FROM transactions
		WHERE reservation_id = $1
		ORDER BY date_transaction`

	rows, err := s.db.Query(ctx, query, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation transactions", err)
	}
	defer rows.Close()

	views := make([]queries.TransactionView, 0)
	for rows.Next() {
		var v queries.TransactionView
		if err := rows.Scan(
			&v.ID, &v.ReservationID, &v.Type, &v.Reference,
			&v.Montant, &v.Devise, &v.Statut, &v.Etat,
			&v.NomMobileMoney, &v.NumeroMobileMoney, &v.DateTransaction,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan transaction view", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate transaction views", err)
	}
	return views, nil
}

func (s *ReservationReadStore) FindByGuest(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationListItem, error) {
	const query = `
		SELECT r.id, r.code_reservation, r.listing_id, l.title,
		       r.start_date, r.end_date, r.total_price, r.status, r.etat,
		       r.created_at
		FROM reservations r
		JOIN listings l ON l.id = r.listing_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list guest reservations", err)
	}
	defer rows.Close()

	items := make([]*queries.ReservationListItem, 0)
	for rows.Next() {
		var (
			item       queries.ReservationListItem
			start, end time.Time
		)
		if err := rows.Scan(
			&item.ID, &item.Code, &item.ListingID, &item.ListingTitle,
			&start, &end, &item.TotalPrice, &item.Status, &item.Etat,
			&item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation list item", err)
		}
		item.StartDate = daterange.Normalize(start).Format(daterange.DayFormat)
		item.EndDate = daterange.Normalize(end).Format(daterange.DayFormat)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate guest reservations", err)
	}
	return items, nil
}

func (s *ReservationReadStore) FindActiveStays(ctx context.Context, listingID uuid.UUID) ([]daterange.DateRange, error) {
	const query = `
		SELECT start_date, end_date
		FROM reservations
		WHERE listing_id = $1 AND status <> 'cancelled'
		ORDER BY start_date`

	rows, err := s.db.Query(ctx, query, listingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load active stays", err)
	}
	defer rows.Close()

	stays := make([]daterange.DateRange, 0)
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stay range", err)
		}
		stay, err := daterange.New(start, end)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stay range in storage", err)
		}
		stays = append(stays, stay)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate active stays", err)
	}
	return stays, nil
}
