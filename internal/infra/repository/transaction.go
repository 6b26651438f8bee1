package repository

import (
	"context"
	"errors"

	"loca-api/internal/domain/shared/payment"
	"loca-api/internal/domain/transaction"
	"loca-api/internal/infra"
	"loca-api/internal/infra/db"
	"loca-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TransactionRepository struct {
	db db.DBTX
}

func NewTransactionRepository(dbtx db.DBTX) *TransactionRepository {
	return &TransactionRepository{db: dbtx}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	const query = `
		INSERT INTO transactions (
			id, reservation_id, type_transaction, nom_mobile_money,
			numero_mobile_money, reference_transaction, montant, devise,
			statut, etat, date_transaction
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		t.ID(), t.ReservationID(), t.Channel().String(),
		t.NomMobileMoney(), t.NumeroMobileMoney(), t.Reference(),
		t.Montant(), t.Devise(), t.Statut().String(), t.Etat().String(),
		t.DateTransaction(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create transaction", err)
	}
	return nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.TransactionSnapshot, error) {
	const query = `
		SELECT id, reservation_id, statut, etat
		FROM transactions
		WHERE id = $1`

	var (
		snap         shared.TransactionSnapshot
		statut, etat string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.ReservationID, &statut, &etat)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.NewRepoErr(infra.KindNotFound, "transaction not found")
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find transaction", err)
	}

	snap.Statut = transaction.Status(statut)
	snap.Etat = payment.State(etat)
	return &snap, nil
}

// FailAllForReservation is the cancellation cascade: every transaction of
// the reservation flips to échoué in one statement.
func (r *TransactionRepository) FailAllForReservation(ctx context.Context, reservationID uuid.UUID) (int64, error) {
	const query = `UPDATE transactions SET statut = 'échoué' WHERE reservation_id = $1`

	tag, err := r.db.Exec(ctx, query, reservationID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to fail reservation transactions", err)
	}
	return tag.RowsAffected(), nil
}

func (r *TransactionRepository) HasSuccessful(ctx context.Context, reservationID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS(
			SELECT 1 FROM transactions
			WHERE reservation_id = $1 AND statut = 'réussi'
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, reservationID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check successful transactions", err)
	}
	return exists, nil
}

func (r *TransactionRepository) HasSettled(ctx context.Context, reservationID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS(
			SELECT 1 FROM transactions
			WHERE reservation_id = $1 AND statut = 'réussi' AND etat = 'payer'
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, reservationID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check settled transactions", err)
	}
	return exists, nil
}

func (r *TransactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, statut *transaction.Status, etat *payment.State) (int64, error) {
	const query = `
		UPDATE transactions
		SET statut = COALESCE($2, statut),
		    etat = COALESCE($3, etat)
		WHERE id = $1`

	var statutArg, etatArg *string
	if statut != nil {
		s := statut.String()
		statutArg = &s
	}
	if etat != nil {
		e := etat.String()
		etatArg = &e
	}

	tag, err := r.db.Exec(ctx, query, id, statutArg, etatArg)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update transaction", err)
	}
	return tag.RowsAffected(), nil
}
