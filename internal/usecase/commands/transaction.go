package commands

import (
	"context"

	"loca-api/internal/domain/shared/payment"
	"loca-api/internal/domain/transaction"
	"loca-api/internal/pkg/errs"
	"loca-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpdateTransactionInput struct {
	Statut *transaction.Status
	Etat   *payment.State
}

type TransactionCommands interface {
	Update(ctx context.Context, actor shared.Actor, id uuid.UUID, in UpdateTransactionInput) error
}

type transactionCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewTransactionCommands(uow shared.UnitOfWork) TransactionCommands {
	return &transactionCommandsImpl{uow: uow}
}

// Update is the admin direct-edit of a single transaction. Values outside
// the closed enums are rejected before any write. A transaction landing on
// statut=réussi with etat=payer cascades etat=payer onto the parent
// reservation, inside the same unit of work.
func (c *transactionCommandsImpl) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, in UpdateTransactionInput) error {
	if !actor.IsAdmin() {
		return errs.ErrForbidden
	}
	if in.Statut == nil && in.Etat == nil {
		return errs.Mark(errs.New("nothing to update"), errs.ErrDomainValidation)
	}
	if in.Statut != nil && !in.Statut.IsValid() {
		return errs.Mark(transaction.ErrInvalidStatus, errs.ErrDomainValidation)
	}
	if in.Etat != nil && !in.Etat.IsValid() {
		return errs.Mark(transaction.ErrInvalidState, errs.ErrDomainValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Transactions().FindByID(ctx, id)
		if err != nil {
			return err
		}

		count, err := tx.Transactions().UpdateStatus(ctx, id, in.Statut, in.Etat)
		if err != nil {
			return err
		}
		if count == 0 {
			return errs.ErrTransactionNotFound
		}

		statut := snap.Statut
		if in.Statut != nil {
			statut = *in.Statut
		}
		etat := snap.Etat
		if in.Etat != nil {
			etat = *in.Etat
		}
		if statut == transaction.StatusSucceeded && etat == payment.StatePaid {
			return tx.Reservations().SetEtat(ctx, snap.ReservationID, payment.StatePaid)
		}
		return nil
	})
}
