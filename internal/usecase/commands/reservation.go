package commands

import (
	"context"
	"time"

	"loca-api/internal/domain/reservation"
	"loca-api/internal/domain/shared/daterange"
	"loca-api/internal/domain/transaction"
	"loca-api/internal/pkg/clock"
	"loca-api/internal/pkg/errs"
	"loca-api/internal/pkg/refcode"
	"loca-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationInput struct {
	ListingID         uuid.UUID
	StartDate         time.Time
	EndDate           time.Time
	TotalPrice        int64
	PaymentChannel    transaction.Channel
	Montant           int64
	Devise            string
	NomMobileMoney    *string
	NumeroMobileMoney *string
	CheckInHours      *string
	DateVisite        *time.Time
	HeureVisite       *string
}

type CreateReservationResult struct {
	ReservationID   uuid.UUID
	TransactionID   uuid.UUID
	HostID          uuid.UUID
	ReservationCode string
	TransactionRef  string
}

type ReservationCommands interface {
	Create(ctx context.Context, actor shared.Actor, in CreateReservationInput) (*CreateReservationResult, error)
	Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID, motif string) error
	HostConfirm(ctx context.Context, actor shared.Actor, id uuid.UUID) error
	ConfirmPayment(ctx context.Context, actor shared.Actor, id uuid.UUID) error
	ValidateArrival(ctx context.Context, actor shared.Actor, id uuid.UUID) error
	Archive(ctx context.Context, actor shared.Actor, id uuid.UUID) error
	Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{uow: uow, clock: clk}
}

// Create books a stay: one reservation plus its initial pending transaction,
// committed together or not at all. Overlap against non-cancelled
// reservations on the same listing is rejected here, server-side; the
// storage-level exclusion constraint backstops the race between two
// concurrent bookings that both pass this check.
func (c *reservationCommandsImpl) Create(ctx context.Context, actor shared.Actor, in CreateReservationInput) (*CreateReservationResult, error) {
	if !in.PaymentChannel.IsValid() {
		return nil, errs.Mark(errs.New("unknown payment channel"), errs.ErrDomainValidation)
	}

	stay, err := daterange.New(in.StartDate, in.EndDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	code, err := refcode.NewReservationCode()
	if err != nil {
		return nil, errs.Wrap(err, "generate reservation code")
	}
	ref, err := refcode.NewTransactionReference()
	if err != nil {
		return nil, errs.Wrap(err, "generate transaction reference")
	}

	var result *CreateReservationResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lst, err := tx.Listings().FindByID(ctx, in.ListingID)
		if err != nil {
			return err
		}

		taken, err := tx.Reservations().ExistsOverlapping(ctx, in.ListingID, stay.Start(), stay.End())
		if err != nil {
			return err
		}
		if taken {
			return errs.ErrDatesUnavailable
		}

		rsv, err := reservation.NewReservation(
			actor.ID, in.ListingID, stay, in.TotalPrice, code,
			in.CheckInHours, in.DateVisite, in.HeureVisite,
		)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Reservations().Create(ctx, rsv); err != nil {
			return err
		}

		txn, err := transaction.NewTransaction(
			rsv.ID(), in.PaymentChannel, ref, in.Montant, in.Devise,
			in.NomMobileMoney, in.NumeroMobileMoney, c.clock.Now(),
		)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Transactions().Create(ctx, txn); err != nil {
			return err
		}

		result = &CreateReservationResult{
			ReservationID:   rsv.ID(),
			TransactionID:   txn.ID(),
			HostID:          lst.HostID,
			ReservationCode: code,
			TransactionRef:  ref,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Cancel moves the reservation to its terminal state and fails every
// attached transaction. Cancelling twice is a no-op.
func (c *reservationCommandsImpl) Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID, motif string) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !actor.IsAdmin() && actor.ID != snap.UserID {
			return errs.ErrReservationNotOwned
		}

		if _, err := tx.Reservations().Cancel(ctx, id, motif); err != nil {
			return err
		}
		_, err = tx.Transactions().FailAllForReservation(ctx, id)
		return err
	})
}

// HostConfirm sets status=confirmed, owner-scoped. The UPDATE carries the
// ownership predicate; zero affected rows means not owned or cancelled.
func (c *reservationCommandsImpl) HostConfirm(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if snap.Status == reservation.StatusCancelled {
			return errs.Mark(reservation.ErrReservationCancelled, errs.ErrDomainValidation)
		}

		count, err := tx.Reservations().ConfirmByHost(ctx, id, actor.ID)
		if err != nil {
			return err
		}
		if count == 0 {
			return errs.ErrReservationNotOwned
		}
		return nil
	})
}

func (c *reservationCommandsImpl) ConfirmPayment(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if actor.ID != snap.HostID {
			return errs.ErrReservationNotOwned
		}

		hasSuccessful, err := tx.Transactions().HasSuccessful(ctx, id)
		if err != nil {
			return err
		}

		// Replay the domain guards against the snapshot for a precise error,
		// then let the conditional UPDATE decide under concurrency.
		probe := snapshotToEntity(snap)
		if err := probe.ConfirmPaymentByHost(hasSuccessful); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		count, err := tx.Reservations().ConfirmPayment(ctx, id)
		if err != nil {
			return err
		}
		if count == 0 {
			return errs.Mark(reservation.ErrPaymentAlreadyConfirmed, errs.ErrDomainValidation)
		}
		return nil
	})
}

func (c *reservationCommandsImpl) ValidateArrival(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if actor.ID != snap.UserID {
			return errs.ErrReservationNotOwned
		}

		hasSettled, err := tx.Transactions().HasSettled(ctx, id)
		if err != nil {
			return err
		}

		probe := snapshotToEntity(snap)
		if err := probe.ValidateArrival(hasSettled); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		count, err := tx.Reservations().ValidateArrival(ctx, id)
		if err != nil {
			return err
		}
		if count == 0 {
			return errs.Mark(reservation.ErrArrivalAlreadyValidated, errs.ErrDomainValidation)
		}
		return nil
	})
}

// Archive stamps a cancelled reservation as archived, exactly once, keeping
// the row for audit. The motif annotation is computed in the domain layer so
// it matches what reads expect.
func (c *reservationCommandsImpl) Archive(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if !actor.IsAdmin() && actor.ID != snap.HostID {
			return errs.ErrReservationNotOwned
		}

		probe := snapshotToEntity(snap)
		now := c.clock.Now()
		if err := probe.Archive(now); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		count, err := tx.Reservations().Archive(ctx, id, probe.Motif(), now)
		if err != nil {
			return err
		}
		if count == 0 {
			return errs.Mark(reservation.ErrAlreadyArchived, errs.ErrDomainValidation)
		}
		return nil
	})
}

// Delete removes a reservation, scoped to the guest or the listing owner.
// Zero affected rows means not found or not authorized; callers surface
// both the same way.
func (c *reservationCommandsImpl) Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count, err := tx.Reservations().DeleteOwned(ctx, id, actor.ID)
		if err != nil {
			return err
		}
		if count == 0 {
			return errs.ErrReservationNotFound
		}
		return nil
	})
}

// snapshotToEntity rehydrates just enough of the aggregate to run its
// transition guards against a freshly read row.
func snapshotToEntity(snap *shared.ReservationSnapshot) *reservation.Reservation {
	stay, _ := daterange.New(snap.StartDate, snap.EndDate)
	return reservation.ReconstructReservation(
		snap.ID, snap.UserID, snap.ListingID, stay, 0,
		snap.Status, snap.StatusClient, snap.StatusHote,
		snap.Etat, snap.Motif, "",
		nil, nil, nil,
		snap.ArchivedAt,
		time.Time{}, time.Time{},
	)
}
