package commands

import (
	"context"

	"loca-api/internal/domain/listing"
	"loca-api/internal/pkg/errs"
	"loca-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateListingInput struct {
	Title        string
	RentalType   listing.RentalType
	NightlyPrice int64
	MonthlyPrice int64
}

type UpdateListingInput struct {
	Title        string
	RentalType   listing.RentalType
	NightlyPrice int64
	MonthlyPrice int64
}

type ListingCommands interface {
	Create(ctx context.Context, actor shared.Actor, in CreateListingInput) (uuid.UUID, error)
	Update(ctx context.Context, actor shared.Actor, id uuid.UUID, in UpdateListingInput) error
	Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) error
}

type listingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewListingCommands(uow shared.UnitOfWork) ListingCommands {
	return &listingCommandsImpl{uow: uow}
}

func (c *listingCommandsImpl) Create(ctx context.Context, actor shared.Actor, in CreateListingInput) (uuid.UUID, error) {
	l, err := listing.NewListing(actor.ID, in.Title, in.RentalType, in.NightlyPrice, in.MonthlyPrice)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Listings().Create(ctx, l)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return l.ID(), nil
}

// Update is owner-scoped: the UPDATE carries the ownership predicate and a
// zero row count means not found or not owned.
func (c *listingCommandsImpl) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, in UpdateListingInput) error {
	if !in.RentalType.IsValid() {
		return errs.Mark(listing.ErrInvalidRentalType, errs.ErrDomainValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count, err := tx.Listings().UpdateOwned(ctx, id, actor.ID, in.Title, in.RentalType, in.NightlyPrice, in.MonthlyPrice)
		if err != nil {
			return err
		}
		if count == 0 {
			return errs.ErrListingNotOwned
		}
		return nil
	})
}

func (c *listingCommandsImpl) Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count, err := tx.Listings().DeleteOwned(ctx, id, actor.ID)
		if err != nil {
			return err
		}
		if count == 0 {
			return errs.ErrListingNotOwned
		}
		return nil
	})
}
