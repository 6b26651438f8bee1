package commands

import (
	"context"
	"time"

	"loca-api/internal/domain/shared/daterange"
	"loca-api/internal/pkg/errs"
	"loca-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityChange struct {
	Date        time.Time
	IsAvailable bool
}

type AvailabilityCommands interface {
	SetDates(ctx context.Context, actor shared.Actor, listingID uuid.UUID, changes []AvailabilityChange) error
}

type availabilityCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewAvailabilityCommands(uow shared.UnitOfWork) AvailabilityCommands {
	return &availabilityCommandsImpl{uow: uow}
}

// SetDates upserts per-date availability overrides for the host's own
// listing. Each date is its own write on purpose: a failure mid-batch leaves
// earlier dates applied, matching upsert semantics where re-sending the
// batch converges.
func (c *availabilityCommandsImpl) SetDates(ctx context.Context, actor shared.Actor, listingID uuid.UUID, changes []AvailabilityChange) error {
	db := c.uow.Direct()

	listing, err := db.Listings().FindByID(ctx, listingID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && listing.HostID != actor.ID {
		return errs.ErrListingNotOwned
	}

	for _, change := range changes {
		date := daterange.Normalize(change.Date)
		if err := db.Availability().Upsert(ctx, listingID, date, change.IsAvailable); err != nil {
			return errs.Wrap(err, "upsert availability override")
		}
	}
	return nil
}
