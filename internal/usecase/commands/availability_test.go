//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"loca-api/internal/pkg/errs"
	"loca-api/internal/usecase/commands"
	"loca-api/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAvailability(t *testing.T) {
	t.Run("owner upserts normalized override rows", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		hostID := uuid.New()
		listingID := uow.SeedListing(hostID, 15000)
		cmd := commands.NewAvailabilityCommands(uow)

		err := cmd.SetDates(context.Background(), guest(hostID), listingID, []commands.AvailabilityChange{
			{Date: time.Date(2024, 3, 10, 23, 30, 0, 0, time.FixedZone("GMT+3", 3*3600)), IsAvailable: false},
			{Date: day(t, "2024-03-11"), IsAvailable: false},
		})
		require.NoError(t, err)

		require.Len(t, uow.Overrides, 2)
		// late-evening local time stays on its own calendar day at noon UTC
		assert.Equal(t, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), uow.Overrides[0].Date)
		assert.False(t, uow.Overrides[0].IsAvailable)
	})

	t.Run("re-sending a date updates in place", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		hostID := uuid.New()
		listingID := uow.SeedListing(hostID, 15000)
		cmd := commands.NewAvailabilityCommands(uow)

		block := []commands.AvailabilityChange{{Date: day(t, "2024-03-10"), IsAvailable: false}}
		require.NoError(t, cmd.SetDates(context.Background(), guest(hostID), listingID, block))

		unblock := []commands.AvailabilityChange{{Date: day(t, "2024-03-10"), IsAvailable: true}}
		require.NoError(t, cmd.SetDates(context.Background(), guest(hostID), listingID, unblock))

		require.Len(t, uow.Overrides, 1)
		assert.True(t, uow.Overrides[0].IsAvailable)
	})

	t.Run("non-owner is rejected with zero writes", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		listingID := uow.SeedListing(uuid.New(), 15000)
		cmd := commands.NewAvailabilityCommands(uow)

		err := cmd.SetDates(context.Background(), guest(uuid.New()), listingID, []commands.AvailabilityChange{
			{Date: day(t, "2024-03-10"), IsAvailable: false},
		})
		assert.ErrorIs(t, err, errs.ErrListingNotOwned)
		assert.Empty(t, uow.Overrides)
	})
}
