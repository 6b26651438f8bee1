//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"loca-api/internal/domain/shared/daterange"
	"loca-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRevenueStore struct {
	stays []queries.RevenueStay
}

func (s *stubRevenueStore) ConfirmedStays(context.Context, uuid.UUID, daterange.DateRange) ([]queries.RevenueStay, error) {
	return s.stays, nil
}

func mustRange(t *testing.T, start, end string) daterange.DateRange {
	t.Helper()
	s, err := time.Parse(daterange.DayFormat, start)
	require.NoError(t, err)
	e, err := time.Parse(daterange.DayFormat, end)
	require.NoError(t, err)
	r, err := daterange.New(s, e)
	require.NoError(t, err)
	return r
}

func TestHostRevenue(t *testing.T) {
	hostID := uuid.New()

	t.Run("stay spanning the month boundary only counts clamped nights", func(t *testing.T) {
		// Jan 28 -> Feb 3 queried for February 2024: clamped to Feb 1 -> Feb 3,
		// which is 2 nights (Feb 1 and Feb 2), end date exclusive.
		store := &stubRevenueStore{stays: []queries.RevenueStay{
			{Stay: mustRange(t, "2024-01-28", "2024-02-03"), NightlyPrice: 10000},
		}}
		q := queries.NewRevenueQueries(store, 2000)

		report, err := q.HostRevenue(context.Background(), hostID, mustRange(t, "2024-02-01", "2024-02-29"))
		require.NoError(t, err)

		assert.Equal(t, 1, report.TotalReservations)
		assert.Equal(t, 2, report.TotalNights)
		assert.Equal(t, int64(20000), report.TotalPaidByClients)
		assert.Equal(t, int64(4000), report.TotalCommission)
		assert.Equal(t, int64(16000), report.TotalToHost)
		assert.Equal(t, map[string]int64{"2024-02": 16000}, report.MonthlyRevenue)
	})

	t.Run("histogram splits a stay across two months", func(t *testing.T) {
		store := &stubRevenueStore{stays: []queries.RevenueStay{
			{Stay: mustRange(t, "2024-03-30", "2024-04-02"), NightlyPrice: 5000},
		}}
		q := queries.NewRevenueQueries(store, 1000)

		report, err := q.HostRevenue(context.Background(), hostID, mustRange(t, "2024-01-01", "2024-12-31"))
		require.NoError(t, err)

		assert.Equal(t, 3, report.TotalNights)
		assert.Equal(t, map[string]int64{
			"2024-03": 8000, // nights of Mar 30 and Mar 31
			"2024-04": 4000, // night of Apr 1
		}, report.MonthlyRevenue)
	})

	t.Run("disjoint and same-day stays contribute nothing", func(t *testing.T) {
		store := &stubRevenueStore{stays: []queries.RevenueStay{
			{Stay: mustRange(t, "2024-01-10", "2024-01-12"), NightlyPrice: 9000},
			{Stay: mustRange(t, "2024-02-05", "2024-02-05"), NightlyPrice: 9000},
		}}
		q := queries.NewRevenueQueries(store, 2000)

		report, err := q.HostRevenue(context.Background(), hostID, mustRange(t, "2024-02-01", "2024-02-29"))
		require.NoError(t, err)

		assert.Equal(t, 0, report.TotalReservations)
		assert.Equal(t, int64(0), report.TotalPaidByClients)
		assert.Empty(t, report.MonthlyRevenue)
	})
}
