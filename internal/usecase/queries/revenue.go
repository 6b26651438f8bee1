package queries

import (
	"context"

	"loca-api/internal/domain/shared/daterange"

	"github.com/google/uuid"
)

const monthKeyFormat = "2006-01"

// RevenueStay is one confirmed reservation feeding the host dashboard.
type RevenueStay struct {
	Stay         daterange.DateRange
	NightlyPrice int64
}

type RevenueReport struct {
	TotalReservations  int              `json:"totalReservations"`
	TotalNights        int              `json:"totalNights"`
	TotalPaidByClients int64            `json:"totalPaidByClients"`
	TotalToHost        int64            `json:"totalToHost"`
	TotalCommission    int64            `json:"totalCommission"`
	MonthlyRevenue     map[string]int64 `json:"monthlyRevenue"`
}

type RevenueReadStore interface {
	// ConfirmedStays returns confirmed reservations on the host's listings
	// whose stay overlaps the given bounds, with the listing nightly price.
	ConfirmedStays(ctx context.Context, hostID uuid.UUID, bounds daterange.DateRange) ([]RevenueStay, error)
}

type RevenueQueries interface {
	HostRevenue(ctx context.Context, hostID uuid.UUID, bounds daterange.DateRange) (*RevenueReport, error)
}

type revenueQueriesImpl struct {
	store              RevenueReadStore
	commissionPerNight int64
}

func NewRevenueQueries(store RevenueReadStore, commissionPerNight int64) RevenueQueries {
	return &revenueQueriesImpl{store: store, commissionPerNight: commissionPerNight}
}

func (q *revenueQueriesImpl) HostRevenue(ctx context.Context, hostID uuid.UUID, bounds daterange.DateRange) (*RevenueReport, error) {
	stays, err := q.store.ConfirmedStays(ctx, hostID, bounds)
	if err != nil {
		return nil, err
	}
	return aggregateRevenue(stays, bounds, q.commissionPerNight), nil
}

// aggregateRevenue clamps each stay to the query bounds and counts nights
// end-date exclusive, so a same-day check-in/check-out contributes nothing.
// This arithmetic must stay consistent with the booked-date expansion: both
// walk the same noon-normalized day grid.
func aggregateRevenue(stays []RevenueStay, bounds daterange.DateRange, commissionPerNight int64) *RevenueReport {
	report := &RevenueReport{
		MonthlyRevenue: make(map[string]int64),
	}

	for _, s := range stays {
		clamped, ok := s.Stay.ClampTo(bounds)
		if !ok {
			continue
		}
		nights := clamped.Nights()
		if nights <= 0 {
			continue
		}

		gross := int64(nights) * s.NightlyPrice
		commission := int64(nights) * commissionPerNight

		report.TotalReservations++
		report.TotalNights += nights
		report.TotalPaidByClients += gross
		report.TotalCommission += commission
		report.TotalToHost += gross - commission

		perNightNet := s.NightlyPrice - commissionPerNight
		for _, night := range clamped.NightDates() {
			report.MonthlyRevenue[night.Format(monthKeyFormat)] += perNightNet
		}
	}

	return report
}
