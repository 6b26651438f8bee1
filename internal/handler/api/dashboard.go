package api

import (
	"net/http"
	"time"

	"loca-api/internal/domain/shared/daterange"
	"loca-api/internal/handler/middleware"
	"loca-api/internal/pkg/clock"
	"loca-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	revenue queries.RevenueQueries
	clock   clock.Clock
}

func NewDashboardHandler(revenue queries.RevenueQueries, clk clock.Clock) *DashboardHandler {
	return &DashboardHandler{revenue: revenue, clock: clk}
}

// @Summary Host revenue report
// @Description Aggregates confirmed stays over a period: totals, commission and a month-keyed histogram
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param start query string false "Period start (YYYY-MM-DD)"
// @Param end query string false "Period end (YYYY-MM-DD)"
// @Param date query string false "Single month (YYYY-MM), overrides start/end"
// @Success 200 {object} queries.RevenueReport
// @Failure 400 {object} map[string]string
// @Router /dashboard/revenue [get]
func (h *DashboardHandler) Revenue(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	bounds, err := h.parseBounds(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period, expected start/end as YYYY-MM-DD or date as YYYY-MM"})
		return
	}

	report, err := h.revenue.HostRevenue(c.Request.Context(), actor.ID, bounds)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// parseBounds resolves the report period: a single month via ?date=YYYY-MM,
// an explicit ?start&?end pair, or year-to-date when nothing is given.
func (h *DashboardHandler) parseBounds(c *gin.Context) (daterange.DateRange, error) {
	if month := c.Query("date"); month != "" {
		start, err := time.Parse("2006-01", month)
		if err != nil {
			return daterange.DateRange{}, err
		}
		end := start.AddDate(0, 1, -1)
		return daterange.New(start, end)
	}

	startStr, endStr := c.Query("start"), c.Query("end")
	if startStr != "" && endStr != "" {
		start, err := time.Parse(daterange.DayFormat, startStr)
		if err != nil {
			return daterange.DateRange{}, err
		}
		end, err := time.Parse(daterange.DayFormat, endStr)
		if err != nil {
			return daterange.DateRange{}, err
		}
		return daterange.New(start, end)
	}

	now := h.clock.Now().UTC()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return daterange.New(yearStart, now)
}
