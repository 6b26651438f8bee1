package api

import (
	"net/http"

	reqdto "loca-api/internal/handler/dto/request"
	resdto "loca-api/internal/handler/dto/response"
	"loca-api/internal/handler/middleware"
	"loca-api/internal/usecase/commands"
	"loca-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	commands            commands.AvailabilityCommands
	availabilityQueries queries.AvailabilityQueries
	reservationQueries  queries.ReservationQueries
}

func NewAvailabilityHandler(
	cmds commands.AvailabilityCommands,
	aq queries.AvailabilityQueries,
	rq queries.ReservationQueries,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		commands:            cmds,
		availabilityQueries: aq,
		reservationQueries:  rq,
	}
}

// @Summary Blocked dates
// @Description Explicit host-set isAvailable=false override rows for a listing
// @Tags availability
// @Produce json
// @Param listingId path string true "Listing ID"
// @Success 200 {array} resdto.DateEntry
// @Router /availability/{listingId} [get]
func (h *AvailabilityHandler) BlockedDates(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("listingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID format"})
		return
	}

	dates, err := h.availabilityQueries.BlockedDates(c.Request.Context(), listingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDates(dates))
}

// @Summary Booked dates
// @Description Every calendar day covered by a non-cancelled reservation on the listing
// @Tags availability
// @Produce json
// @Param listingId path string true "Listing ID"
// @Success 200 {array} resdto.DateEntry
// @Router /bookings/{listingId} [get]
func (h *AvailabilityHandler) BookedDates(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("listingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID format"})
		return
	}

	dates, err := h.reservationQueries.BookedDates(c.Request.Context(), listingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDates(dates))
}

// @Summary Update availability overrides
// @Description Owner-scoped per-date upsert of explicit availability rows
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateAvailabilityRequest true "Dates to set"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} map[string]string
// @Router /availability/update [post]
func (h *AvailabilityHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	changes, err := req.ToChanges()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	if err := h.commands.SetDates(c.Request.Context(), actor, req.ListingID, changes); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
