package api

import (
	"log/slog"
	"net/http"

	reqdto "loca-api/internal/handler/dto/request"
	resdto "loca-api/internal/handler/dto/response"
	"loca-api/internal/handler/middleware"
	"loca-api/internal/pkg/config"
	"loca-api/internal/usecase/commands"
	"loca-api/internal/usecase/queries"
	"loca-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands  commands.ReservationCommands
	queries   queries.ReservationQueries
	messaging commands.ConversationCommands
	billing   config.BillingConfig
}

func NewReservationHandler(
	cmds commands.ReservationCommands,
	qs queries.ReservationQueries,
	messaging commands.ConversationCommands,
	billing config.BillingConfig,
) *ReservationHandler {
	return &ReservationHandler{
		commands:  cmds,
		queries:   qs,
		messaging: messaging,
		billing:   billing,
	}
}

// actorAndID resolves the authenticated caller and the :id path parameter,
// writing the error response itself when either is missing.
func actorAndID(c *gin.Context) (shared.Actor, uuid.UUID, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return shared.Actor{}, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return shared.Actor{}, uuid.Nil, false
	}
	return actor, id, true
}

// @Summary Create reservation
// @Description Book a stay: creates the reservation and its initial pending transaction together
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Booking request"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	in, err := req.ToInput(h.billing.Currency)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	result, err := h.commands.Create(c.Request.Context(), actor, in)
	if err != nil {
		respondError(c, err)
		return
	}

	// Optional greeting to the host rides on the messaging boundary; a
	// failure there must not fail the booking.
	if msg := req.GetMessage(); msg != nil {
		_, msgErr := h.messaging.SendMessage(c.Request.Context(), actor, commands.SendMessageInput{
			RecipientID: result.HostID,
			ListingID:   &in.ListingID,
			Body:        *msg,
		})
		if msgErr != nil {
			slog.Warn("failed to deliver booking message", "error", msgErr.Error())
		}
	}

	view, err := h.queries.GetByID(c.Request.Context(), actor, result.ReservationID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := resdto.FromReservationView(view)
	var txn *resdto.TransactionResponse
	for i := range resp.Transactions {
		if resp.Transactions[i].ID == result.TransactionID {
			txn = &resp.Transactions[i]
			break
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":               true,
		"code_reservation":      result.ReservationCode,
		"reference_transaction": result.TransactionRef,
		"reservation":           resp,
		"transaction":           txn,
	})
}

// @Summary Get reservation
// @Description Reservation projection with its transactions
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List own reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationListResponse
// @Router /reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.queries.ListByGuest(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]*resdto.ReservationListResponse, len(items))
	for i, item := range items {
		resp[i] = resdto.FromReservationListItem(item)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Confirm reservation
// @Description Listing owner sets status=confirmed
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} map[string]int64
// @Failure 403 {object} map[string]string
// @Router /reservations/{id} [patch]
func (h *ReservationHandler) HostConfirm(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}

	if err := h.commands.HostConfirm(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": 1})
}

// @Summary Cancel reservation
// @Description Guest or admin cancels; every attached transaction is marked failed
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} map[string]any
// @Failure 403 {object} map[string]string
// @Router /reservations/{id}/cancel [patch]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}

	var req reqdto.CancelReservationRequest
	_ = c.ShouldBindJSON(&req) // body optional

	if err := h.commands.Cancel(c.Request.Context(), actor, id, req.Motif); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Réservation annulée"})
}

// @Summary Archive reservation
// @Description Host or admin archives a cancelled reservation, keeping the row for audit
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reservations/{id}/archive [patch]
func (h *ReservationHandler) Archive(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}

	if err := h.commands.Archive(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Réservation archivée"})
}

// @Summary Confirm payment
// @Description Host acknowledges payment; requires a successful transaction
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reservations/{id}/confirm-payment [patch]
func (h *ReservationHandler) ConfirmPayment(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}

	if err := h.commands.ConfirmPayment(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Paiement confirmé",
		"reservation": resdto.FromReservationView(view),
	})
}

// @Summary Validate arrival
// @Description Guest confirms check-in; requires confirmed status and a settled payment
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reservations/{id}/validate-arrival [patch]
func (h *ReservationHandler) ValidateArrival(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}

	if err := h.commands.ValidateArrival(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Arrivée validée",
		"reservation": resdto.FromReservationView(view),
	})
}

// @Summary Delete reservation
// @Description Guest-owner or listing-owner delete; responds with the affected-row count
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} map[string]int64
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": 1})
}
