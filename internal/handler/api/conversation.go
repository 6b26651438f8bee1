package api

import (
	"net/http"

	reqdto "loca-api/internal/handler/dto/request"
	"loca-api/internal/handler/middleware"
	"loca-api/internal/usecase/commands"
	"loca-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ConversationHandler struct {
	commands commands.ConversationCommands
	queries  queries.ConversationQueries
}

func NewConversationHandler(cmds commands.ConversationCommands, qs queries.ConversationQueries) *ConversationHandler {
	return &ConversationHandler{commands: cmds, queries: qs}
}

// @Summary Start conversation
// @Description Get-or-create the two-party conversation and send the first message
// @Tags conversations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartConversationRequest true "Recipient and message"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /conversations [post]
func (h *ConversationHandler) Start(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.commands.SendMessage(c.Request.Context(), actor, commands.SendMessageInput{
		RecipientID: req.RecipientID,
		ListingID:   req.ListingID,
		Body:        req.Body,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"conversation_id": id})
}

// @Summary List conversations
// @Tags conversations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ConversationListItem
// @Router /conversations [get]
func (h *ConversationHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.queries.ListForUser(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Conversation messages
// @Tags conversations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conversation ID"
// @Success 200 {array} queries.MessageView
// @Failure 403 {object} map[string]string
// @Router /conversations/{id}/messages [get]
func (h *ConversationHandler) Messages(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}

	msgs, err := h.queries.Messages(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// @Summary Send message
// @Tags conversations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Conversation ID"
// @Param request body reqdto.SendMessageRequest true "Message"
// @Success 201 {object} map[string]any
// @Failure 403 {object} map[string]string
// @Router /conversations/{id}/messages [post]
func (h *ConversationHandler) Send(c *gin.Context) {
	actor, id, ok := actorAndID(c)
	if !ok {
		return
	}

	var req reqdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	messageID, err := h.commands.Reply(c.Request.Context(), actor, id, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message_id": messageID})
}
