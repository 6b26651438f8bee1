package request

import (
	"github.com/google/uuid"
)

type StartConversationRequest struct {
	RecipientID uuid.UUID  `json:"recipientId" binding:"required"`
	ListingID   *uuid.UUID `json:"listingId,omitempty"`
	Body        string     `json:"body" binding:"required"`
}

type SendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}
