package queries

import (
	"context"
	"time"

	"loca-api/internal/pkg/errs"
	"loca-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ConversationListItem struct {
	ID            uuid.UUID  `json:"id"`
	PeerID        uuid.UUID  `json:"peer_id"`
	PeerEmail     string     `json:"peer_email"`
	ListingID     *uuid.UUID `json:"listing_id,omitempty"`
	ListingTitle  *string    `json:"listing_title,omitempty"`
	LastMessage   *string    `json:"last_message,omitempty"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type MessageView struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}

type ConversationReadStore interface {
	FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*ConversationListItem, error)
	FindParticipants(ctx context.Context, conversationID uuid.UUID) (userA, userB uuid.UUID, err error)
	FindMessages(ctx context.Context, conversationID uuid.UUID) ([]*MessageView, error)
}

type ConversationQueries interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*ConversationListItem, error)
	Messages(ctx context.Context, actor shared.Actor, conversationID uuid.UUID) ([]*MessageView, error)
}

type conversationQueriesImpl struct {
	store ConversationReadStore
}

func NewConversationQueries(store ConversationReadStore) ConversationQueries {
	return &conversationQueriesImpl{store: store}
}

func (q *conversationQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]*ConversationListItem, error) {
	return q.store.FindByParticipant(ctx, userID)
}

func (q *conversationQueriesImpl) Messages(ctx context.Context, actor shared.Actor, conversationID uuid.UUID) ([]*MessageView, error) {
	userA, userB, err := q.store.FindParticipants(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && actor.ID != userA && actor.ID != userB {
		return nil, errs.ErrNotParticipant
	}
	return q.store.FindMessages(ctx, conversationID)
}
