package repository

import (
	"context"
	"errors"

	"loca-api/internal/infra"
	"loca-api/internal/infra/db"
	"loca-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ConversationRepository struct {
	db db.DBTX
}

func NewConversationRepository(dbtx db.DBTX) *ConversationRepository {
	return &ConversationRepository{db: dbtx}
}

// GetOrCreate returns the existing two-party conversation or inserts one.
// Participants are stored in sorted order so the pair is unique regardless
// of who messages first.
func (r *ConversationRepository) GetOrCreate(ctx context.Context, userA, userB uuid.UUID, listingID *uuid.UUID) (uuid.UUID, error) {
	first, second := userA, userB
	if second.String() < first.String() {
		first, second = second, first
	}

	const query = `
		INSERT INTO conversations (id, user_a, user_b, listing_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_a, user_b) DO UPDATE SET user_a = EXCLUDED.user_a
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, uuid.New(), first, second, listingID).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to get or create conversation", err)
	}
	return id, nil
}

func (r *ConversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.ConversationSnapshot, error) {
	const query = `SELECT id, user_a, user_b, listing_id FROM conversations WHERE id = $1`

	var snap shared.ConversationSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.UserAID, &snap.UserBID, &snap.ListingID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.NewRepoErr(infra.KindNotFound, "conversation not found")
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find conversation", err)
	}
	return &snap, nil
}

func (r *ConversationRepository) AppendMessage(ctx context.Context, conversationID, senderID uuid.UUID, body string) (uuid.UUID, error) {
	const query = `
		INSERT INTO messages (id, conversation_id, sender_id, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, uuid.New(), conversationID, senderID, body).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to append message", err)
	}
	return id, nil
}
