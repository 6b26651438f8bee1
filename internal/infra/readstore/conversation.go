package readstore

import (
	"context"
	"errors"

	"loca-api/internal/infra"
	"loca-api/internal/infra/db"
	"loca-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ConversationReadStore struct {
	db db.DBTX
}

func NewConversationReadStore(dbtx db.DBTX) *ConversationReadStore {
	return &ConversationReadStore{db: dbtx}
}

func (s *ConversationReadStore) FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*queries.ConversationListItem, error) {
	const query = `
		SELECT c.id,
		       CASE WHEN c.user_a = $1 THEN c.user_b ELSE c.user_a END AS peer_id,
		       u.email,
		       c.listing_id, l.title,
		       m.body, m.created_at,
		       c.created_at
		FROM conversations c
		JOIN users u ON u.id = CASE WHEN c.user_a = $1 THEN c.user_b ELSE c.user_a END
		LEFT JOIN listings l ON l.id = c.listing_id
		LEFT JOIN LATERAL (
			SELECT body, created_at
			FROM messages
			WHERE conversation_id = c.id
			ORDER BY created_at DESC
			LIMIT 1
		) m ON TRUE
		WHERE c.user_a = $1 OR c.user_b = $1
		ORDER BY COALESCE(m.created_at, c.created_at) DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list conversations", err)
	}
	defer rows.Close()

	items := make([]*queries.ConversationListItem, 0)
	for rows.Next() {
		var item queries.ConversationListItem
		if err := rows.Scan(
			&item.ID, &item.PeerID, &item.PeerEmail,
			&item.ListingID, &item.ListingTitle,
			&item.LastMessage, &item.LastMessageAt,
			&item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan conversation", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate conversations", err)
	}
	return items, nil
}

func (s *ConversationReadStore) FindParticipants(ctx context.Context, conversationID uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	const query = `SELECT user_a, user_b FROM conversations WHERE id = $1`

	var userA, userB uuid.UUID
	err := s.db.QueryRow(ctx, query, conversationID).Scan(&userA, &userB)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, uuid.Nil, infra.NewRepoErr(infra.KindNotFound, "conversation not found")
	}
	if err != nil {
		return uuid.Nil, uuid.Nil, infra.WrapRepoErr("failed to find conversation participants", err)
	}
	return userA, userB, nil
}

func (s *ConversationReadStore) FindMessages(ctx context.Context, conversationID uuid.UUID) ([]*queries.MessageView, error) {
	const query = `
		SELECT id, conversation_id, sender_id, body, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at`

	rows, err := s.db.Query(ctx, query, conversationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load messages", err)
	}
	defer rows.Close()

	msgs := make([]*queries.MessageView, 0)
	for rows.Next() {
		var m queries.MessageView
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan message", err)
		}
		msgs = append(msgs, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate messages", err)
	}
	return msgs, nil
}
