package commands

import (
	"context"
	"strings"

	"loca-api/internal/pkg/errs"
	"loca-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type SendMessageInput struct {
	RecipientID uuid.UUID
	ListingID   *uuid.UUID
	Body        string
}

type ConversationCommands interface {
	// SendMessage finds or creates the two-party conversation and appends
	// the message, returning the conversation id.
	SendMessage(ctx context.Context, actor shared.Actor, in SendMessageInput) (uuid.UUID, error)
	Reply(ctx context.Context, actor shared.Actor, conversationID uuid.UUID, body string) (uuid.UUID, error)
}

type conversationCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewConversationCommands(uow shared.UnitOfWork) ConversationCommands {
	return &conversationCommandsImpl{uow: uow}
}

func (c *conversationCommandsImpl) SendMessage(ctx context.Context, actor shared.Actor, in SendMessageInput) (uuid.UUID, error) {
	body := strings.TrimSpace(in.Body)
	if body == "" {
		return uuid.Nil, errs.Mark(errs.New("empty message body"), errs.ErrDomainValidation)
	}
	if in.RecipientID == actor.ID {
		return uuid.Nil, errs.Mark(errs.New("cannot message yourself"), errs.ErrDomainValidation)
	}

	var conversationID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Conversations().GetOrCreate(ctx, actor.ID, in.RecipientID, in.ListingID)
		if err != nil {
			return err
		}
		conversationID = id
		_, err = tx.Conversations().AppendMessage(ctx, id, actor.ID, body)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return conversationID, nil
}

func (c *conversationCommandsImpl) Reply(ctx context.Context, actor shared.Actor, conversationID uuid.UUID, body string) (uuid.UUID, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return uuid.Nil, errs.Mark(errs.New("empty message body"), errs.ErrDomainValidation)
	}

	var messageID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Conversations().FindByID(ctx, conversationID)
		if err != nil {
			return err
		}
		if !snap.HasParticipant(actor.ID) {
			return errs.ErrNotParticipant
		}
		messageID, err = tx.Conversations().AppendMessage(ctx, conversationID, actor.ID, body)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}
	return messageID, nil
}
