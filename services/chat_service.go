package services

import (
	"context"
	"fmt"
	"strings"

	"studymates_server/models"
	"studymates_server/store"

	"github.com/google/uuid"
)

// ChatService exposes the per-match conversation operations
type ChatService struct {
	Store store.Store
}

// SendMessage appends a message to a match's conversation and updates the
// match's denormalized last-message pointer in the same transaction
func (cs *ChatService) SendMessage(ctx context.Context, matchID, senderID, content string) (*models.Message, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: message content is empty", ErrInvalidArgument)
	}

	match, err := cs.Store.GetMatch(ctx, matchID)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	if !match.HasUser(senderID) {
		return nil, fmt.Errorf("%w: sender '%s' is not a participant of match '%s'", ErrForbidden, senderID, matchID)
	}

	msg := &models.Message{
		MatchID:   matchID,
		MessageID: uuid.NewString(),
		SenderID:  senderID,
		Content:   trimmed,
		CreatedAt: models.NowTimestamp(),
		Read:      false,
	}
	if err := cs.Store.AppendMessage(ctx, msg); err != nil {
		return nil, translateStoreErr(err)
	}
	return msg, nil
}

// GetMessages returns a match's messages ascending by creation time
func (cs *ChatService) GetMessages(ctx context.Context, matchID string) ([]models.Message, error) {
	if _, err := cs.Store.GetMatch(ctx, matchID); err != nil {
		return nil, translateStoreErr(err)
	}
	return cs.Store.ListMessages(ctx, matchID)
}

// MarkMessagesAsRead marks every message in the match not sent by readerID as
// read. Messages the reader sent themselves stay untouched. Idempotent.
func (cs *ChatService) MarkMessagesAsRead(ctx context.Context, matchID, readerID string) error {
	match, err := cs.Store.GetMatch(ctx, matchID)
	if err != nil {
		return translateStoreErr(err)
	}
	if !match.HasUser(readerID) {
		return fmt.Errorf("%w: reader '%s' is not a participant of match '%s'", ErrForbidden, readerID, matchID)
	}
	return cs.Store.MarkMessagesRead(ctx, matchID, readerID)
}
