package store

import (
	"context"
	"errors"

	"studymates_server/models"
)

// Sentinel errors surfaced by every Store implementation
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// ProfileStore is the read/write boundary for user profiles
type ProfileStore interface {
	PutProfile(ctx context.Context, profile *models.UserProfile) error
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	// ListProfiles returns all profiles in creation order
	ListProfiles(ctx context.Context) ([]models.UserProfile, error)
}

// SwipeStore is the append-only swipe log
type SwipeStore interface {
	PutSwipe(ctx context.Context, swipe *models.SwipeAction) error
	// HasLike reports whether userID has ever recorded a "like" on targetUserID
	HasLike(ctx context.Context, userID, targetUserID string) (bool, error)
}

// MatchStore owns the authoritative match records
type MatchStore interface {
	// CommitMatch atomically records the triggering swipe, creates the match,
	// and appends each participant to the other's denormalized matches list.
	// Returns ErrConflict when a match for the pair already exists, in which
	// case nothing is written.
	CommitMatch(ctx context.Context, swipe *models.SwipeAction, match *models.Match) error
	GetMatch(ctx context.Context, matchID string) (*models.Match, error)
	GetMatchByPair(ctx context.Context, userA, userB string) (*models.Match, error)
	ListMatchesForUser(ctx context.Context, userID string) ([]models.Match, error)
}

// MessageStore owns per-match conversations
type MessageStore interface {
	// AppendMessage atomically appends the message and updates the owning
	// match's denormalized lastMessage pointer.
	AppendMessage(ctx context.Context, msg *models.Message) error
	// ListMessages returns the match's messages ascending by creation time,
	// stable for equal timestamps.
	ListMessages(ctx context.Context, matchID string) ([]models.Message, error)
	// MarkMessagesRead flips read=true on every message in the match not sent
	// by readerID, including the denormalized lastMessage copy. Idempotent.
	MarkMessagesRead(ctx context.Context, matchID, readerID string) error
}

// Store is the full storage boundary injected into the services
type Store interface {
	ProfileStore
	SwipeStore
	MatchStore
	MessageStore
}
