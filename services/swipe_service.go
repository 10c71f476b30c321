package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"studymates_server/models"
	"studymates_server/store"

	"github.com/google/uuid"
)

// SwipeService decides whether a like/skip produces a match
type SwipeService struct {
	Store store.Store
}

// RecordSwipe processes a swipe from userID on targetUserID. It returns the
// match when the swipe completes a mutual like, the already-existing match when
// the pair matched earlier, and nil otherwise.
func (ss *SwipeService) RecordSwipe(ctx context.Context, userID, targetUserID, action string) (*models.Match, error) {
	if action != models.ActionLike && action != models.ActionSkip {
		return nil, fmt.Errorf("%w: unknown action '%s'", ErrInvalidArgument, action)
	}
	if userID == targetUserID {
		return nil, fmt.Errorf("%w: cannot swipe on yourself", ErrInvalidArgument)
	}
	if _, err := ss.Store.GetProfile(ctx, userID); err != nil {
		return nil, translateStoreErr(err)
	}
	if _, err := ss.Store.GetProfile(ctx, targetUserID); err != nil {
		return nil, translateStoreErr(err)
	}

	swipe := models.NewSwipeAction(userID, targetUserID, action)

	if action == models.ActionSkip {
		if err := ss.Store.PutSwipe(ctx, swipe); err != nil {
			return nil, fmt.Errorf("failed to record skip: %w", err)
		}
		return nil, nil
	}

	reciprocal, err := ss.Store.HasLike(ctx, targetUserID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check reciprocal like: %w", err)
	}
	if !reciprocal {
		if err := ss.Store.PutSwipe(ctx, swipe); err != nil {
			return nil, fmt.Errorf("failed to record like: %w", err)
		}
		return nil, nil
	}

	// Mutual like. A second mutual-like pass must return the existing match,
	// never create a duplicate.
	existing, err := ss.Store.GetMatchByPair(ctx, userID, targetUserID)
	if err == nil {
		if err := ss.Store.PutSwipe(ctx, swipe); err != nil {
			return nil, fmt.Errorf("failed to record like: %w", err)
		}
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	match := &models.Match{
		MatchID:   uuid.NewString(),
		Users:     []string{userID, targetUserID},
		PairKey:   models.PairKeyFor(userID, targetUserID),
		CreatedAt: models.NowTimestamp(),
	}
	if err := ss.Store.CommitMatch(ctx, swipe, match); err != nil {
		if errors.Is(err, store.ErrConflict) {
			// Lost a race against the other user's concurrent like; the pair's
			// single match stands and this swipe reports it
			return ss.Store.GetMatchByPair(ctx, userID, targetUserID)
		}
		return nil, err
	}

	log.Printf("It's a match! %s and %s (matchId: %s)", userID, targetUserID, match.MatchID)
	return match, nil
}
