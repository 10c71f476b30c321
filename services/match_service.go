package services

import (
	"context"
	"sort"

	"studymates_server/models"
	"studymates_server/store"
)

type MatchService struct {
	Store store.Store
}

// MatchWithProfile is the match-list view: the match record enriched with the
// other participant's profile and the derived unread indicator
type MatchWithProfile struct {
	models.Match
	Profile *models.UserProfile `json:"profile"`
	Unread  bool                `json:"unread"`
}

// GetPotentialMatches returns the candidate pool for a viewer: every profile
// except the viewer and users already matched with them, in creation order.
// When the pool is exhausted it falls back to all other profiles so the user
// can keep browsing.
func (ms *MatchService) GetPotentialMatches(ctx context.Context, userID string) ([]models.UserProfile, error) {
	viewer, err := ms.Store.GetProfile(ctx, userID)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	profiles, err := ms.Store.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	candidates := []models.UserProfile{}
	others := []models.UserProfile{}
	for _, profile := range profiles {
		if profile.UserID == userID {
			continue
		}
		others = append(others, profile)
		if viewer.HasMatched(profile.UserID) {
			continue
		}
		candidates = append(candidates, profile)
	}

	if len(candidates) == 0 {
		return others, nil
	}
	return candidates, nil
}

// GetCurrentMatches returns the user's matches, most recent activity first:
// matches with messages sort by their last message's timestamp, the rest by
// their creation timestamp.
func (ms *MatchService) GetCurrentMatches(ctx context.Context, userID string) ([]MatchWithProfile, error) {
	if _, err := ms.Store.GetProfile(ctx, userID); err != nil {
		return nil, translateStoreErr(err)
	}

	matches, err := ms.Store.ListMatchesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		ti, tj := matches[i].ActivityTime(), matches[j].ActivityTime()
		if ti != tj {
			return ti > tj
		}
		return matches[i].MatchID < matches[j].MatchID
	})

	enriched := make([]MatchWithProfile, 0, len(matches))
	for _, match := range matches {
		profile, err := ms.Store.GetProfile(ctx, match.OtherUser(userID))
		if err != nil {
			continue // skip matches whose partner profile cannot be loaded
		}
		enriched = append(enriched, MatchWithProfile{
			Match:   match,
			Profile: profile,
			Unread:  match.UnreadFor(userID),
		})
	}
	return enriched, nil
}

// GetMatch retrieves a single match by its id
func (ms *MatchService) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	match, err := ms.Store.GetMatch(ctx, matchID)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return match, nil
}
