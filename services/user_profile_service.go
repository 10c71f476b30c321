package services

import (
	"context"
	"errors"
	"fmt"

	"studymates_server/models"
	"studymates_server/store"
)

type UserProfileService struct {
	Store store.Store
}

// ProfileInput is the client-writable subset of a profile. The denormalized
// matches list is owned by the match flow and never accepted from the client.
type ProfileInput struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Avatar           string   `json:"avatar"`
	Major            string   `json:"major"`
	Year             string   `json:"year"`
	Bio              string   `json:"bio"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	StudyPreferences []string `json:"studyPreferences"`
	ProfileCompleted *bool    `json:"profileCompleted"`
}

// UpsertProfile creates the user's profile or merges the provided fields into
// the existing one. Omitted fields keep their current values.
func (ups *UserProfileService) UpsertProfile(ctx context.Context, userID string, input ProfileInput) (*models.UserProfile, error) {
	profile, err := ups.Store.GetProfile(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		profile = &models.UserProfile{
			UserID:    userID,
			CreatedAt: models.NowTimestamp(),
		}
	} else if err != nil {
		return nil, err
	}

	if input.Name != "" {
		profile.Name = input.Name
	}
	if input.Email != "" {
		profile.Email = input.Email
	}
	if input.Avatar != "" {
		profile.Avatar = input.Avatar
	}
	if input.Major != "" {
		profile.Major = input.Major
	}
	if input.Year != "" {
		profile.Year = input.Year
	}
	if input.Bio != "" {
		profile.Bio = input.Bio
	}
	if input.Strengths != nil {
		profile.Strengths = input.Strengths
	}
	if input.Weaknesses != nil {
		profile.Weaknesses = input.Weaknesses
	}
	if input.StudyPreferences != nil {
		profile.StudyPreferences = input.StudyPreferences
	}
	if input.ProfileCompleted != nil {
		profile.ProfileCompleted = *input.ProfileCompleted
	}

	if profile.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidArgument)
	}

	if err := ups.Store.PutProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return profile, nil
}

// GetProfile retrieves a user profile by id
func (ups *UserProfileService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := ups.Store.GetProfile(ctx, userID)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return profile, nil
}
