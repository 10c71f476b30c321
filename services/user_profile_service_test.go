package services

import (
	"context"
	"testing"

	"studymates_server/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertProfileCreateAndMerge(t *testing.T) {
	s := store.NewMemoryStore()
	svc := &UserProfileService{Store: s}
	ctx := context.Background()

	created, err := svc.UpsertProfile(ctx, "u1", ProfileInput{
		Name:      "Jordan Lee",
		Email:     "jordan@studymates.test",
		Strengths: []string{"Math"},
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", created.UserID)
	assert.False(t, created.ProfileCompleted)
	assert.NotEmpty(t, created.CreatedAt)

	// Partial update keeps fields that were not provided
	completed := true
	updated, err := svc.UpsertProfile(ctx, "u1", ProfileInput{
		Major:            "Mathematics",
		Weaknesses:       []string{"History"},
		ProfileCompleted: &completed,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jordan Lee", updated.Name)
	assert.Equal(t, "jordan@studymates.test", updated.Email)
	assert.Equal(t, "Mathematics", updated.Major)
	assert.Equal(t, []string{"Math"}, updated.Strengths)
	assert.Equal(t, []string{"History"}, updated.Weaknesses)
	assert.True(t, updated.ProfileCompleted)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpsertProfileRequiresEmail(t *testing.T) {
	s := store.NewMemoryStore()
	svc := &UserProfileService{Store: s}

	_, err := svc.UpsertProfile(context.Background(), "u1", ProfileInput{Name: "No Email"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// The failed create must not leave a profile behind
	_, err = svc.GetProfile(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := &UserProfileService{Store: store.NewMemoryStore()}
	_, err := svc.GetProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
