package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDemoProfiles(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, SeedDemoProfiles(context.Background(), s))

	profiles, err := s.ListProfiles(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, profiles)

	seen := map[string]bool{}
	for _, p := range profiles {
		assert.True(t, p.ProfileCompleted, "demo profiles are browsable immediately")
		assert.NotEmpty(t, p.Strengths)
		assert.NotEmpty(t, p.Email)
		assert.False(t, seen[p.UserID], "demo user ids are unique")
		seen[p.UserID] = true
	}
}
