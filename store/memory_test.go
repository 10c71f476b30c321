package store

import (
	"context"
	"testing"

	"studymates_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Store = (*MemoryStore)(nil)
var _ Store = (*DynamoStore)(nil)

func seedProfiles(t *testing.T, s *MemoryStore, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, s.PutProfile(context.Background(), &models.UserProfile{
			UserID:    id,
			Email:     id + "@studymates.test",
			CreatedAt: models.NowTimestamp(),
		}))
	}
}

func TestCommitMatchRejectsDuplicatePair(t *testing.T) {
	s := NewMemoryStore()
	seedProfiles(t, s, "a", "b")
	ctx := context.Background()

	match := &models.Match{
		MatchID:   "m1",
		Users:     []string{"a", "b"},
		PairKey:   models.PairKeyFor("a", "b"),
		CreatedAt: models.NowTimestamp(),
	}
	require.NoError(t, s.CommitMatch(ctx, models.NewSwipeAction("a", "b", models.ActionLike), match))

	// The pair is unordered: the reversed ordering is the same pair
	dup := &models.Match{
		MatchID:   "m2",
		Users:     []string{"b", "a"},
		PairKey:   models.PairKeyFor("b", "a"),
		CreatedAt: models.NowTimestamp(),
	}
	err := s.CommitMatch(ctx, models.NewSwipeAction("b", "a", models.ActionLike), dup)
	assert.ErrorIs(t, err, ErrConflict)

	// The rejected commit wrote nothing
	profileA, err := s.GetProfile(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, profileA.Matches)
	_, err = s.GetMatch(ctx, "m2")
	assert.ErrorIs(t, err, ErrNotFound)

	byPair, err := s.GetMatchByPair(ctx, "b", "a")
	require.NoError(t, err)
	assert.Equal(t, "m1", byPair.MatchID)
}

func TestCommitMatchUpdatesBothProfiles(t *testing.T) {
	s := NewMemoryStore()
	seedProfiles(t, s, "a", "b")
	ctx := context.Background()

	match := &models.Match{
		MatchID:   "m1",
		Users:     []string{"a", "b"},
		PairKey:   models.PairKeyFor("a", "b"),
		CreatedAt: models.NowTimestamp(),
	}
	require.NoError(t, s.CommitMatch(ctx, models.NewSwipeAction("a", "b", models.ActionLike), match))

	profileA, err := s.GetProfile(ctx, "a")
	require.NoError(t, err)
	profileB, err := s.GetProfile(ctx, "b")
	require.NoError(t, err)
	assert.Contains(t, profileA.Matches, "b")
	assert.Contains(t, profileB.Matches, "a")
}

func TestCommitMatchFailsForMissingProfile(t *testing.T) {
	s := NewMemoryStore()
	seedProfiles(t, s, "a")

	match := &models.Match{
		MatchID:   "m1",
		Users:     []string{"a", "ghost"},
		PairKey:   models.PairKeyFor("a", "ghost"),
		CreatedAt: models.NowTimestamp(),
	}
	err := s.CommitMatch(context.Background(), models.NewSwipeAction("a", "ghost", models.ActionLike), match)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListProfilesKeepsCreationOrder(t *testing.T) {
	s := NewMemoryStore()
	seedProfiles(t, s, "c", "a", "b")

	profiles, err := s.ListProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 3)
	assert.Equal(t, "c", profiles[0].UserID)
	assert.Equal(t, "a", profiles[1].UserID)
	assert.Equal(t, "b", profiles[2].UserID)

	// Re-putting an existing profile keeps its position
	require.NoError(t, s.PutProfile(context.Background(), &models.UserProfile{
		UserID: "c", Email: "c@studymates.test", Name: "Updated",
	}))
	profiles, err = s.ListProfiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "c", profiles[0].UserID)
	assert.Equal(t, "Updated", profiles[0].Name)
}

func TestAppendMessageMaintainsLastMessage(t *testing.T) {
	s := NewMemoryStore()
	seedProfiles(t, s, "a", "b")
	ctx := context.Background()

	match := &models.Match{
		MatchID:   "m1",
		Users:     []string{"a", "b"},
		PairKey:   models.PairKeyFor("a", "b"),
		CreatedAt: models.NowTimestamp(),
	}
	require.NoError(t, s.CommitMatch(ctx, models.NewSwipeAction("a", "b", models.ActionLike), match))

	err := s.AppendMessage(ctx, &models.Message{
		MatchID: "missing", MessageID: "x", SenderID: "a", Content: "hi", CreatedAt: models.NowTimestamp(),
	})
	assert.ErrorIs(t, err, ErrNotFound)

	first := &models.Message{MatchID: "m1", MessageID: "msg-1", SenderID: "a", Content: "one", CreatedAt: models.NowTimestamp()}
	second := &models.Message{MatchID: "m1", MessageID: "msg-2", SenderID: "b", Content: "two", CreatedAt: models.NowTimestamp()}
	require.NoError(t, s.AppendMessage(ctx, first))
	require.NoError(t, s.AppendMessage(ctx, second))

	got, err := s.GetMatch(ctx, "m1")
	require.NoError(t, err)
	require.NotNil(t, got.LastMessage)
	assert.Equal(t, "msg-2", got.LastMessage.MessageID)
}

func TestMarkMessagesReadSyncsLastMessageCopy(t *testing.T) {
	s := NewMemoryStore()
	seedProfiles(t, s, "a", "b")
	ctx := context.Background()

	match := &models.Match{
		MatchID:   "m1",
		Users:     []string{"a", "b"},
		PairKey:   models.PairKeyFor("a", "b"),
		CreatedAt: models.NowTimestamp(),
	}
	require.NoError(t, s.CommitMatch(ctx, models.NewSwipeAction("a", "b", models.ActionLike), match))
	require.NoError(t, s.AppendMessage(ctx, &models.Message{
		MatchID: "m1", MessageID: "msg-1", SenderID: "a", Content: "hello", CreatedAt: models.NowTimestamp(),
	}))

	require.NoError(t, s.MarkMessagesRead(ctx, "m1", "b"))

	messages, err := s.ListMessages(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].Read)

	got, err := s.GetMatch(ctx, "m1")
	require.NoError(t, err)
	require.NotNil(t, got.LastMessage)
	assert.True(t, got.LastMessage.Read, "denormalized copy must reflect the read flag")
}

func TestStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	seedProfiles(t, s, "a")
	ctx := context.Background()

	profile, err := s.GetProfile(ctx, "a")
	require.NoError(t, err)
	profile.Matches = append(profile.Matches, "tampered")

	fresh, err := s.GetProfile(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, fresh.Matches, "callers must not be able to mutate stored records")
}
