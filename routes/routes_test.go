package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studymates_server/middleware"
	"studymates_server/models"
	"studymates_server/services"
	"studymates_server/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "routes-test-secret"

// newTestServer wires the full API the way main does, against a seeded
// in-memory store
func newTestServer(t *testing.T, userIDs ...string) *mux.Router {
	t.Helper()
	s := store.NewMemoryStore()
	for _, id := range userIDs {
		require.NoError(t, s.PutProfile(context.Background(), &models.UserProfile{
			UserID:    id,
			Name:      "Student " + id,
			Email:     id + "@studymates.test",
			CreatedAt: models.NowTimestamp(),
		}))
	}

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(testSecret))
	RegisterUserProfileRoutes(api, &services.UserProfileService{Store: s})
	RegisterActionRoutes(api, &services.SwipeService{Store: s})
	RegisterMatchRoutes(api, &services.MatchService{Store: s})
	RegisterChatRoutes(api, &services.ChatService{Store: s}, nil)
	return r
}

func doJSON(t *testing.T, r *mux.Router, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": userID,
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+signed)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAPISwipeToChatFlow(t *testing.T) {
	r := newTestServer(t, "u1", "u2")

	// u1 likes u2: no match yet
	rec := doJSON(t, r, "POST", "/api/action/swipe", "u1", map[string]string{
		"targetUserId": "u2", "action": "like",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var swipeResp struct {
		IsMatch bool          `json:"isMatch"`
		Match   *models.Match `json:"match"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &swipeResp))
	assert.False(t, swipeResp.IsMatch)

	// u2 likes back: match created
	rec = doJSON(t, r, "POST", "/api/action/swipe", "u2", map[string]string{
		"targetUserId": "u1", "action": "like",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &swipeResp))
	require.True(t, swipeResp.IsMatch)
	require.NotNil(t, swipeResp.Match)
	matchID := swipeResp.Match.MatchID

	// u1 sends a message
	rec = doJSON(t, r, "POST", "/api/chat/messages", "u1", map[string]string{
		"matchId": matchID, "content": "hello!",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// u2 sees the match first in their list, unread
	rec = doJSON(t, r, "GET", "/api/matches", "u2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var matches []services.MatchWithProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
	require.Len(t, matches, 1)
	assert.True(t, matches[0].Unread)
	assert.Equal(t, "u1", matches[0].Profile.UserID)

	// u2 reads the conversation
	rec = doJSON(t, r, "POST", "/api/chat/markRead", "u2", map[string]string{"matchId": matchID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, "GET", "/api/chat/messages?matchId="+matchID, "u2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var messages []models.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "hello!", messages[0].Content)
	assert.True(t, messages[0].Read)
}

func TestAPIErrorMapping(t *testing.T) {
	r := newTestServer(t, "u1", "u2")

	// No token
	rec := doJSON(t, r, "GET", "/api/matches", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Unknown target profile
	rec = doJSON(t, r, "POST", "/api/action/swipe", "u1", map[string]string{
		"targetUserId": "ghost", "action": "like",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Malformed action kind
	rec = doJSON(t, r, "POST", "/api/action/swipe", "u1", map[string]string{
		"targetUserId": "u2", "action": "superlike",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown match
	rec = doJSON(t, r, "GET", "/api/matches/nope", "u1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Whitespace-only message content
	rec = doJSON(t, r, "POST", "/api/chat/messages", "u1", map[string]string{
		"matchId": "whatever", "content": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPIProfileLifecycle(t *testing.T) {
	r := newTestServer(t)

	rec := doJSON(t, r, "POST", "/api/profiles", "u9", services.ProfileInput{
		Name:      "Casey Nguyen",
		Email:     "casey@studymates.test",
		Strengths: []string{"Chemistry"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, "GET", "/api/profiles/me", "u9", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var profile models.UserProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "u9", profile.UserID)
	assert.Equal(t, []string{"Chemistry"}, profile.Strengths)

	rec = doJSON(t, r, "GET", "/api/profiles/u9", "u9", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, "GET", "/api/profiles/missing", "u9", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
