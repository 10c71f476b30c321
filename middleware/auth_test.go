package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret, sub string, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(expiresIn).Unix(),
		"iat": time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authedHandler(gotUserID *string) http.Handler {
	return Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotUserID = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAuthAcceptsValidToken(t *testing.T) {
	var gotUserID string
	handler := authedHandler(&gotUserID)

	req := httptest.NewRequest("GET", "/api/profiles/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "u1", time.Hour))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", gotUserID)
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	var gotUserID string
	handler := authedHandler(&gotUserID)

	req := httptest.NewRequest("GET", "/api/profiles/me", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, gotUserID)
}

func TestAuthRejectsWrongSecret(t *testing.T) {
	var gotUserID string
	handler := authedHandler(&gotUserID)

	req := httptest.NewRequest("GET", "/api/profiles/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "u1", time.Hour))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	var gotUserID string
	handler := authedHandler(&gotUserID)

	req := httptest.NewRequest("GET", "/api/profiles/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "u1", -time.Hour))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
