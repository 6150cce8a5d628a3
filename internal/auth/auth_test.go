package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testConfig = Config{Secret: "test-secret", Issuer: "nutria"}

func TestParseRoundTrip(t *testing.T) {
	token, err := Issue(testConfig, "user-1", []string{ScopeMenuRead, ScopeProfileWrite}, time.Hour)
	require.NoError(t, err)

	claims, err := Parse(token, testConfig)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.True(t, claims.HasScope(ScopeMenuRead))
	require.True(t, claims.HasScope(ScopeProfileWrite))
	require.False(t, claims.HasScope(ScopeRecipesGenerate))
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestParseRejectsBadTokens(t *testing.T) {
	_, err := Parse("  ", testConfig)
	require.ErrorIs(t, err, ErrMissingToken)

	wrongIssuer, err := Issue(Config{Secret: testConfig.Secret, Issuer: "other"}, "u", nil, time.Hour)
	require.NoError(t, err)
	_, err = Parse(wrongIssuer, testConfig)
	require.ErrorIs(t, err, ErrInvalidToken)

	wrongSecret, err := Issue(Config{Secret: "nope", Issuer: testConfig.Issuer}, "u", nil, time.Hour)
	require.NoError(t, err)
	_, err = Parse(wrongSecret, testConfig)
	require.ErrorIs(t, err, ErrInvalidToken)

	expired, err := Issue(testConfig, "u", nil, -time.Minute)
	require.NoError(t, err)
	_, err = Parse(expired, testConfig)
	require.ErrorIs(t, err, ErrInvalidToken)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": testConfig.Issuer,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testConfig.Secret))
	require.NoError(t, err)
	_, err = Parse(noSubject, testConfig)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAcceptsSpaceSeparatedScopes(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":    "user-2",
		"iss":    testConfig.Issuer,
		"exp":    time.Now().Add(time.Hour).Unix(),
		"scopes": "menu:read  menu:write",
	}).SignedString([]byte(testConfig.Secret))
	require.NoError(t, err)

	claims, err := Parse(token, testConfig)
	require.NoError(t, err)
	require.Len(t, claims.Scopes, 2)
	require.True(t, claims.HasAny(ScopeProfileRead, ScopeMenuWrite))
	require.False(t, claims.HasAny(ScopeProfileRead, ScopeRecipesGenerate))
}

func TestVerifierMiddleware(t *testing.T) {
	var seen *Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := NewVerifier(testConfig, PublicPaths).Middleware(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/menu", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"type":"unauthorized","detail":"missing bearer token"}`, rec.Body.String())

	basic := httptest.NewRequest(http.MethodGet, "/v1/menu", nil)
	basic.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, basic)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := Issue(testConfig, "user-9", AllScopes, time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/v1/menu", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "user-9", seen.UserID)

	seen = nil
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/recipes/12", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Nil(t, seen)
}

func TestPublicPaths(t *testing.T) {
	require.True(t, PublicPaths(httptest.NewRequest(http.MethodGet, "/healthz", nil)))
	require.True(t, PublicPaths(httptest.NewRequest(http.MethodGet, "/v1/recipes", nil)))
	require.True(t, PublicPaths(httptest.NewRequest(http.MethodOptions, "/v1/menu", nil)))
	require.False(t, PublicPaths(httptest.NewRequest(http.MethodPost, "/v1/recipes/generate", nil)))
	require.False(t, PublicPaths(httptest.NewRequest(http.MethodGet, "/v1/favorites", nil)))
}
