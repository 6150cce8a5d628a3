package recipegen

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGeminiClientSendsSchemaAndReturnsText(t *testing.T) {
	var captured generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/models/gemini-2.0-flash:generateContent", r.URL.Path)
		require.Equal(t, "secret", r.Header.Get("x-goog-api-key"))
		require.Empty(t, r.URL.RawQuery)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"[]"}]}}]}`))
	}))
	defer server.Close()

	client := NewGeminiClient(server.URL, "secret", "", time.Second)
	text, err := client.GenerateJSON(context.Background(), "oi", RecipeSchema())
	require.NoError(t, err)
	require.Equal(t, "[]", text)

	require.Equal(t, "application/json", captured.GenerationConfig.ResponseMimeType)
	require.NotNil(t, captured.GenerationConfig.ResponseSchema)
	require.Equal(t, "ARRAY", captured.GenerationConfig.ResponseSchema.Type)
	require.Equal(t, "oi", captured.Contents[0].Parts[0].Text)
	require.Equal(t, "user", captured.Contents[0].Role)
}

func TestGeminiClientErrors(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer failing.Close()

	_, err := NewGeminiClient(failing.URL, "k", "", time.Second).GenerateJSON(context.Background(), "x", nil)
	require.ErrorIs(t, err, ErrUpstream)
	require.Contains(t, err.Error(), "429")
	require.NotContains(t, err.Error(), "quota exceeded")

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer empty.Close()

	_, err = NewGeminiClient(empty.URL, "k", "", time.Second).GenerateJSON(context.Background(), "x", nil)
	require.ErrorIs(t, err, ErrEmptyResponse)

	_, err = NewGeminiClient(empty.URL, "", "", time.Second).GenerateJSON(context.Background(), "x", nil)
	require.ErrorIs(t, err, ErrUpstream)
}

func TestGeminiClientErrorsDoNotExposeAPIKey(t *testing.T) {
	client := NewGeminiClient("http://127.0.0.1:1", "SUPER-SECRET-KEY", "", time.Second)
	client.logger = log.New(io.Discard, "", 0)

	_, err := client.GenerateJSON(context.Background(), "x", nil)
	require.ErrorIs(t, err, ErrUpstream)
	require.NotContains(t, err.Error(), "SUPER-SECRET-KEY")
	require.NotContains(t, err.Error(), "127.0.0.1")
}
