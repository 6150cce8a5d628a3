package outbox

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureSchemaReturnsLatestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/subjects/meal_plan_events-meal.logged/versions/latest", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": 12, "version": 3}`))
	}))
	defer srv.Close()

	id, err := NewSchemaRegistryClient(srv.URL+"/").EnsureSchema(context.Background(), "meal_plan_events-meal.logged", mealLoggedSchema)
	require.NoError(t, err)
	require.Equal(t, 12, id)
}

func TestEnsureSchemaRegistersUnknownSubject(t *testing.T) {
	var registered map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPost:
			require.Equal(t, "/subjects/nutrition_profile_events-profile.targets_updated/versions", r.URL.Path)
			require.Equal(t, "application/vnd.schemaregistry.v1+json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&registered))
			_, _ = w.Write([]byte(`{"id": 5}`))
		}
	}))
	defer srv.Close()

	id, err := NewSchemaRegistryClient(srv.URL).EnsureSchema(context.Background(), "nutrition_profile_events-profile.targets_updated", profileTargetsUpdatedSchema)
	require.NoError(t, err)
	require.Equal(t, 5, id)
	require.Equal(t, "JSON", registered["schemaType"])
	require.JSONEq(t, profileTargetsUpdatedSchema, registered["schema"])
}

func TestEnsureSchemaDoesNotRegisterOnServerError(t *testing.T) {
	posts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			posts++
		}
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewSchemaRegistryClient(srv.URL).EnsureSchema(context.Background(), "s", "{}")
	require.ErrorContains(t, err, "schema registry fetch error (500)")
	require.Zero(t, posts)
}

func TestSchemaCatalogEntriesAreValidJSON(t *testing.T) {
	for eventType, schema := range schemaCatalog {
		var doc map[string]any
		require.NoErrorf(t, json.Unmarshal([]byte(schema), &doc), "schema for %s", eventType)
		require.Equal(t, "object", doc["type"])
	}
}
