package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breakaway-dev/rinkctl/internal/league"
)

func TestClient_ListTeams(t *testing.T) {
	var gotAuth, gotRequestID, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/v1/teams", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		gotAccept = r.Header.Get("Accept")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"t1","name":"Glacier Kings","city":"Fargo","division":"West","wins":12,"losses":4,"active":true},
			{"id":"t2","name":"Polar Bears","city":"Bemidji","division":"East","wins":9,"losses":7,"active":false}
		]`))
	}))
	defer server.Close()

	client := New(server.URL, WithToken("sekrit"))
	teams, err := client.ListTeams(context.Background())

	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Glacier Kings", teams[0].Name)
	assert.Equal(t, 12, teams[0].Wins)
	assert.False(t, teams[1].Active)

	assert.Equal(t, "Bearer sekrit", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
	assert.Len(t, gotRequestID, 26, "request id should be a ULID")
}

func TestClient_NoTokenMeansNoAuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := New(server.URL).ListTeams(context.Background())
	require.NoError(t, err)
}

func TestClient_EmptyListIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	teams, err := New(server.URL).ListTeams(context.Background())

	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestClient_BackendErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"db down"}`))
	}))
	defer server.Close()

	_, err := New(server.URL).ListTeams(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "db down", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "db down")
	assert.False(t, apiErr.IsNotFound())
}

func TestClient_BackendErrorPlainBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("team missing\n"))
	}))
	defer server.Close()

	err := New(server.URL).SetTeamActive(context.Background(), "ghost", true)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNotFound())
	assert.Equal(t, "team missing", apiErr.Message)
}

func TestClient_UnreachableBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	server.Close()

	_, err := New(server.URL).ListTeams(context.Background())
	require.Error(t, err)
}

func TestClient_SetTeamActive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/v1/teams/t1", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]bool
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]bool{"active": false}, body)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := New(server.URL).SetTeamActive(context.Background(), "t1", false)
	require.NoError(t, err)
}

func TestClient_SetActive(t *testing.T) {
	t.Run("routes players", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/players/p9", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		err := New(server.URL).SetActive(context.Background(), league.EntityPlayers, "p9", true)
		require.NoError(t, err)
	})

	t.Run("rejects entities without an active flag", func(t *testing.T) {
		err := New("http://example.invalid").SetActive(context.Background(), league.EntitySeasons, "s1", true)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no active flag")
	})

	t.Run("rejects empty id", func(t *testing.T) {
		err := New("http://example.invalid").SetTeamActive(context.Background(), "", true)
		assert.ErrorIs(t, err, ErrMissingID)
	})
}

func TestClient_ListRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/players", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id":"p1","name":"Sam Varga","team":"Glacier Kings","position":"C","number":12,"points":31,"active":true},
			{"id":"p2","name":"Rookie Tryout","team":"Glacier Kings","position":"D","number":null,"points":0,"active":false}
		]`))
	}))
	defer server.Close()

	rows, err := New(server.URL).ListRows(context.Background(), league.EntityPlayers)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Sam Varga", rows[0]["name"])
	assert.Equal(t, 12, rows[0]["number"])
	assert.Nil(t, rows[1]["number"])
}

func TestClient_Version(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/version", r.URL.Path)
		_, _ = w.Write([]byte(`{"version":"1.4.2"}`))
	}))
	defer server.Close()

	info, err := New(server.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.4.2", info.Version)
}

func TestCheckCompatibility(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr string
	}{
		{"exact minimum", "1.2.0", ""},
		{"newer major", "2.0.1", ""},
		{"too old", "1.1.9", "older than the supported minimum"},
		{"garbage version", "not-a-version", "invalid version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCompatibility(VersionInfo{Version: tt.version})
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWithTimeout(t *testing.T) {
	client := New("http://example.invalid", WithTimeout(2*time.Second))
	assert.Equal(t, 2*time.Second, client.http.Timeout)

	// Non-positive values keep the default.
	client = New("http://example.invalid", WithTimeout(0))
	assert.Equal(t, DefaultTimeout, client.http.Timeout)
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(server.URL).ListTeams(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
