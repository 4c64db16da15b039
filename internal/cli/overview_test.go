package cli_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breakaway-dev/rinkctl/internal/config"
)

func TestOverviewCmd_Table(t *testing.T) {
	startBackend(t, leagueMux(t))

	out, err := executeCommand(t, "overview")
	require.NoError(t, err)

	assert.Contains(t, out, "Entity")
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "Teams")
	assert.Contains(t, out, "2 active")
	assert.Contains(t, out, "1 current")
	assert.Contains(t, out, "1 played")
}

func TestOverviewCmd_JSON(t *testing.T) {
	startBackend(t, leagueMux(t))

	out, err := executeCommand(t, "overview", "--output", "json")
	require.NoError(t, err)

	var summary struct {
		Teams struct {
			Total  int `json:"total"`
			Active int `json:"active"`
		} `json:"teams"`
		Players struct {
			Total  int `json:"total"`
			Active int `json:"active"`
		} `json:"players"`
		Seasons struct {
			Total   int `json:"total"`
			Current int `json:"current"`
		} `json:"seasons"`
		Matches struct {
			Total  int `json:"total"`
			Played int `json:"played"`
		} `json:"matches"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &summary))

	assert.Equal(t, 3, summary.Teams.Total)
	assert.Equal(t, 2, summary.Teams.Active)
	assert.Equal(t, 2, summary.Players.Total)
	assert.Equal(t, 2, summary.Players.Active)
	assert.Equal(t, 2, summary.Seasons.Total)
	assert.Equal(t, 1, summary.Seasons.Current)
	assert.Equal(t, 2, summary.Matches.Total)
	assert.Equal(t, 1, summary.Matches.Played)
}

func TestOverviewCmd_PartialFetchFailureFailsCommand(t *testing.T) {
	mux := leagueMux(t)
	broken := http.NewServeMux()
	broken.Handle("/api/v1/teams", mux)
	broken.Handle("/api/v1/players", mux)
	broken.Handle("/api/v1/seasons", mux)
	broken.HandleFunc("/api/v1/matches", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"schedule store offline"}`))
	})
	startBackend(t, broken)

	_, err := executeCommand(t, "overview")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching overview")
	assert.Contains(t, err.Error(), "schedule store offline")
}

func TestOverviewCmd_InvalidOutputRejectedBeforeFetch(t *testing.T) {
	// No backend: validation must fail before any network call.
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvLogLevel, "error")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)

	_, err := executeCommand(t, "overview", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
