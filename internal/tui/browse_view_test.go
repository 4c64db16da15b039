package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breakaway-dev/rinkctl/internal/league"
)

func TestBrowseView_ListScreen(t *testing.T) {
	model := loadedModel(t, newFakeBackend(), 25)

	out := model.View()
	assert.Contains(t, out, "1 Teams")
	assert.Contains(t, out, "2 Players")
	assert.Contains(t, out, "3 Seasons")
	assert.Contains(t, out, "4 Matches")
	assert.Contains(t, out, "Rows 1-3 of 3")
	assert.Contains(t, out, "Page 1/1")
	assert.Contains(t, out, "space toggle")
}

func TestBrowseView_SeasonsHelpOmitsToggle(t *testing.T) {
	model := loadedModel(t, newFakeBackend(), 25)

	model, _ = pressKey(t, model, "3")
	fetch := model.fetchRows(league.EntitySeasons)
	model, _ = applyMsg(t, model, fetch())

	out := model.View()
	assert.NotContains(t, out, "space toggle")
	assert.Contains(t, out, "enter detail")
}

func TestBrowseView_EmptyList(t *testing.T) {
	backend := newFakeBackend()
	backend.rows[league.EntityTeams] = nil
	model := loadedModel(t, backend, 25)

	assert.Contains(t, model.View(), "No rows | Page 1/1")
}

func TestBrowseView_SearchStatus(t *testing.T) {
	model := loadedModel(t, newFakeBackend(), 25)

	model, _ = pressKey(t, model, "/")
	model, _ = pressKey(t, model, "f")
	model, _ = pressKey(t, model, "a")

	out := model.View()
	assert.Contains(t, out, `Search: "fa" (1/3)`)
	assert.Contains(t, out, "Rows 1-1 of 1")
}

func TestBrowseView_NoticeBanner(t *testing.T) {
	model := loadedModel(t, newFakeBackend(), 25)
	model.notice = "Could not update team t1: flag is locked"

	assert.Contains(t, model.View(), "Could not update team t1")
}

func TestBrowseView_DetailShowsAllFields(t *testing.T) {
	model := loadedModel(t, newFakeBackend(), 25)

	model, _ = pressKey(t, model, "enter")
	require.Equal(t, ViewStateDetail, model.state)

	out := model.View()
	assert.Contains(t, out, "TEAM DETAIL")
	assert.Contains(t, out, "t1")
	assert.Contains(t, out, "Aces")
	assert.Contains(t, out, "Fargo")
	assert.Contains(t, out, "active")
	assert.Contains(t, out, "Press ESC to return")
}

func TestBrowseView_LoadingScreen(t *testing.T) {
	model := NewBrowseModel(context.Background(), newFakeBackend(), league.EntityTeams, 25)

	assert.Contains(t, model.View(), "Loading teams")
}
