package api

import (
	"context"
	"net/http"

	"github.com/breakaway-dev/rinkctl/internal/league"
	"github.com/breakaway-dev/rinkctl/internal/listview"
)

// Backend collection endpoints.
const (
	pathTeams   = "/api/v1/teams"
	pathPlayers = "/api/v1/players"
	pathSeasons = "/api/v1/seasons"
	pathMatches = "/api/v1/matches"
)

// ListTeams fetches every team.
func (c *Client) ListTeams(ctx context.Context) ([]league.Team, error) {
	var teams []league.Team
	if err := c.doJSON(ctx, http.MethodGet, pathTeams, nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// ListPlayers fetches every player.
func (c *Client) ListPlayers(ctx context.Context) ([]league.Player, error) {
	var players []league.Player
	if err := c.doJSON(ctx, http.MethodGet, pathPlayers, nil, &players); err != nil {
		return nil, err
	}
	return players, nil
}

// ListSeasons fetches every season.
func (c *Client) ListSeasons(ctx context.Context) ([]league.Season, error) {
	var seasons []league.Season
	if err := c.doJSON(ctx, http.MethodGet, pathSeasons, nil, &seasons); err != nil {
		return nil, err
	}
	return seasons, nil
}

// ListMatches fetches every match.
func (c *Client) ListMatches(ctx context.Context) ([]league.Match, error) {
	var matches []league.Match
	if err := c.doJSON(ctx, http.MethodGet, pathMatches, nil, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// ListRows fetches the given entity and projects it straight into list
// view rows.
func (c *Client) ListRows(ctx context.Context, entity league.Entity) ([]listview.Row, error) {
	switch entity {
	case league.EntityPlayers:
		players, err := c.ListPlayers(ctx)
		if err != nil {
			return nil, err
		}
		return league.PlayerRows(players), nil
	case league.EntitySeasons:
		seasons, err := c.ListSeasons(ctx)
		if err != nil {
			return nil, err
		}
		return league.SeasonRows(seasons), nil
	case league.EntityMatches:
		matches, err := c.ListMatches(ctx)
		if err != nil {
			return nil, err
		}
		return league.MatchRows(matches), nil
	default:
		teams, err := c.ListTeams(ctx)
		if err != nil {
			return nil, err
		}
		return league.TeamRows(teams), nil
	}
}
