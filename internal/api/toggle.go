package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/breakaway-dev/rinkctl/internal/league"
)

// ErrMissingID is returned when a toggle is attempted without a record ID.
var ErrMissingID = errors.New("record id is required")

// SetTeamActive updates a team's active flag.
func (c *Client) SetTeamActive(ctx context.Context, id string, active bool) error {
	return c.setActive(ctx, pathTeams, id, active)
}

// SetPlayerActive updates a player's active flag.
func (c *Client) SetPlayerActive(ctx context.Context, id string, active bool) error {
	return c.setActive(ctx, pathPlayers, id, active)
}

// SetActive routes a toggle to the entity's endpoint. Seasons and matches
// have no active flag and are rejected without a backend call.
func (c *Client) SetActive(ctx context.Context, entity league.Entity, id string, active bool) error {
	switch entity {
	case league.EntityTeams:
		return c.SetTeamActive(ctx, id, active)
	case league.EntityPlayers:
		return c.SetPlayerActive(ctx, id, active)
	default:
		return fmt.Errorf("%s records have no active flag", entity)
	}
}

func (c *Client) setActive(ctx context.Context, collection, id string, active bool) error {
	if id == "" {
		return ErrMissingID
	}
	body := map[string]bool{"active": active}
	return c.doJSON(ctx, http.MethodPatch, collection+"/"+url.PathEscape(id), body, nil)
}
