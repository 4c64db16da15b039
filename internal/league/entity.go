package league

import (
	"fmt"
	"strings"

	"github.com/breakaway-dev/rinkctl/internal/listview"
)

// Entity identifies one of the browsable record kinds.
type Entity int

// Browsable entities in tab order.
const (
	EntityTeams Entity = iota
	EntityPlayers
	EntitySeasons
	EntityMatches
)

// Entities returns every browsable entity in tab order.
func Entities() []Entity {
	return []Entity{EntityTeams, EntityPlayers, EntitySeasons, EntityMatches}
}

// String returns the CLI spelling of the entity.
func (e Entity) String() string {
	switch e {
	case EntityPlayers:
		return "players"
	case EntitySeasons:
		return "seasons"
	case EntityMatches:
		return "matches"
	default:
		return "teams"
	}
}

// Singular returns the singular spelling used in messages.
func (e Entity) Singular() string {
	switch e {
	case EntityPlayers:
		return "player"
	case EntitySeasons:
		return "season"
	case EntityMatches:
		return "match"
	default:
		return "team"
	}
}

// Title returns the tab label for the entity.
func (e Entity) Title() string {
	switch e {
	case EntityPlayers:
		return "Players"
	case EntitySeasons:
		return "Seasons"
	case EntityMatches:
		return "Matches"
	default:
		return "Teams"
	}
}

// Columns returns the list view layout for the entity.
func (e Entity) Columns() []listview.Column {
	switch e {
	case EntityPlayers:
		return PlayerColumns()
	case EntitySeasons:
		return SeasonColumns()
	case EntityMatches:
		return MatchColumns()
	default:
		return TeamColumns()
	}
}

// Toggleable reports whether the entity supports the active flag toggle.
func (e Entity) Toggleable() bool {
	return e == EntityTeams || e == EntityPlayers
}

// ParseEntity maps a CLI argument to an entity. Singular and plural
// spellings both parse; matching ignores case and surrounding space.
func ParseEntity(s string) (Entity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "team", "teams":
		return EntityTeams, nil
	case "player", "players":
		return EntityPlayers, nil
	case "season", "seasons":
		return EntitySeasons, nil
	case "match", "matches":
		return EntityMatches, nil
	default:
		return EntityTeams, fmt.Errorf("unknown entity %q (valid: teams, players, seasons, matches)", s)
	}
}
