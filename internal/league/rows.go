package league

import (
	"fmt"
	"strconv"

	"github.com/breakaway-dev/rinkctl/internal/listview"
)

// TeamColumns returns the column layout for team lists.
func TeamColumns() []listview.Column {
	return []listview.Column{
		listview.NewColumn("name", "NAME"),
		listview.NewColumn("city", "CITY"),
		listview.NewColumn("division", "DIVISION"),
		listview.NewColumn("wins", "W").WithWidth(4).WithAlign(listview.AlignRight),
		listview.NewColumn("losses", "L").WithWidth(4).WithAlign(listview.AlignRight),
		listview.NewColumn("active", "STATUS").WithRender(activeRender),
	}
}

// TeamRows projects teams into list view rows.
func TeamRows(teams []Team) []listview.Row {
	rows := make([]listview.Row, 0, len(teams))
	for _, team := range teams {
		rows = append(rows, listview.Row{
			"id":       team.ID,
			"name":     team.Name,
			"city":     team.City,
			"division": team.Division,
			"wins":     team.Wins,
			"losses":   team.Losses,
			"active":   team.Active,
		})
	}
	return rows
}

// PlayerColumns returns the column layout for player lists.
func PlayerColumns() []listview.Column {
	return []listview.Column{
		listview.NewColumn("name", "NAME"),
		listview.NewColumn("team", "TEAM"),
		listview.NewColumn("position", "POS").WithWidth(4),
		listview.NewColumn("number", "NO").WithWidth(4).WithAlign(listview.AlignRight).WithRender(jerseyRender),
		listview.NewColumn("points", "PTS").WithWidth(5).WithAlign(listview.AlignRight),
		listview.NewColumn("active", "STATUS").WithRender(activeRender),
	}
}

// PlayerRows projects players into list view rows. An unassigned jersey
// number becomes a null cell.
func PlayerRows(players []Player) []listview.Row {
	rows := make([]listview.Row, 0, len(players))
	for _, player := range players {
		rows = append(rows, listview.Row{
			"id":       player.ID,
			"name":     player.Name,
			"team":     player.Team,
			"position": player.Position,
			"number":   intCell(player.Number),
			"points":   player.Points,
			"active":   player.Active,
		})
	}
	return rows
}

// SeasonColumns returns the column layout for season lists.
func SeasonColumns() []listview.Column {
	return []listview.Column{
		listview.NewColumn("name", "NAME"),
		listview.NewColumn("start_date", "STARTS"),
		listview.NewColumn("end_date", "ENDS"),
		listview.NewColumn("archived", "STATUS").WithRender(archivedRender),
	}
}

// SeasonRows projects seasons into list view rows. An open ended season
// has a null end date cell.
func SeasonRows(seasons []Season) []listview.Row {
	rows := make([]listview.Row, 0, len(seasons))
	for _, season := range seasons {
		rows = append(rows, listview.Row{
			"id":         season.ID,
			"name":       season.Name,
			"start_date": season.StartDate,
			"end_date":   stringCell(season.EndDate),
			"archived":   season.Archived,
		})
	}
	return rows
}

// MatchColumns returns the column layout for match lists. The score column
// reads both score cells through its renderer.
func MatchColumns() []listview.Column {
	return []listview.Column{
		listview.NewColumn("date", "DATE"),
		listview.NewColumn("home_team", "HOME"),
		listview.NewColumn("away_team", "AWAY"),
		listview.NewColumn("home_score", "SCORE").WithWidth(8).WithAlign(listview.AlignRight).WithRender(scoreRender),
		listview.NewColumn("venue", "VENUE"),
		listview.NewColumn("played", "STATUS").WithRender(playedRender),
	}
}

// MatchRows projects matches into list view rows. Unplayed matches carry
// null score cells; an unassigned venue is a null cell.
func MatchRows(matches []Match) []listview.Row {
	rows := make([]listview.Row, 0, len(matches))
	for _, match := range matches {
		rows = append(rows, listview.Row{
			"id":         match.ID,
			"date":       match.Date,
			"home_team":  match.HomeTeam,
			"away_team":  match.AwayTeam,
			"home_score": intCell(match.HomeScore),
			"away_score": intCell(match.AwayScore),
			"venue":      stringCell(match.Venue),
			"played":     match.Played,
		})
	}
	return rows
}

// intCell converts an optional int into a row cell, nil for null.
func intCell(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// stringCell converts an optional string into a row cell, nil for null.
func stringCell(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func activeRender(value any, _ listview.Row) string {
	if active, ok := value.(bool); ok && active {
		return "active"
	}
	return "inactive"
}

func archivedRender(value any, _ listview.Row) string {
	if archived, ok := value.(bool); ok && archived {
		return "archived"
	}
	return "current"
}

func playedRender(value any, _ listview.Row) string {
	if played, ok := value.(bool); ok && played {
		return "final"
	}
	return "scheduled"
}

func jerseyRender(value any, _ listview.Row) string {
	number, ok := value.(int)
	if !ok {
		return listview.NullPlaceholder
	}
	return "#" + strconv.Itoa(number)
}

func scoreRender(_ any, row listview.Row) string {
	home, homeOK := row["home_score"].(int)
	away, awayOK := row["away_score"].(int)
	if !homeOK || !awayOK {
		return listview.NullPlaceholder
	}
	return fmt.Sprintf("%d - %d", home, away)
}
