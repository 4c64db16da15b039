// Package league defines the domain records served by the league backend
// and their list view projections.
package league

// Team is one club in the league.
type Team struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Division string `json:"division"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Active   bool   `json:"active"`
}

// Player is one rostered skater or goalie. Number is nil until a jersey
// number is assigned.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	Position string `json:"position"`
	Number   *int   `json:"number"`
	Points   int    `json:"points"`
	Active   bool   `json:"active"`
}

// Season is one scheduling period. Dates are ISO 8601 day strings, which
// also sort correctly as plain text. EndDate is nil while the season is
// open ended.
type Season struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Archived  bool    `json:"archived"`
}

// Match is one scheduled or completed game. Scores stay nil until the
// match has been played; Venue is nil until assigned.
type Match struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	HomeTeam  string  `json:"home_team"`
	AwayTeam  string  `json:"away_team"`
	HomeScore *int    `json:"home_score"`
	AwayScore *int    `json:"away_score"`
	Venue     *string `json:"venue"`
	Played    bool    `json:"played"`
}
