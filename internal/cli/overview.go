package cli

import (
	"encoding/json"
	"fmt"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/breakaway-dev/rinkctl/internal/league"
	"github.com/breakaway-dev/rinkctl/internal/logging"
)

// activeCount is a total plus the records currently marked active.
type activeCount struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// seasonCount is a total plus the seasons still in progress.
type seasonCount struct {
	Total   int `json:"total"`
	Current int `json:"current"`
}

// matchCount is a total plus the matches already played.
type matchCount struct {
	Total  int `json:"total"`
	Played int `json:"played"`
}

// overviewSummary aggregates what the backend holds right now.
type overviewSummary struct {
	Teams   activeCount `json:"teams"`
	Players activeCount `json:"players"`
	Seasons seasonCount `json:"seasons"`
	Matches matchCount  `json:"matches"`
}

// NewOverviewCmd creates the overview command, a one-screen summary of the
// whole league.
func NewOverviewCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "League at a glance",
		Long:  "Fetch every entity concurrently and summarize totals and states.",
		Example: `  # Summary table
  rinkctl overview

  # Machine-readable
  rinkctl overview --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeOverview(cmd, output)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "output format: table or json (default from config)")
	return cmd
}

// executeOverview fetches all four entities in parallel and renders the
// aggregate. Any single fetch failure fails the whole command.
func executeOverview(cmd *cobra.Command, output string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	audit := newAuditContext(ctx, "overview", map[string]string{"output": output})

	format, err := resolveOutput(output)
	if err != nil {
		audit.logFailure(ctx, err)
		return err
	}

	client := apiClient(ctx)

	var (
		teams   []league.Team
		players []league.Player
		seasons []league.Season
		matches []league.Match
	)

	start := time.Now()
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	g.Go(func() error {
		var fetchErr error
		teams, fetchErr = client.ListTeams(gCtx)
		return fetchErr
	})
	g.Go(func() error {
		var fetchErr error
		players, fetchErr = client.ListPlayers(gCtx)
		return fetchErr
	})
	g.Go(func() error {
		var fetchErr error
		seasons, fetchErr = client.ListSeasons(gCtx)
		return fetchErr
	})
	g.Go(func() error {
		var fetchErr error
		matches, fetchErr = client.ListMatches(gCtx)
		return fetchErr
	})
	if err := g.Wait(); err != nil {
		log.Error().Ctx(ctx).Err(err).Msg("overview fetch failed")
		audit.logFailure(ctx, err)
		return fmt.Errorf("fetching overview: %w", err)
	}

	summary := buildOverviewSummary(teams, players, seasons, matches)
	total := summary.Teams.Total + summary.Players.Total + summary.Seasons.Total + summary.Matches.Total

	log.Info().Ctx(ctx).
		Str("operation", "overview").
		Int("row_count", total).
		Dur("duration", time.Since(start)).
		Msg("overview complete")

	if format == outputFormatJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(summary); err != nil {
			audit.logFailure(ctx, err)
			return err
		}
	} else if err := renderOverviewTable(cmd, summary); err != nil {
		audit.logFailure(ctx, err)
		return err
	}

	audit.logSuccess(ctx, total)
	return nil
}

func buildOverviewSummary(
	teams []league.Team,
	players []league.Player,
	seasons []league.Season,
	matches []league.Match,
) overviewSummary {
	var summary overviewSummary

	summary.Teams.Total = len(teams)
	for _, team := range teams {
		if team.Active {
			summary.Teams.Active++
		}
	}

	summary.Players.Total = len(players)
	for _, player := range players {
		if player.Active {
			summary.Players.Active++
		}
	}

	summary.Seasons.Total = len(seasons)
	for _, season := range seasons {
		if !season.Archived {
			summary.Seasons.Current++
		}
	}

	summary.Matches.Total = len(matches)
	for _, match := range matches {
		if match.Played {
			summary.Matches.Played++
		}
	}

	return summary
}

func renderOverviewTable(cmd *cobra.Command, summary overviewSummary) error {
	const tabPadding = 2
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)

	fmt.Fprintln(w, "Entity\tTotal\tStatus")
	fmt.Fprintln(w, "------\t-----\t------")
	fmt.Fprintf(w, "Teams\t%d\t%d active\n", summary.Teams.Total, summary.Teams.Active)
	fmt.Fprintf(w, "Players\t%d\t%d active\n", summary.Players.Total, summary.Players.Active)
	fmt.Fprintf(w, "Seasons\t%d\t%d current\n", summary.Seasons.Total, summary.Seasons.Current)
	fmt.Fprintf(w, "Matches\t%d\t%d played\n", summary.Matches.Total, summary.Matches.Played)
	return w.Flush()
}
