package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/breakaway-dev/rinkctl/internal/config"
	"github.com/breakaway-dev/rinkctl/internal/league"
	"github.com/breakaway-dev/rinkctl/internal/listview"
	"github.com/breakaway-dev/rinkctl/internal/logging"
)

// runList executes one list command end to end: validate flags, fetch the
// entity's records, derive the requested page, and render it.
func runList(cmd *cobra.Command, entity league.Entity, params listParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	audit := newAuditContext(ctx, entity.String()+" list", map[string]string{
		"search": params.search,
		"sort":   params.sortExpr,
		"page":   strconv.Itoa(params.page),
		"output": params.output,
	})

	columns := entity.Columns()

	// Validate flags before touching the network.
	sortState, err := resolveSort(params.sortExpr, columns)
	if err != nil {
		audit.logFailure(ctx, err)
		return err
	}
	output, err := resolveOutput(params.output)
	if err != nil {
		audit.logFailure(ctx, err)
		return err
	}
	pageSize := params.pageSize
	if pageSize <= 0 {
		pageSize = config.GetDefaultPageSize()
	}

	log.Debug().Ctx(ctx).
		Str("entity", entity.String()).
		Str("operation", "list").
		Str("search", params.search).
		Msg("fetching records")

	start := time.Now()
	rows, err := apiClient(ctx).ListRows(ctx, entity)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Str("entity", entity.String()).Msg("fetch failed")
		audit.logFailure(ctx, err)
		return fmt.Errorf("fetching %s: %w", entity, err)
	}

	table := listview.New(columns, listview.WithPageSize(pageSize))
	table.Load(rows)
	if params.search != "" {
		table.SetSearchQuery(params.search)
	}
	if sortState.IsSorted() {
		table.SetSort(sortState.Key, sortState.Direction)
	}
	table.SetPage(params.page)
	view := table.View()

	log.Info().Ctx(ctx).
		Str("entity", entity.String()).
		Str("operation", "list").
		Int("row_count", table.RowCount()).
		Int("visible", view.TotalItems).
		Dur("duration", time.Since(start)).
		Msg("list complete")

	if err := renderView(cmd.OutOrStdout(), output, columns, view, pageSize); err != nil {
		audit.logFailure(ctx, err)
		return fmt.Errorf("rendering %s: %w", entity, err)
	}

	audit.logSuccess(ctx, view.TotalItems)
	return nil
}

// runSetActive flips one record's active flag from the command line.
func runSetActive(cmd *cobra.Command, entity league.Entity, args []string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	id := strings.TrimSpace(args[0])
	active, err := strconv.ParseBool(args[1])
	if err != nil {
		return fmt.Errorf("parsing active value %q: use true or false", args[1])
	}

	audit := newAuditContext(ctx, entity.String()+" set-active", map[string]string{
		"id":     id,
		"active": strconv.FormatBool(active),
	})

	if err := apiClient(ctx).SetActive(ctx, entity, id, active); err != nil {
		log.Error().Ctx(ctx).Err(err).
			Str("entity", entity.String()).
			Str("id", id).
			Msg("set-active failed")
		audit.logFailure(ctx, err)
		return fmt.Errorf("updating %s %s: %w", entity.Singular(), id, err)
	}

	log.Info().Ctx(ctx).
		Str("entity", entity.String()).
		Str("id", id).
		Bool("active", active).
		Msg("set-active complete")
	audit.logSuccess(ctx, 1)

	cmd.Printf("Updated %s %s: active is now %t\n", entity.Singular(), id, active)
	return nil
}
