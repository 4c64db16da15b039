package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/breakaway-dev/rinkctl/internal/league"
	"github.com/breakaway-dev/rinkctl/internal/listview"
)

// View renders the current screen (Bubble Tea interface).
func (m BrowseModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateError:
		return m.renderErrorView()
	case ViewStateLoading:
		return m.renderLoadingView()
	case ViewStateDetail:
		return m.renderDetailView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

// renderTabs draws the entity tab bar with the current tab highlighted.
func (m BrowseModel) renderTabs() string {
	entities := league.Entities()
	tabs := make([]string, 0, len(entities))
	for i, entity := range entities {
		label := fmt.Sprintf("%d %s", i+1, entity.Title())
		if entity == m.entity {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m BrowseModel) renderLoadingView() string {
	message := InfoStyle.Render(fmt.Sprintf("%s Loading %s...", m.loading.View(), m.entity.String()))
	return lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), message)
}

func (m BrowseModel) renderErrorView() string {
	banner := ErrorBannerStyle.Render(fmt.Sprintf("Could not load %s: %v", m.entity.String(), m.err))
	hint := SubtleStyle.Render("Press 'r' to retry, tab/1-4 to switch, 'q' to quit")
	return lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), banner, hint)
}

// renderListView draws the table screen with banner, status bar and the
// search input when it is open.
func (m BrowseModel) renderListView() string {
	sections := []string{m.renderTabs(), m.table.View()}

	if m.notice != "" {
		sections = append(sections, ErrorBannerStyle.Render(m.notice))
	}

	sections = append(sections, m.renderStatusBar())

	if m.searching {
		sections = append(sections, LabelStyle.Render("Search: ")+m.textInput.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStatusBar shows the page window, active search and sort, plus the
// key hints for the current tab.
func (m BrowseModel) renderStatusBar() string {
	eng := m.engine()
	if eng == nil {
		return ""
	}
	view := eng.View()

	status := fmt.Sprintf("No rows | Page %d/%d", view.Page, view.TotalPages)
	if view.TotalItems > 0 {
		status = fmt.Sprintf("Rows %d-%d of %d | Page %d/%d",
			view.PageStart, view.PageEnd, view.TotalItems, view.Page, view.TotalPages)
	}
	if query := eng.Query(); query != "" {
		status += fmt.Sprintf(" | Search: %q (%d/%d)", query, view.TotalItems, eng.RowCount())
	}
	if state := eng.Sort(); state.IsSorted() {
		status += fmt.Sprintf(" | Sort: %s %s", state.Key, state.Direction)
	}

	help := "tab/1-4 switch | / search | s sort | [ ] page | enter detail | r reload | q quit"
	if m.entity.Toggleable() {
		help = "tab/1-4 switch | / search | s sort | [ ] page | space toggle | enter detail | r reload | q quit"
	}

	return SubtleStyle.Render(status) + "\n" + SubtleStyle.Render(help)
}

// renderDetailView shows every column of the selected row, plus the record
// ID which the table itself does not display.
func (m BrowseModel) renderDetailView() string {
	eng := m.engine()
	if eng == nil {
		return ""
	}
	view := eng.View()
	if m.selected < 0 || m.selected >= len(view.Rows) {
		return SubtleStyle.Render("Nothing selected. Press ESC to return.")
	}
	row := view.Rows[m.selected]

	var content strings.Builder
	content.WriteString(HeaderStyle.Render(strings.ToUpper(m.entity.Singular()) + " DETAIL"))
	content.WriteString("\n\n")

	if id, ok := row["id"].(string); ok {
		content.WriteString(LabelStyle.Render(detailLabel("ID")))
		content.WriteString(ValueStyle.Render(id))
		content.WriteString("\n")
	}
	for _, col := range eng.Columns() {
		content.WriteString(LabelStyle.Render(detailLabel(col.Title)))
		content.WriteString(ValueStyle.Render(listview.FormatCell(col, row)))
		content.WriteString("\n")
	}

	content.WriteString(SubtleStyle.Render("\nPress ESC to return"))
	return BoxStyle.Width(m.width - borderPadding).Render(content.String())
}

const detailLabelWidth = 10

func detailLabel(title string) string {
	return fmt.Sprintf("%-*s", detailLabelWidth, title)
}
