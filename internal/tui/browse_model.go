package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/breakaway-dev/rinkctl/internal/league"
	"github.com/breakaway-dev/rinkctl/internal/listview"
	"github.com/breakaway-dev/rinkctl/internal/logging"
	"github.com/breakaway-dev/rinkctl/internal/toggle"
)

// Backend is the slice of the API client the browser needs.
type Backend interface {
	ListRows(ctx context.Context, entity league.Entity) ([]listview.Row, error)
	SetActive(ctx context.Context, entity league.Entity, id string, active bool) error
}

// rowsLoadedMsg delivers the result of a list fetch for one entity tab.
type rowsLoadedMsg struct {
	entity league.Entity
	rows   []listview.Row
	err    error
}

// toggleResultMsg delivers the backend's verdict on an active flag change.
type toggleResultMsg struct {
	entity league.Entity
	id     string
	err    error
}

// clearNoticeMsg retires the notice banner once its display time is up.
type clearNoticeMsg struct {
	seq int
}

// pendingToggle tracks one in-flight active flag change. The row is held by
// reference so rollback writes straight into the engine's dataset.
type pendingToggle struct {
	txn *toggle.Txn
	row listview.Row
}

// BrowseModel is the Bubble Tea model for the interactive league browser.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type BrowseModel struct {
	ctx     context.Context
	backend Backend

	// One engine per tab, created on first load. Search, sort and page
	// state live in the engine and survive tab switches.
	entity   league.Entity
	engines  map[league.Entity]*listview.Table
	pageSize int

	state ViewState
	err   error

	table     table.Model
	textInput textinput.Model
	searching bool
	selected  int

	// In-flight active flag changes keyed by entity/id.
	pending   map[string]*pendingToggle
	notice    string
	noticeSeq int

	loading *LoadingState

	width  int
	height int
}

// NewBrowseModel creates the browser opened on the given entity tab.
func NewBrowseModel(ctx context.Context, backend Backend, entity league.Entity, pageSize int) BrowseModel {
	return BrowseModel{
		ctx:       ctx,
		backend:   backend,
		entity:    entity,
		engines:   make(map[league.Entity]*listview.Table),
		pageSize:  pageSize,
		state:     ViewStateLoading,
		textInput: newTextInput(),
		pending:   make(map[string]*pendingToggle),
		loading:   NewLoadingState(),
		width:     defaultWidth,
		height:    defaultHeight,
	}
}

// Init starts the spinner and the first fetch (Bubble Tea interface).
func (m BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.fetchRows(m.entity))
}

// fetchRows loads one entity's rows off the update loop.
func (m BrowseModel) fetchRows(entity league.Entity) tea.Cmd {
	return func() tea.Msg {
		rows, err := m.backend.ListRows(m.ctx, entity)
		return rowsLoadedMsg{entity: entity, rows: rows, err: err}
	}
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildTable()
		return m, nil
	case rowsLoadedMsg:
		return m.handleRowsLoaded(msg)
	case toggleResultMsg:
		return m.handleToggleResult(msg)
	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	if m.searching && m.state == ViewStateList {
		return m.handleSearchInput(msg)
	}

	switch m.state {
	case ViewStateLoading:
		return m.handleLoadingUpdate(msg)
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateError:
		return m.handleErrorUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

// handleRowsLoaded installs a fetch result. Responses for a tab the user has
// already left are dropped.
func (m BrowseModel) handleRowsLoaded(msg rowsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.entity != m.entity {
		return m, nil
	}

	log := logging.FromContext(m.ctx)
	if msg.err != nil {
		log.Error().Ctx(m.ctx).
			Str("entity", msg.entity.String()).
			Err(msg.err).
			Msg("browse fetch failed")
		m.state = ViewStateError
		m.err = msg.err
		return m, nil
	}

	eng, ok := m.engines[msg.entity]
	if !ok {
		eng = listview.New(msg.entity.Columns(), listview.WithPageSize(m.pageSize))
		m.engines[msg.entity] = eng
	}
	eng.Load(msg.rows)

	log.Info().Ctx(m.ctx).
		Str("entity", msg.entity.String()).
		Int("row_count", len(msg.rows)).
		Msg("browse rows loaded")

	m.state = ViewStateList
	m.err = nil
	m.rebuildTable()
	return m, nil
}

func (m BrowseModel) handleLoadingUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
		return m, nil
	}
	return m, m.loading.Update(msg)
}

func (m BrowseModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m.handleListKeypress(keyMsg)
}

//nolint:cyclop // Key dispatch is one flat switch per binding.
func (m BrowseModel) handleListKeypress(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyTab:
		return m.switchEntity(adjacentEntity(m.entity, 1))
	case keyShiftTab:
		return m.switchEntity(adjacentEntity(m.entity, -1))
	case "1", "2", "3", "4":
		return m.switchEntity(league.Entities()[keyMsg.String()[0]-'1'])
	case keySlash:
		m.searching = true
		m.textInput.Focus()
		return m, textinput.Blink
	case keyEsc:
		if eng := m.engine(); eng != nil && eng.Query() != "" {
			m.textInput.SetValue("")
			eng.SetSearchQuery("")
			m.rebuildTable()
		}
		return m, nil
	case keyS:
		m.cycleSort()
		return m, nil
	case keyPrevPage, "pgup":
		m.changePage(-1)
		return m, nil
	case keyNextPage, "pgdown":
		m.changePage(1)
		return m, nil
	case keySpace:
		return m.startToggle()
	case keyEnter:
		if eng := m.engine(); eng != nil {
			cursor := m.table.Cursor()
			if cursor >= 0 && cursor < len(eng.View().Rows) {
				m.selected = cursor
				m.state = ViewStateDetail
			}
		}
		return m, nil
	case keyR:
		return m.reload()
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}
}

// handleSearchInput applies the input value to the engine on every
// keystroke so matches narrow as the user types.
func (m BrowseModel) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter:
			m.searching = false
			m.textInput.Blur()
			return m, nil
		case keyEsc:
			m.searching = false
			m.textInput.Blur()
			m.textInput.SetValue("")
			m.applySearch()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.applySearch()
	return m, cmd
}

func (m BrowseModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEsc, keyEnter:
			m.state = ViewStateList
			m.table.Focus()
			return m, nil
		}
	}
	return m, nil
}

func (m BrowseModel) handleErrorUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyR:
		return m.reload()
	case keyTab:
		return m.switchEntity(adjacentEntity(m.entity, 1))
	case keyShiftTab:
		return m.switchEntity(adjacentEntity(m.entity, -1))
	case "1", "2", "3", "4":
		return m.switchEntity(league.Entities()[keyMsg.String()[0]-'1'])
	}
	return m, nil
}

// switchEntity moves to another tab, fetching its rows on first visit.
func (m BrowseModel) switchEntity(entity league.Entity) (tea.Model, tea.Cmd) {
	if entity == m.entity {
		return m, nil
	}

	m.entity = entity
	m.searching = false
	m.textInput.Blur()
	m.err = nil

	if eng, ok := m.engines[entity]; ok {
		m.textInput.SetValue(eng.Query())
		m.state = ViewStateList
		m.rebuildTable()
		return m, nil
	}

	m.textInput.SetValue("")
	m.state = ViewStateLoading
	return m, tea.Batch(m.loading.Init(), m.fetchRows(entity))
}

// reload refetches the current tab. The engine is reused, so search and
// sort state survive and only the page resets.
func (m BrowseModel) reload() (tea.Model, tea.Cmd) {
	m.state = ViewStateLoading
	m.err = nil
	return m, tea.Batch(m.loading.Init(), m.fetchRows(m.entity))
}

// startToggle flips the selected row's active flag optimistically and asks
// the backend to confirm. A second press while the first change is still
// unconfirmed is ignored.
func (m BrowseModel) startToggle() (tea.Model, tea.Cmd) {
	if !m.entity.Toggleable() {
		return m, nil
	}
	eng := m.engine()
	if eng == nil {
		return m, nil
	}

	view := eng.View()
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(view.Rows) {
		return m, nil
	}
	row := view.Rows[cursor]
	id, _ := row["id"].(string)
	if id == "" {
		return m, nil
	}

	key := toggleKey(m.entity, id)
	if _, inFlight := m.pending[key]; inFlight {
		return m, nil
	}

	current, _ := row["active"].(bool)
	txn := toggle.Begin(current)
	m.pending[key] = &pendingToggle{txn: txn, row: row}
	row["active"] = txn.Tentative()
	m.rebuildTable()

	entity := m.entity
	return m, func() tea.Msg {
		err := m.backend.SetActive(m.ctx, entity, id, txn.Tentative())
		return toggleResultMsg{entity: entity, id: id, err: err}
	}
}

// handleToggleResult settles an in-flight change. On rejection the row is
// rolled back to its snapshot and a timed banner names the failure.
func (m BrowseModel) handleToggleResult(msg toggleResultMsg) (tea.Model, tea.Cmd) {
	key := toggleKey(msg.entity, msg.id)
	pending, ok := m.pending[key]
	if !ok {
		return m, nil
	}
	delete(m.pending, key)

	log := logging.FromContext(m.ctx)
	if pending.txn.Resolve(msg.err) {
		log.Debug().Ctx(m.ctx).
			Str("entity", msg.entity.String()).
			Str("id", msg.id).
			Bool("active", pending.txn.Value()).
			Msg("active flag confirmed")
		return m, nil
	}

	pending.row["active"] = pending.txn.Snapshot()
	log.Error().Ctx(m.ctx).
		Str("entity", msg.entity.String()).
		Str("id", msg.id).
		Err(msg.err).
		Msg("active flag change rejected")

	m.notice = fmt.Sprintf("Could not update %s %s: %v", msg.entity.Singular(), msg.id, msg.err)
	m.noticeSeq++
	seq := m.noticeSeq
	if msg.entity == m.entity {
		m.rebuildTable()
	}
	return m, tea.Tick(toggle.DefaultErrorTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

// engine returns the list engine backing the current tab, nil while the
// first load is still in flight.
func (m *BrowseModel) engine() *listview.Table {
	return m.engines[m.entity]
}

func (m *BrowseModel) applySearch() {
	eng := m.engine()
	if eng == nil {
		return
	}
	eng.SetSearchQuery(m.textInput.Value())
	m.rebuildTable()
}

// cycleSort advances the sort state: first sortable column ascending, same
// column descending, then on to the next sortable column.
func (m *BrowseModel) cycleSort() {
	eng := m.engine()
	if eng == nil {
		return
	}

	var keys []string
	for _, col := range eng.Columns() {
		if col.Sortable {
			keys = append(keys, col.Key)
		}
	}
	if len(keys) == 0 {
		return
	}

	state := eng.Sort()
	switch {
	case !state.IsSorted():
		eng.ToggleSort(keys[0])
	case state.Direction == listview.SortAsc:
		eng.ToggleSort(state.Key)
	default:
		next := keys[0]
		for i, key := range keys {
			if key == state.Key {
				next = keys[(i+1)%len(keys)]
				break
			}
		}
		eng.ToggleSort(next)
	}
	m.rebuildTable()
}

func (m *BrowseModel) changePage(delta int) {
	eng := m.engine()
	if eng == nil {
		return
	}
	eng.SetPage(eng.Page() + delta)
	m.rebuildTable()
}

// rebuildTable reconstructs the table widget from the engine's current
// view, keeping the cursor where it was.
func (m *BrowseModel) rebuildTable() {
	cursor := m.table.Cursor()
	m.table = m.buildBrowseTable()
	m.table.SetCursor(cursor)
}

func (m *BrowseModel) buildBrowseTable() table.Model {
	eng := m.engine()
	if eng == nil {
		return table.New()
	}

	view := eng.View()
	sortState := eng.Sort()
	engineColumns := eng.Columns()

	columns := make([]table.Column, 0, len(engineColumns))
	for _, col := range engineColumns {
		width := col.Width
		if width == 0 {
			width = defaultColumnWidth
		}
		title := col.Title
		if sortState.IsSorted() && sortState.Key == col.Key {
			title += " " + sortIndicator(sortState.Direction)
		}
		columns = append(columns, table.Column{Title: title, Width: width})
	}

	rows := make([]table.Row, len(view.Rows))
	for i, row := range view.Rows {
		cells := make(table.Row, len(engineColumns))
		for j, col := range engineColumns {
			cells[j] = listview.FormatCell(col, row)
		}
		rows[i] = cells
	}

	height := m.height - chromeHeight
	if height < minTableHeight {
		height = minTableHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)
	return t
}

func sortIndicator(direction listview.SortDirection) string {
	if direction == listview.SortDesc {
		return "▼"
	}
	return "▲"
}

// adjacentEntity steps through the tab order, wrapping at both ends.
func adjacentEntity(entity league.Entity, step int) league.Entity {
	all := league.Entities()
	for i, candidate := range all {
		if candidate == entity {
			return all[(i+step+len(all))%len(all)]
		}
	}
	return all[0]
}

func toggleKey(entity league.Entity, id string) string {
	return entity.String() + "/" + id
}
