package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState identifies which screen the browser is showing.
type ViewState int

const (
	// ViewStateLoading is shown while a tab's rows are being fetched.
	ViewStateLoading ViewState = iota
	// ViewStateList is the main table screen.
	ViewStateList
	// ViewStateDetail shows every field of one row.
	ViewStateDetail
	// ViewStateError is shown when a fetch failed.
	ViewStateError
	// ViewStateQuitting is the terminal state before exit.
	ViewStateQuitting
)

// Key bindings shared across views.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keySlash    = "/"
	keyS        = "s"
	keySpace    = " "
	keyR        = "r"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyPrevPage = "["
	keyNextPage = "]"
)

// Layout constants.
const (
	defaultWidth  = 100
	defaultHeight = 30
	borderPadding = 2

	// chromeHeight is the vertical space reserved around the table for
	// tabs, banners, the status bar and the search input.
	chromeHeight = 7

	// minTableHeight keeps the table usable on tiny terminals.
	minTableHeight = 5

	defaultColumnWidth = 18
)

// newTextInput returns the text input used for the search box.
func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "type to search"
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

// LoadingState wraps the spinner shown while rows are in flight.
type LoadingState struct {
	spinner spinner.Model
}

// NewLoadingState creates a loading spinner with the shared style.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle
	return &LoadingState{spinner: s}
}

// Init starts the spinner ticking.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner animation. Messages other than spinner ticks
// are ignored.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(spinner.TickMsg); !ok {
		return nil
	}
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// View renders the spinner frame.
func (l *LoadingState) View() string {
	return l.spinner.View()
}
