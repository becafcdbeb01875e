package ui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/qyinm/shoptui/pager"
	"github.com/qyinm/shoptui/types"
)

const (
	statusHeight = 1
	// EmptyMessage is shown in place of the grid when nothing is loaded and
	// no error is pending.
	EmptyMessage = "No products available"
)

// Model is the catalog screen
type Model struct {
	ctx      context.Context
	cancel   context.CancelFunc
	source   types.ProductSource
	log      *log.Logger
	state    pager.State
	initial  pager.Request
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap
	cursor   int
	width    int
	height   int
	ready    bool
}

// NewModel creates the screen and issues its initial load. The request runs
// when the program calls Init. Cancelling ctx, or quitting, aborts any
// in-flight fetch.
func NewModel(ctx context.Context, source types.ProductSource, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ctx, cancel := context.WithCancel(ctx)

	state, req := pager.Mount()

	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = LoaderStyle

	return Model{
		ctx:      ctx,
		cancel:   cancel,
		source:   source,
		log:      logger,
		state:    state,
		initial:  req,
		viewport: vp,
		spinner:  s,
		help:     help.New(),
		keys:     keys,
	}
}

// Init starts the spinner and the initial page fetch
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch(m.initial))
}

// State returns the current catalog state
func (m Model) State() pager.State { return m.state }

// Cursor returns the index of the selected product
func (m Model) Cursor() int { return m.cursor }

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, tea.Batch(cmd, m.loadMoreIfNearEnd())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizePanes()
		m.syncContent()
		return m, m.loadMoreIfNearEnd()

	case pageMsg:
		return m.handlePage(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.state.LoadingMore() {
			m.syncContent()
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizePanes()
		m.syncContent()
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.state = m.state.SelectTab(m.state.ActiveTab().Next())
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.state = m.state.SelectTab(m.state.ActiveTab().Prev())
		return m, nil
	case key.Matches(msg, m.keys.Tab1):
		m.state = m.state.SelectTab(types.ForYou)
		return m, nil
	case key.Matches(msg, m.keys.Tab2):
		m.state = m.state.SelectTab(types.Scenes)
		return m, nil
	case key.Matches(msg, m.keys.Tab3):
		m.state = m.state.SelectTab(types.Featured)
		return m, nil
	case key.Matches(msg, m.keys.Tab4):
		m.state = m.state.SelectTab(types.Groups)
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		var req pager.Request
		m.state, req = m.state.Remount()
		m.cursor = 0
		m.viewport.GotoTop()
		m.syncContent()
		m.log.Info("catalog reloaded", "token", req.Token)
		return m, m.fetch(req)
	}

	n := m.state.Len()
	if n == 0 {
		return m, nil
	}
	rowsPerPage := m.viewport.Height / rowHeight
	if rowsPerPage < 1 {
		rowsPerPage = 1
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-columns)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(columns)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-columns * rowsPerPage)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(columns * rowsPerPage)
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = n - 1
	default:
		return m, nil
	}

	m.syncContent()
	m.scrollToCursor()
	return m, m.loadMoreIfNearEnd()
}

func (m Model) handlePage(msg pageMsg) (tea.Model, tea.Cmd) {
	if !m.state.Current(msg.req) {
		m.log.Debug("stale page ignored", "token", msg.req.Token, "skip", msg.req.Skip)
		return m, nil
	}

	before := m.state.Len()
	if msg.err != nil {
		m.log.Error("load products failed", "skip", msg.req.Skip, "append", msg.req.Append, "err", msg.err)
		m.state = m.state.Failed(msg.req, msg.err)
	} else {
		m.log.Info("products loaded",
			"skip", msg.req.Skip,
			"append", msg.req.Append,
			"items", len(msg.page.Products()),
			"total", msg.page.Total(),
		)
		m.state = m.state.Succeeded(msg.req, msg.page)
	}

	if m.cursor >= m.state.Len() {
		m.cursor = max(m.state.Len()-1, 0)
	}
	m.syncContent()

	// Only growth re-arms the end-reached trigger, so a failed or empty page
	// waits for the next scroll instead of refetching in a loop.
	if m.state.Len() > before {
		return m, m.loadMoreIfNearEnd()
	}
	return m, nil
}

// fetch turns a pager request into a command bound to the model's context.
func (m Model) fetch(req pager.Request) tea.Cmd {
	m.log.Debug("fetching page", "token", req.Token, "skip", req.Skip, "limit", req.Limit, "append", req.Append)
	return fetchPage(m.ctx, m.source, req)
}

// loadMoreIfNearEnd asks the pager for the next page once the content left
// below the viewport is within EndReachedThreshold viewport heights.
func (m *Model) loadMoreIfNearEnd() tea.Cmd {
	if !m.ready || m.state.Len() == 0 || m.viewport.Height <= 0 {
		return nil
	}
	remaining := m.viewport.TotalLineCount() - (m.viewport.YOffset + m.viewport.Height)
	if float64(remaining) > EndReachedThreshold*float64(m.viewport.Height) {
		return nil
	}

	state, req, ok := m.state.LoadNextPage()
	if !ok {
		return nil
	}
	m.state = state
	m.syncContent()
	return m.fetch(req)
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if last := m.state.Len() - 1; m.cursor > last {
		m.cursor = last
	}
}

// scrollToCursor keeps the selected card's row fully visible.
func (m *Model) scrollToCursor() {
	top := rowOf(m.cursor) * rowHeight
	bottom := top + cardHeight
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
	if rowOf(m.cursor) == rowCount(m.state.Len())-1 {
		m.viewport.GotoBottom()
	}
}

// syncContent re-renders the grid into the viewport.
func (m *Model) syncContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(renderGrid(m.state.Products(), m.width, m.cursor, m.footer()))
}

func (m Model) footer() string {
	if !m.state.LoadingMore() {
		return ""
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.spinner.View()+" loading more")
}

// View renders the current view
func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing…"
	}

	sections := []string{renderTabs(m.state.ActiveTab(), m.width), m.body(), m.statusBar(), m.help.View(m.keys)}
	return strings.Join(sections, "\n")
}

func (m Model) body() string {
	switch {
	case m.state.LoadingInitial():
		return m.centered(m.spinner.View() + " Loading products…")
	case m.state.Len() == 0:
		msg := displayError(m.state.Err())
		if msg == "" {
			msg = EmptyMessage
		}
		return m.centered(EmptyStyle.Render(msg))
	default:
		return m.viewport.View()
	}
}

func (m Model) centered(s string) string {
	return lipgloss.Place(m.width, m.viewport.Height, lipgloss.Center, lipgloss.Center, s)
}

func (m Model) statusBar() string {
	status := fmt.Sprintf("%d/%d products · %s", m.state.Len(), m.state.Total(), m.state.ActiveTab())
	if m.state.Len() > 0 {
		if p := m.state.At(m.cursor); p.Title() != "" {
			status += " · " + p.Title()
		}
	}
	line := StatusBarStyle.Render(truncate(status, m.width))
	// An append failure keeps the grid, so surface the error here.
	if err := m.state.Err(); err != "" && m.state.Len() > 0 {
		line = ErrorStyle.Render(truncate(displayError(err), m.width))
	}
	return line
}

// displayError capitalises an error message for the screen; errors
// themselves stay lowercase.
func displayError(msg string) string {
	r, size := utf8.DecodeRuneInString(msg)
	if size == 0 {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}

// resizePanes adjusts the viewport to the space left by tabs, status and help
func (m *Model) resizePanes() {
	m.help.Width = m.width
	tabHeight := lipgloss.Height(renderTabs(m.state.ActiveTab(), m.width))
	helpHeight := lipgloss.Height(m.help.View(m.keys))
	availableHeight := m.height - tabHeight - statusHeight - helpHeight

	if availableHeight < 0 {
		availableHeight = 0
	}

	m.viewport.Width = m.width
	m.viewport.Height = availableHeight
}
