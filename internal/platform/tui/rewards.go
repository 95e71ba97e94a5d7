package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-trace/internal/registry"
	"github.com/vovakirdan/tui-trace/internal/storage"
)

// Rewards board layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the mode sidebar
	sidebarWidth       = 26  // Width of the mode sidebar
	maxRewards         = 200 // Max rewards to load
)

// allModes is the pseudo game ID that shows every mode at once.
const allModes = ""

// RewardsKeyMap defines the key bindings for the rewards board.
type RewardsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RewardsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RewardsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
	}
}

// DefaultRewardsKeyMap returns default key bindings.
func DefaultRewardsKeyMap() RewardsKeyMap {
	return RewardsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RewardsModel is the Bubble Tea model for the rewards board: every letter
// the child has finished, newest first, plus a per-letter sticker strip.
type RewardsModel struct {
	modes       []registry.GameInfo // First entry is "All modes"
	modeCursor  int
	store       *storage.Store
	rewards     []storage.Reward
	letters     []storage.LetterStats
	table       table.Model
	help        help.Model
	keys        RewardsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewRewardsModel creates a new rewards board model.
func NewRewardsModel(store *storage.Store, width, height int) RewardsModel {
	modes := append([]registry.GameInfo{{ID: allModes, Title: "All modes"}}, registry.List()...)

	h := help.New()
	h.ShowAll = false

	m := RewardsModel{
		modes:       modes,
		store:       store,
		keys:        DefaultRewardsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates a new table sized to the window.
func (m *RewardsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "", Width: 3},
		{Title: "Letter", Width: 6},
		{Title: "Word", Width: 10},
		{Title: "Strokes", Width: 7},
		{Title: "Time", Width: 7},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	if extra := tableWidth - 57; extra > 0 {
		columns[2].Width += min(extra, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, stickers and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("30")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads rewards for the selected mode and the per-letter totals.
func (m *RewardsModel) load() {
	m.rewards = nil
	m.letters = nil
	if m.store != nil {
		if rewards, err := m.store.RecentRewards(m.modes[m.modeCursor].ID, maxRewards); err == nil {
			m.rewards = rewards
		}
		if letters, err := m.store.GetLetterStats(); err == nil {
			m.letters = letters
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current rewards.
func (m *RewardsModel) updateTableRows() {
	rows := make([]table.Row, len(m.rewards))
	for i, r := range m.rewards {
		rows[i] = table.Row{
			r.Reward,
			r.Glyph,
			r.Word,
			fmt.Sprintf("%d", r.Strokes),
			formatElapsed(r.ElapsedMS),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatElapsed renders milliseconds as seconds with one decimal.
func formatElapsed(ms int64) string {
	return fmt.Sprintf("%.1fs", (time.Duration(ms) * time.Millisecond).Seconds())
}

// Init initializes the rewards model.
func (m RewardsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the rewards board.
func (m RewardsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			m.modeCursor = (m.modeCursor + 1) % len(m.modes)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.modeCursor = (m.modeCursor - 1 + len(m.modes)) % len(m.modes)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the rewards board.
func (m RewardsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("209")).
		MarginBottom(1)

	title := fmt.Sprintf("REWARDS - %s", m.modes[m.modeCursor].Title)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	if stickers := m.renderStickers(); stickers != "" {
		b.WriteString("\n")
		b.WriteString(stickers)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the board with a sidebar for mode selection.
func (m RewardsModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Modes\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.modes {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.modeCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		name := runewidth.Truncate(g.Title, sidebarWidth-6, ".")
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders the board with the mode name above the table.
func (m RewardsModel) renderNarrowLayout() string {
	var b strings.Builder

	tabLine := fmt.Sprintf("< %s >", m.modes[m.modeCursor].Title)
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m RewardsModel) renderTableContent() string {
	if len(m.rewards) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No rewards yet.\nTrace a letter to earn your first sticker!")
	}

	return m.table.View()
}

// renderStickers renders one "reward glyph x count" entry per traced letter.
func (m RewardsModel) renderStickers() string {
	if len(m.letters) == 0 {
		return ""
	}
	parts := make([]string, len(m.letters))
	for i, ls := range m.letters {
		parts[i] = fmt.Sprintf("%s %s×%d", ls.Reward, ls.Glyph, ls.Count)
	}
	return lipgloss.NewStyle().
		Width(max(m.width-2, 20)).
		Render(strings.Join(parts, "  "))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RewardsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RewardsModel) IsQuitting() bool {
	return m.quitting
}

// RunRewards runs the rewards board.
// Returns true if user wants to go back to menu, false if quitting.
func RunRewards(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewRewardsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RewardsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
