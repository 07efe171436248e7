package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"roadmap/internal/adapters/tui/styles"
	"roadmap/internal/application"
	"roadmap/internal/application/commands"
	"roadmap/internal/domain"
)

// DashboardKeyMap defines key bindings for the dashboard view
type DashboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Complete key.Binding
	Timer    key.Binding
	Notes    key.Binding
	Edit     key.Binding
	Add      key.Binding
	Delete   key.Binding
	Copy     key.Binding
	Search   key.Binding
	Focus    key.Binding
	Stats    key.Binding
	Export   key.Binding
	Report   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var DashboardKeys = DashboardKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "expand/notes"),
	),
	Complete: key.NewBinding(
		key.WithKeys(" ", "c"),
		key.WithHelp("space", "complete"),
	),
	Timer: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "timer"),
	),
	Notes: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "notes"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "notes in $EDITOR"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy title"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Focus: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "focus"),
	),
	Stats: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stats"),
	),
	Export: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "export"),
	),
	Report: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "xlsx report"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// SearchKeys apply while the search input has focus
var SearchKeys = struct {
	Accept key.Binding
	Clear  key.Binding
	Up     key.Binding
	Down   key.Binding
}{
	Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "keep filter")),
	Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
	Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
}

type rowKind int

const (
	rowSection rowKind = iota
	rowTopic
)

// row is one visible line of the roadmap tree
type row struct {
	kind      rowKind
	section   int
	title     string
	completed int
	total     int
	ref       domain.TopicRef
}

func (r row) matches(o row) bool {
	if r.kind != o.kind || r.section != o.section {
		return false
	}
	return r.kind == rowSection || r.ref.Item == o.ref.Item
}

// DashboardModel is the roadmap tree with progress, search and topic actions
type DashboardModel struct {
	ViewState
	svc      Services
	catalog  domain.Catalog
	rows     []row
	window   *Window
	expanded map[int]bool

	search    textinput.Model
	searching bool
	bar       progress.Model
}

// NewDashboardModel creates a new dashboard. The first section with open
// topics starts expanded.
func NewDashboardModel(svc Services) *DashboardModel {
	input := textinput.New()
	input.Placeholder = "filter topics..."
	input.Prompt = "/ "
	input.CharLimit = 80

	m := &DashboardModel{
		svc:      svc,
		window:   NewWindow(20),
		expanded: make(map[int]bool),
		search:   input,
		bar:      NewProgressBar(40),
	}
	m.Refresh()
	if focus := domain.FocusTopics(m.catalog); len(focus) > 0 {
		m.expanded[focus[0].Section] = true
		m.Refresh()
		m.selectCoordinate(focus[0].Coordinate)
	}
	return m
}

// Init initializes the dashboard
func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

// Refresh reloads the catalog and rebuilds the rows, keeping the selection
func (m *DashboardModel) Refresh() {
	var selected *row
	if r, ok := m.selectedRow(); ok {
		selected = &r
	}

	m.catalog = m.svc.Store.Snapshot()
	m.rows = m.buildRows()
	m.window.SetTotal(len(m.rows))

	if selected == nil {
		return
	}
	for i, r := range m.rows {
		if r.matches(*selected) {
			m.window.SetCursor(i)
			return
		}
	}
}

func (m *DashboardModel) buildRows() []row {
	query := m.search.Value()
	filtering := strings.TrimSpace(query) != ""

	var rows []row
	for _, match := range domain.FilterSections(m.catalog, query) {
		si := match.Index
		done, total := match.Section.Count()
		rows = append(rows, row{kind: rowSection, section: si, title: match.Section.Title, completed: done, total: total})
		if !filtering && !m.expanded[si] {
			continue
		}
		for _, ref := range match.Topics {
			rows = append(rows, row{kind: rowTopic, section: si, ref: ref})
		}
	}
	return rows
}

func (m *DashboardModel) selectedRow() (row, bool) {
	c := m.window.Cursor()
	if c < 0 || c >= len(m.rows) {
		return row{}, false
	}
	return m.rows[c], true
}

// SelectedTopic returns the topic under the cursor
func (m *DashboardModel) SelectedTopic() (domain.TopicRef, bool) {
	r, ok := m.selectedRow()
	if !ok || r.kind != rowTopic {
		return domain.TopicRef{}, false
	}
	return r.ref, true
}

func (m *DashboardModel) selectCoordinate(at domain.Coordinate) {
	for i, r := range m.rows {
		if r.kind == rowTopic && r.ref.Coordinate == at {
			m.window.SetCursor(i)
			return
		}
	}
}

// Query returns the active search filter
func (m *DashboardModel) Query() string {
	return m.search.Value()
}

// Searching reports whether the search input has focus
func (m *DashboardModel) Searching() bool {
	return m.searching
}

// Update handles messages for the dashboard
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m, m.updateSearch(msg)
		}
		m.ClearMessage()
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *DashboardModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, SearchKeys.Clear):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.Refresh()
		return nil
	case key.Matches(msg, SearchKeys.Accept):
		m.searching = false
		m.search.Blur()
		return nil
	case key.Matches(msg, SearchKeys.Up):
		m.window.Up()
		return nil
	case key.Matches(msg, SearchKeys.Down):
		m.window.Down()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.Refresh()
	return cmd
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, DashboardKeys.Quit):
		return tea.Quit

	case key.Matches(msg, DashboardKeys.Up):
		m.window.Up()

	case key.Matches(msg, DashboardKeys.Down):
		m.window.Down()

	case key.Matches(msg, DashboardKeys.Left):
		if r, ok := m.selectedRow(); ok {
			if r.kind == rowTopic {
				m.selectSection(r.section)
			} else {
				m.setExpanded(r.section, false)
			}
		}

	case key.Matches(msg, DashboardKeys.Right):
		if r, ok := m.selectedRow(); ok && r.kind == rowSection {
			m.setExpanded(r.section, true)
		}

	case key.Matches(msg, DashboardKeys.Enter):
		r, ok := m.selectedRow()
		if !ok {
			return nil
		}
		if r.kind == rowSection {
			m.setExpanded(r.section, !m.expanded[r.section])
			return nil
		}
		return send(SwitchToNotesMsg{At: r.ref.Coordinate})

	case key.Matches(msg, DashboardKeys.Complete):
		if ref, ok := m.SelectedTopic(); ok {
			return run(func(ctx context.Context) (string, error) {
				res, err := commands.NewCompleteCommand(m.svc.Store, ref.Coordinate, commands.CompleteToggle).Execute(ctx)
				if err != nil {
					return "", err
				}
				return res.Message, nil
			})
		}

	case key.Matches(msg, DashboardKeys.Timer):
		if ref, ok := m.SelectedTopic(); ok {
			return run(func(ctx context.Context) (string, error) {
				res, err := commands.NewToggleTimerCommand(m.svc.Timer, ref.Coordinate).Execute(ctx)
				if err != nil {
					return "", err
				}
				return res.Message, nil
			})
		}

	case key.Matches(msg, DashboardKeys.Notes):
		if ref, ok := m.SelectedTopic(); ok {
			return send(SwitchToNotesMsg{At: ref.Coordinate})
		}

	case key.Matches(msg, DashboardKeys.Edit):
		if ref, ok := m.SelectedTopic(); ok {
			return send(EditNotesExternallyMsg{At: ref.Coordinate, Title: ref.Topic.Title, Notes: ref.Topic.Notes})
		}

	case key.Matches(msg, DashboardKeys.Add):
		if r, ok := m.selectedRow(); ok {
			s, _ := m.catalog.Section(r.section)
			return send(SwitchToAddMsg{SectionIndex: r.section, SectionTitle: s.Title})
		}

	case key.Matches(msg, DashboardKeys.Delete):
		if ref, ok := m.SelectedTopic(); ok {
			return send(SwitchToDeleteMsg{Target: ref})
		}

	case key.Matches(msg, DashboardKeys.Copy):
		if ref, ok := m.SelectedTopic(); ok {
			return run(func(context.Context) (string, error) {
				if err := clipboard.WriteAll(ref.Topic.Title); err != nil {
					return "", fmt.Errorf("copying to clipboard: %w", err)
				}
				return "Copied: " + ref.Topic.Title, nil
			})
		}

	case key.Matches(msg, DashboardKeys.Search):
		m.searching = true
		return m.search.Focus()

	case key.Matches(msg, DashboardKeys.Focus):
		return send(SwitchToFocusMsg{})

	case key.Matches(msg, DashboardKeys.Stats):
		return send(SwitchToStatsMsg{})

	case key.Matches(msg, DashboardKeys.Export):
		return send(ExportMsg{})

	case key.Matches(msg, DashboardKeys.Report):
		return send(ExportMsg{Report: true})

	case key.Matches(msg, DashboardKeys.Help):
		return send(SwitchToHelpMsg{})
	}
	return nil
}

func (m *DashboardModel) setExpanded(section int, expanded bool) {
	m.expanded[section] = expanded
	m.Refresh()
	m.selectSection(section)
}

func (m *DashboardModel) selectSection(section int) {
	for i, r := range m.rows {
		if r.kind == rowSection && r.section == section {
			m.window.SetCursor(i)
			return
		}
	}
}

// View renders the dashboard
func (m *DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	if len(m.rows) == 0 {
		if m.search.Value() != "" {
			b.WriteString(RenderMuted("No topics match."))
		} else {
			b.WriteString(RenderMuted("The roadmap is empty."))
		}
		b.WriteString("\n")
	}

	m.window.SetSize(m.listHeight())
	start, end := m.window.Visible()
	running, timerOn := m.svc.Timer.State()
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(m.rows[i], i == m.window.Cursor(), timerOn && m.rows[i].kind == rowTopic && m.rows[i].ref.Coordinate == running.At))
		b.WriteString("\n")
	}
	if len(m.rows) > end-start {
		b.WriteString(RenderMuted(fmt.Sprintf("  %d/%d", m.window.Cursor()+1, len(m.rows))))
		b.WriteString("\n")
	}

	if ref, ok := m.SelectedTopic(); ok {
		b.WriteString("\n")
		b.WriteString(m.renderDetails(ref))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.searching {
		b.WriteString(RenderHelpLine(SearchKeys.Accept, SearchKeys.Clear, SearchKeys.Up, SearchKeys.Down))
	} else {
		b.WriteString(RenderHelpLine(
			DashboardKeys.Complete, DashboardKeys.Timer, DashboardKeys.Notes,
			DashboardKeys.Add, DashboardKeys.Search, DashboardKeys.Focus,
			DashboardKeys.Help, DashboardKeys.Quit,
		))
	}

	return styles.App.Render(b.String())
}

func (m *DashboardModel) listHeight() int {
	reserved := 16
	if m.searching || m.search.Value() != "" {
		reserved += 2
	}
	if m.Height == 0 {
		return 20
	}
	return max(m.Height-reserved, 3)
}

func (m *DashboardModel) renderHeader() string {
	var b strings.Builder
	stats := application.ComputeStats(m.catalog)

	b.WriteString(styles.Title.Render("Full Stack Roadmap"))
	b.WriteString("\n")

	m.bar.Width = min(m.contentWidth()-8, 60)
	b.WriteString(RenderProgress(m.bar, stats.Percentage))
	b.WriteString("\n")
	b.WriteString(RenderMuted(fmt.Sprintf("%d/%d topics • %s spent • %s left",
		stats.Completed, stats.Total,
		domain.FormatDuration(stats.TimeSpent),
		domain.FormatHours(stats.RemainingHours))))
	b.WriteString("\n")

	if rt, ok := m.svc.Timer.State(); ok {
		if t, ok := m.catalog.Topic(rt.At); ok {
			b.WriteString(styles.TimerRunning.Render(fmt.Sprintf("⏱ %s since %s (%s)",
				t.Title, rt.StartedAt.Format("15:04"), domain.FormatDuration(t.ActualTimeSpent))))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (m *DashboardModel) renderRow(r row, selected, timing bool) string {
	if r.kind == rowSection {
		prefix := styles.TreeCollapsed
		if m.expanded[r.section] || m.search.Value() != "" {
			prefix = styles.TreeExpanded
		}
		text := fmt.Sprintf("%s  %d/%d (%d%%)", r.title, r.completed, r.total, domain.Percent(r.completed, r.total))
		if selected {
			return styles.TreeBranch.Render(prefix) + styles.Selected.Render(text)
		}
		return styles.TreeBranch.Render(prefix) + styles.Section.Render(text)
	}

	t := r.ref.Topic
	check := styles.CheckOpen
	title := styles.Topic.Render(t.Title)
	if t.Completed {
		check = styles.CheckDone
		title = styles.TopicDone.Render(t.Title)
	}
	if selected {
		title = styles.Selected.Render(t.Title)
	}

	line := "    " + check + title + "  " + TopicSummary(t)
	if timing {
		line += " " + styles.TimerRunning.Render("⏱")
	}
	return line
}

func (m *DashboardModel) renderDetails(ref domain.TopicRef) string {
	t := ref.Topic
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", styles.InputLabel.Render(t.Title), RenderMuted(ref.SectionTitle))
	fmt.Fprintf(&b, "%s • %s • spent %s",
		styles.Difficulty(t.Difficulty), t.TimeEstimate, domain.FormatDuration(t.ActualTimeSpent))
	if t.StartedAt != nil {
		fmt.Fprintf(&b, " • started %s", t.StartedAt.Format("2006-01-02"))
	}
	if t.CompletedAt != nil {
		fmt.Fprintf(&b, " • completed %s", t.CompletedAt.Format("2006-01-02"))
	}
	if t.Notes != "" {
		b.WriteString("\n\n")
		b.WriteString(RenderNotes(firstLines(t.Notes, 4), m.contentWidth()-4))
	}
	return styles.Panel.Render(b.String())
}

func firstLines(s string, n int) string {
	lines := strings.SplitN(s, "\n", n+1)
	if len(lines) > n {
		lines = append(lines[:n], "…")
	}
	return strings.Join(lines, "\n")
}
