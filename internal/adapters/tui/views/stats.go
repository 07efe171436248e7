package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"roadmap/internal/adapters/tui/styles"
	"roadmap/internal/application/commands"
)

var StatsKeys = struct {
	Back key.Binding
}{
	Back: key.NewBinding(
		key.WithKeys("esc", "q", "s"),
		key.WithHelp("esc", "back"),
	),
}

// StatsModel shows progress per section and per difficulty
type StatsModel struct {
	ViewState
	store  commands.CatalogReader
	result *commands.StatsResult
	bar    progress.Model
}

// NewStatsModel creates the stats view
func NewStatsModel(store commands.CatalogReader) *StatsModel {
	m := &StatsModel{store: store, bar: NewProgressBar(30)}
	m.Refresh()
	return m
}

// Refresh recomputes the statistics
func (m *StatsModel) Refresh() {
	res, err := commands.NewStatsCommand(m.store).Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.result = res
}

// Init initializes the stats view
func (m *StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats view
func (m *StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, StatsKeys.Back) {
			return m, send(SwitchToDashboardMsg{})
		}
	}
	return m, nil
}

// View renders the stats view
func (m *StatsModel) View() string {
	b := NewViewBuilder().Title("Statistics")
	if m.result == nil {
		return b.Message(m.Message, true).Help(StatsKeys.Back).String()
	}
	r := m.result

	b.Subtitle(r.Message)
	b.Line(RenderProgress(m.bar, r.Percentage))
	b.Line(RenderLabelValue("Time spent", r.TimeSpent))
	b.Line(RenderLabelValue("Remaining estimate", r.Remaining))
	b.BlankLine()

	label := lipgloss.NewStyle().Width(m.labelWidth())

	b.Line(styles.InputLabel.Render("By section"))
	for _, s := range r.Sections {
		b.Line(fmt.Sprintf("  %s %s %s",
			label.Render(s.Title),
			RenderProgress(m.bar, s.Percentage),
			RenderMuted(fmt.Sprintf("%d/%d", s.Completed, s.Total))))
	}
	b.BlankLine()

	b.Line(styles.InputLabel.Render("By difficulty"))
	for _, d := range r.Difficulties {
		b.Line(fmt.Sprintf("  %s %s %s",
			label.Render(styles.Difficulty(d.Bucket)),
			RenderProgress(m.bar, d.Percentage),
			RenderMuted(fmt.Sprintf("%d/%d", d.Completed, d.Total))))
	}
	b.BlankLine()

	return b.Help(StatsKeys.Back).String()
}

func (m *StatsModel) labelWidth() int {
	w := len("Medium")
	if m.result != nil {
		for _, s := range m.result.Sections {
			w = max(w, lipgloss.Width(s.Title))
		}
	}
	return min(w+2, 32)
}
