// Package tui is the interactive terminal dashboard.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"roadmap/internal/adapters/editor"
	"roadmap/internal/adapters/notify"
	"roadmap/internal/adapters/tui/styles"
	"roadmap/internal/adapters/tui/views"
	"roadmap/internal/application"
	"roadmap/internal/application/commands"
	"roadmap/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewDashboard ViewState = iota
	ViewAdd
	ViewDelete
	ViewNotes
	ViewFocus
	ViewStats
	ViewHelp
)

const toastDuration = 4 * time.Second

// Deps collects what the dashboard needs
type Deps struct {
	Tracker *application.Tracker
	Files   ports.ProgressFiles
	Reports ports.ReportWriter
	// Notifications receives everything the tracker and commands report;
	// the app drains it into the status line
	Notifications *notify.Queue
	Editor        *editor.Opener
	Logger        *slog.Logger
}

// App is the main TUI application model
type App struct {
	deps   Deps
	svc    views.Services
	logger *slog.Logger

	state     ViewState
	dashboard *views.DashboardModel
	add       *views.AddTopicModel
	remove    *views.DeleteModel
	notes     *views.NotesModel
	focus     *views.FocusModel
	stats     *views.StatsModel
	help      *views.HelpModel

	toast   ports.Notification
	toastID int

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(deps Deps) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	svc := views.Services{
		Store: deps.Tracker.Store,
		Timer: deps.Tracker.Ledger,
		Notes: deps.Tracker.Notes,
	}
	return &App{
		deps:      deps,
		svc:       svc,
		logger:    deps.Logger,
		state:     ViewDashboard,
		dashboard: views.NewDashboardModel(svc),
		add:       views.NewAddTopicModel(svc.Store),
		remove:    views.NewDeleteModel(svc.Store),
		notes:     views.NewNotesModel(svc.Notes),
		focus:     views.NewFocusModel(svc),
		stats:     views.NewStatsModel(svc.Store),
		help:      views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.dashboard.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := a.update(msg)
	return a, tea.Batch(cmd, a.drainNotifications())
}

func (a *App) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.dashboard.SetSize(msg.Width, msg.Height)
		a.add.SetSize(msg.Width, msg.Height)
		a.remove.SetSize(msg.Width, msg.Height)
		a.focus.SetSize(msg.Width, msg.Height)
		a.stats.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		_, cmd := a.notes.Update(msg)
		return a, cmd

	case RunMsg:
		msg.Fn()
		a.refresh()
		return a, nil

	case clearToastMsg:
		if msg.id == a.toastID {
			a.toast = ports.Notification{}
		}
		return a, nil

	// View switching messages
	case views.SwitchToDashboardMsg:
		a.state = ViewDashboard
		a.refresh()
		return a, nil

	case views.SwitchToAddMsg:
		a.state = ViewAdd
		a.add.SetSection(msg.SectionIndex, msg.SectionTitle)
		return a, a.add.Init()

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.remove.SetTarget(msg.Target)
		return a, nil

	case views.SwitchToNotesMsg:
		cmd, err := a.notes.Open(msg.At)
		if err != nil {
			a.dashboard.SetMessage(err.Error(), true)
			return a, nil
		}
		a.state = ViewNotes
		return a, cmd

	case views.SwitchToFocusMsg:
		a.state = ViewFocus
		a.focus.Refresh()
		return a, nil

	case views.SwitchToStatsMsg:
		a.state = ViewStats
		a.stats.Refresh()
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	// Action outcomes
	case views.ActionDoneMsg:
		a.refresh()
		if a.returnsToDashboard() {
			a.state = ViewDashboard
		}
		a.current().SetMessage(msg.Message, false)
		return a, nil

	case views.ActionErrMsg:
		a.logger.Warn("action failed", "view", a.state, "error", msg.Err)
		a.refresh()
		a.current().SetMessage(msg.Err.Error(), true)
		return a, nil

	case views.EditNotesExternallyMsg:
		a.state = ViewDashboard
		return a, a.editNotes(msg)

	case editorFinishedMsg:
		a.state = ViewDashboard
		if msg.err != nil {
			return a, func() tea.Msg { return views.ActionErrMsg{Err: msg.err} }
		}
		return a, msg.save

	case views.ExportMsg:
		return a, a.export(msg.Report)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewDashboard:
		_, cmd = a.dashboard.Update(msg)
	case ViewAdd:
		_, cmd = a.add.Update(msg)
	case ViewDelete:
		_, cmd = a.remove.Update(msg)
	case ViewNotes:
		_, cmd = a.notes.Update(msg)
	case ViewFocus:
		_, cmd = a.focus.Update(msg)
	case ViewStats:
		_, cmd = a.stats.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// messenger is implemented by every view through views.ViewState
type messenger interface {
	SetMessage(msg string, isErr bool)
}

func (a *App) current() messenger {
	switch a.state {
	case ViewAdd:
		return a.add
	case ViewDelete:
		return a.remove
	case ViewNotes:
		return a.notes
	case ViewFocus:
		return a.focus
	case ViewStats:
		return a.stats
	default:
		return a.dashboard
	}
}

// returnsToDashboard reports whether a finished action closes the current view
func (a *App) returnsToDashboard() bool {
	switch a.state {
	case ViewAdd, ViewDelete, ViewNotes:
		return true
	}
	return false
}

func (a *App) refresh() {
	a.dashboard.Refresh()
	switch a.state {
	case ViewFocus:
		a.focus.Refresh()
	case ViewStats:
		a.stats.Refresh()
	}
}

type clearToastMsg struct{ id int }

func (a *App) drainNotifications() tea.Cmd {
	if a.deps.Notifications == nil {
		return nil
	}
	items := a.deps.Notifications.Drain()
	if len(items) == 0 {
		return nil
	}
	a.toast = items[len(items)-1]
	a.toastID++
	id := a.toastID
	return tea.Tick(toastDuration, func(time.Time) tea.Msg { return clearToastMsg{id: id} })
}

type editorFinishedMsg struct {
	err  error
	save tea.Cmd
}

// editNotes suspends the TUI, edits the notes in $EDITOR and saves the result
func (a *App) editNotes(msg views.EditNotesExternallyMsg) tea.Cmd {
	fail := func(err error) tea.Cmd {
		return func() tea.Msg { return views.ActionErrMsg{Err: err} }
	}
	if a.deps.Editor == nil {
		return fail(fmt.Errorf("no editor configured"))
	}

	file, err := editor.NewNotesFile(msg.Title, msg.Notes)
	if err != nil {
		return fail(err)
	}
	cmd, err := a.deps.Editor.Command(file.Path())
	if err != nil {
		file.Remove()
		return fail(err)
	}

	store := a.svc.Store
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		defer file.Remove()
		if err != nil {
			return editorFinishedMsg{err: fmt.Errorf("running editor: %w", err)}
		}
		notes, err := file.Read()
		if err != nil {
			return editorFinishedMsg{err: err}
		}
		return editorFinishedMsg{save: func() tea.Msg {
			res, err := commands.NewSetNotesCommand(store, msg.At, notes).Execute(context.Background())
			if err != nil {
				return views.ActionErrMsg{Err: err}
			}
			return views.ActionDoneMsg{Message: res.Message}
		}}
	})
}

func (a *App) export(report bool) tea.Cmd {
	format := commands.FormatJSON
	if report {
		format = commands.FormatXLSX
	}
	var notifier ports.Notifier
	if a.deps.Notifications != nil {
		notifier = a.deps.Notifications
	}
	cmd := commands.NewExportCommand(a.svc.Store, a.deps.Files, a.deps.Reports, notifier, format)
	return func() tea.Msg {
		res, err := cmd.Execute(context.Background())
		if err != nil {
			return views.ActionErrMsg{Err: err}
		}
		return views.ActionDoneMsg{Message: res.Message}
	}
}

// View renders the current view
func (a *App) View() string {
	var view string
	switch a.state {
	case ViewAdd:
		view = a.add.View()
	case ViewDelete:
		view = a.remove.View()
	case ViewNotes:
		view = a.notes.View()
	case ViewFocus:
		view = a.focus.View()
	case ViewStats:
		view = a.stats.View()
	case ViewHelp:
		view = a.help.View()
	default:
		view = a.dashboard.View()
	}

	if a.toast.Title == "" {
		return view
	}
	return view + "\n" + a.renderToast()
}

func (a *App) renderToast() string {
	label := styles.StatusKey
	if a.toast.Level == ports.LevelError {
		label = label.Background(styles.Error)
	}
	text := a.toast.Title
	if a.toast.Description != "" {
		text += ": " + a.toast.Description
	}
	return label.Render(" roadmap ") + styles.StatusText.Render(" "+text+" ")
}
