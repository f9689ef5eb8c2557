package tui

import (
	"hevy-insights/internal/analysis"
	"hevy-insights/internal/config"
	"hevy-insights/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenExercises
	ScreenExerciseDetail
	ScreenTrends
	ScreenSync
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	dashboard  DashboardModel
	exercises  ExercisesModel
	detail     ExerciseDetailModel
	trends     TrendsModel
	syncScreen SyncModel
	help       HelpModel

	// Services
	queryService *service.QueryService
	syncService  *service.SyncService
	units        Units

	// Window dimensions
	width  int
	height int

	// Status message
	status string
}

// NewApp creates a new App with all dependencies. Display preferences
// fix the starting range and granularity; both can be changed from
// the dashboard.
func NewApp(queryService *service.QueryService, syncService *service.SyncService, display config.DisplayConfig) *App {
	units := NewUnits(display)
	rng := analysis.ParseRange(display.Range)
	gran := analysis.ParseGranularity(display.Granularity)

	return &App{
		screen:       ScreenDashboard,
		queryService: queryService,
		syncService:  syncService,
		units:        units,
		dashboard:    NewDashboardModel(queryService, units, rng, gran),
		exercises:    NewExercisesModel(queryService, units),
		trends:       NewTrendsModel(queryService, units, 0, 0),
		syncScreen:   NewSyncModel(syncService),
		help:         NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.dashboard.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings (unless a sync is running)
		if a.screen != ScreenSync || !a.syncScreen.syncing {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				a.screen = ScreenDashboard
				return a, a.dashboard.Init()
			case "2":
				a.screen = ScreenExercises
				return a, a.exercises.Init()
			case "3":
				a.screen = ScreenTrends
				a.trends = NewTrendsModel(a.queryService, a.units, a.width, a.height)
				return a, a.trends.Init()
			case "4", "s":
				if a.screen != ScreenSync {
					a.screen = ScreenSync
					return a, a.syncScreen.Init()
				}
				// Let 's' fall through to the sync screen when already there
			case "?":
				a.prevScreen = a.screen
				a.screen = ScreenHelp
				return a, nil
			case "esc":
				switch a.screen {
				case ScreenHelp:
					a.screen = a.prevScreen
					return a, nil
				case ScreenExerciseDetail:
					a.screen = ScreenExercises
					return a, nil
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case openExerciseMsg:
		a.screen = ScreenExerciseDetail
		a.detail = NewExerciseDetailModel(a.queryService, a.units, msg.exerciseID, a.width, a.height)
		return a, a.detail.Init()

	case SyncCompleteMsg:
		// Refresh dashboard after sync
		a.screen = ScreenDashboard
		return a, a.dashboard.Init()
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenDashboard:
		var m tea.Model
		m, cmd = a.dashboard.Update(msg)
		a.dashboard = m.(DashboardModel)
	case ScreenExercises:
		var m tea.Model
		m, cmd = a.exercises.Update(msg)
		a.exercises = m.(ExercisesModel)
	case ScreenExerciseDetail:
		var m tea.Model
		m, cmd = a.detail.Update(msg)
		a.detail = m.(ExerciseDetailModel)
	case ScreenTrends:
		var m tea.Model
		m, cmd = a.trends.Update(msg)
		a.trends = m.(TrendsModel)
	case ScreenSync:
		var m tea.Model
		m, cmd = a.syncScreen.Update(msg)
		a.syncScreen = m.(SyncModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenDashboard:
		content = a.dashboard.View()
	case ScreenExercises:
		content = a.exercises.View()
	case ScreenExerciseDetail:
		content = a.detail.View()
	case ScreenTrends:
		content = a.trends.View()
	case ScreenSync:
		content = a.syncScreen.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Hevy Strength Insights")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Dashboard", ScreenDashboard},
		{"2", "Exercises", ScreenExercises},
		{"3", "Trends", ScreenTrends},
		{"4", "Sync", ScreenSync},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		active := a.screen == item.screen ||
			(item.screen == ScreenExercises && a.screen == ScreenExerciseDetail)
		if active {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status != "" {
		return statusStyle.Render(a.status)
	}
	return ""
}

// SyncCompleteMsg is sent when sync finishes
type SyncCompleteMsg struct{}

// openExerciseMsg asks the app to open the detail screen for one exercise.
type openExerciseMsg struct {
	exerciseID string
}
