package tui

import (
	"context"
	"fmt"

	"hevy-insights/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ExercisesModel is the exercise list screen model
type ExercisesModel struct {
	queryService *service.QueryService
	units        Units
	exercises    []service.ExerciseSummary
	cursor       int
	loading      bool
	err          error
}

// NewExercisesModel creates a new exercises model
func NewExercisesModel(qs *service.QueryService, units Units) ExercisesModel {
	return ExercisesModel{
		queryService: qs,
		units:        units,
		loading:      true,
	}
}

// Init initializes the exercises screen
func (m ExercisesModel) Init() tea.Cmd {
	return m.loadList
}

type exercisesLoadedMsg struct {
	exercises []service.ExerciseSummary
	err       error
}

func (m ExercisesModel) loadList() tea.Msg {
	exercises, err := m.queryService.Exercises(context.Background())
	return exercisesLoadedMsg{exercises: exercises, err: err}
}

// Update handles messages
func (m ExercisesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exercisesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.exercises = msg.exercises
		if m.cursor >= len(m.exercises) {
			m.cursor = 0
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.exercises)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.exercises) {
				id := m.exercises[m.cursor].ExerciseID
				return m, func() tea.Msg { return openExerciseMsg{exerciseID: id} }
			}
		case "r":
			m.loading = true
			return m, m.loadList
		}
	}
	return m, nil
}

// View renders the exercise list
func (m ExercisesModel) View() string {
	if m.loading {
		return "\n  Loading exercises..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if len(m.exercises) == 0 {
		return "\n  No exercises yet. Press 's' to sync with Hevy."
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-28s  %8s  %10s  %10s  %-24s",
		"Exercise", "Sessions", "Last", "Best", "Trend"))

	rows := []string{header}
	for i, e := range m.exercises {
		line := fmt.Sprintf("%-28s  %8d  %10s  %10s  %-24s",
			truncateName(e.Title, 28),
			e.TotalSessions,
			e.LastTrained,
			m.units.FormatWeight(e.BestWeightKg),
			describeTrend(e.Trend, m.units))

		if i == m.cursor {
			rows = append(rows, tableSelectedStyle.Render(line))
		} else {
			rows = append(rows, tableRowStyle.Render(line))
		}
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	help := statusStyle.Render("j/k to move, enter for detail, 'r' to refresh")
	return lipgloss.JoinVertical(lipgloss.Left, table, help)
}
