package tui

import (
	"context"
	"fmt"
	"strings"

	"hevy-insights/internal/analysis"
	"hevy-insights/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// DashboardModel is the dashboard screen model
type DashboardModel struct {
	queryService *service.QueryService
	units        Units
	rng          analysis.Range
	gran         analysis.Granularity
	data         *service.DashboardData
	loading      bool
	err          error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(qs *service.QueryService, units Units, rng analysis.Range, gran analysis.Granularity) DashboardModel {
	return DashboardModel{
		queryService: qs,
		units:        units,
		rng:          rng,
		gran:         gran,
		loading:      true,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.loadData
}

func (m DashboardModel) loadData() tea.Msg {
	data, err := m.queryService.Dashboard(context.Background(), m.rng, m.gran)
	if err != nil {
		return dashboardDataMsg{err: err}
	}
	return dashboardDataMsg{data: data}
}

type dashboardDataMsg struct {
	data *service.DashboardData
	err  error
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		case "t":
			// Cycle the time range
			m.rng = (m.rng + 1) % (analysis.RangeAll + 1)
			m.loading = true
			return m, m.loadData
		case "g":
			// Toggle week/month buckets
			if m.gran == analysis.GranularityWeek {
				m.gran = analysis.GranularityMonth
			} else {
				m.gran = analysis.GranularityWeek
			}
			m.loading = true
			return m, m.loadData
		}
	}
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.loading {
		return "\n  Loading dashboard..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil || m.data.WorkoutCount == 0 && !m.data.HasLongest {
		return "\n  No workouts yet. Press 's' to sync with Hevy."
	}

	var sections []string

	volumeCard := m.renderVolumeCard()
	alltimeCard := m.renderAllTimeCard()
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, volumeCard, "  ", alltimeCard)
	sections = append(sections, topRow)

	if len(m.data.VolumeSeries) > 2 {
		sections = append(sections, m.renderChart())
	}

	if len(m.data.MuscleGroups) > 0 {
		sections = append(sections, m.renderMuscleBalance())
	}

	help := statusStyle.Render("Press 't' to change range, 'g' to change buckets, 'r' to refresh, 's' to sync")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderVolumeCard() string {
	title := cardTitleStyle.Render("Volume (" + m.rng.String() + ")")

	lines := []string{
		RenderMetric("Workouts", fmt.Sprintf("%d", m.data.WorkoutCount), ""),
		RenderMetric("Total volume", m.units.FormatVolume(m.data.TotalVolumeKg), ""),
		RenderMetric("Avg per workout", m.units.FormatVolume(m.data.AvgVolumeKg), ""),
		RenderMetric("Total time", fmt.Sprintf("%.1f h", m.data.TotalHours), ""),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(38).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderAllTimeCard() string {
	title := cardTitleStyle.Render("All Time")

	lines := []string{
		RenderMetric("Week streak", fmt.Sprintf("%d", m.data.StreakWeeks), ""),
	}
	if m.data.MostTrainedTitle != "" {
		lines = append(lines, RenderMetric("Most trained",
			fmt.Sprintf("%s ×%d", truncateName(m.data.MostTrainedTitle, 16), m.data.MostTrainedCount), ""))
	}
	if m.data.HasLongest {
		lines = append(lines, RenderMetric("Longest workout",
			formatMinutes(m.data.LongestWorkout.DurationMinutes()), ""))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderChart() string {
	title := cardTitleStyle.Render(fmt.Sprintf("Volume per %s (%s)", m.gran, m.units.WeightLabel()))

	graph := asciigraph.Plot(m.units.ConvertSeries(m.data.VolumeSeries),
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)

	labels := statusStyle.Render(strings.Join(m.data.PeriodLabels, "  "))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, labels))
}

func (m DashboardModel) renderMuscleBalance() string {
	title := cardTitleStyle.Render("Muscle Balance (" + m.rng.String() + ")")

	totalSets := 0
	for _, g := range m.data.MuscleGroups {
		totalSets += g.Sets
	}

	var rows []string
	for i, g := range m.data.MuscleGroups {
		if i >= 8 {
			break
		}
		share := 0.0
		if totalSets > 0 {
			share = float64(g.Sets) / float64(totalSets)
		}
		row := fmt.Sprintf("%-14s %s %4d sets",
			truncateName(g.Label, 14),
			RenderProgressBar(share, 20),
			g.Sets)
		rows = append(rows, row)
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}
