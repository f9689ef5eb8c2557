package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"hevy-insights/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// ExerciseDetailModel is the single-exercise detail screen model
type ExerciseDetailModel struct {
	queryService *service.QueryService
	units        Units
	exerciseID   string
	data         *service.ExerciseDetailData
	found        bool
	viewport     viewport.Model
	loading      bool
	err          error
	width        int
	height       int
	ready        bool
}

// NewExerciseDetailModel creates a new detail model for one exercise
func NewExerciseDetailModel(qs *service.QueryService, units Units, exerciseID string, width, height int) ExerciseDetailModel {
	m := ExerciseDetailModel{
		queryService: qs,
		units:        units,
		exerciseID:   exerciseID,
		loading:      true,
		width:        width,
		height:       height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.ready = true
	}

	return m
}

// Init initializes the detail screen
func (m ExerciseDetailModel) Init() tea.Cmd {
	return m.loadDetail
}

type detailLoadedMsg struct {
	data  *service.ExerciseDetailData
	found bool
	err   error
}

func (m ExerciseDetailModel) loadDetail() tea.Msg {
	data, found, err := m.queryService.ExerciseDetail(context.Background(), m.exerciseID)
	return detailLoadedMsg{data: data, found: found, err: err}
}

// Update handles messages
func (m ExerciseDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
		m.found = msg.found
		if m.ready && m.data != nil {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.data != nil {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadDetail
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail screen
func (m ExerciseDetailModel) View() string {
	if m.loading {
		return "\n  Loading exercise..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if !m.found {
		return "\n  Unknown exercise. Press esc to go back."
	}

	if !m.ready {
		return m.renderContent()
	}

	help := statusStyle.Render("j/k to scroll, esc to go back")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), help)
}

func (m ExerciseDetailModel) renderContent() string {
	agg := m.data.Aggregate

	var sections []string

	title := cardTitleStyle.Render(agg.Title)
	sections = append(sections, title)

	summary := []string{
		RenderMetric("Sessions", fmt.Sprintf("%d", agg.TotalSessions), ""),
		RenderMetric("Last trained", agg.LastTrainedDate, ""),
		RenderMetric("Trend", describeTrend(m.data.Trend, m.units), ""),
	}
	if agg.VideoURL != "" {
		summary = append(summary, RenderMetric("Video", agg.VideoURL, ""))
	}
	sections = append(sections, strings.Join(summary, "\n"))

	if len(m.data.MaxWeightSeries) > 2 {
		sections = append(sections, m.renderChart())
	}

	sections = append(sections, m.renderTopSets())

	if len(agg.DistinctPRs) > 0 {
		sections = append(sections, m.renderPRs())
	}

	sections = append(sections, m.renderHistory())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ExerciseDetailModel) renderChart() string {
	title := cardTitleStyle.Render("Max Weight per Session (" + m.units.WeightLabel() + ")")

	graph := asciigraph.Plot(m.units.ConvertSeries(m.data.MaxWeightSeries),
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(1),
	)

	first := m.data.SeriesDays[0]
	last := m.data.SeriesDays[len(m.data.SeriesDays)-1]
	span := statusStyle.Render(first + " .. " + last)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, span))
}

func (m ExerciseDetailModel) renderTopSets() string {
	title := cardTitleStyle.Render("Top Sets")

	if len(m.data.Aggregate.TopSets) == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "No sets recorded"))
	}

	var rows []string
	for i, ts := range m.data.Aggregate.TopSets {
		rows = append(rows, fmt.Sprintf("%d. %s × %.0f  (%s)",
			i+1, m.units.FormatWeight(ts.WeightKg), ts.Reps, ts.Day))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(rows, "\n")))
}

func (m ExerciseDetailModel) renderPRs() string {
	title := cardTitleStyle.Render("Personal Records")

	types := make([]string, 0, len(m.data.Aggregate.DistinctPRs))
	for t := range m.data.Aggregate.DistinctPRs {
		types = append(types, t)
	}
	sort.Strings(types)

	var rows []string
	for _, t := range types {
		rows = append(rows, fmt.Sprintf("%-24s %.1f", t, m.data.Aggregate.DistinctPRs[t]))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(rows, "\n")))
}

func (m ExerciseDetailModel) renderHistory() string {
	title := cardTitleStyle.Render("Session History")

	agg := m.data.Aggregate
	days := make([]string, 0, len(agg.ByDay))
	for day := range agg.ByDay {
		days = append(days, day)
	}
	// Newest first for reading down the page
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	header := tableHeaderStyle.Render(fmt.Sprintf("%-12s  %10s  %6s  %5s  %12s",
		"Date", "Max", "Reps", "Sets", "Volume"))

	rows := []string{header}
	for _, day := range days {
		stats := agg.ByDay[day]
		rows = append(rows, tableRowStyle.Render(fmt.Sprintf("%-12s  %10s  %6.0f  %5d  %12s",
			day,
			m.units.FormatWeight(stats.MaxWeight),
			stats.RepsAtMaxWeight,
			stats.SetCount,
			m.units.FormatVolume(stats.Volume))))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(rows, "\n")))
}
