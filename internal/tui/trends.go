package tui

import (
	"context"
	"fmt"
	"strings"

	"hevy-insights/internal/analysis"
	"hevy-insights/internal/service"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// trendOrder fixes the display order of the trend groups.
var trendOrder = []analysis.TrendType{
	analysis.TrendGaining,
	analysis.TrendLosing,
	analysis.TrendPlateau,
	analysis.TrendMaintaining,
	analysis.TrendInactive,
	analysis.TrendInsufficient,
}

var trendHeadings = map[analysis.TrendType]string{
	analysis.TrendGaining:      "Gaining",
	analysis.TrendLosing:       "Losing",
	analysis.TrendPlateau:      "Plateau",
	analysis.TrendMaintaining:  "Maintaining",
	analysis.TrendInactive:     "Inactive",
	analysis.TrendInsufficient: "Not Enough Data",
}

// TrendsModel is the trends overview screen model
type TrendsModel struct {
	queryService *service.QueryService
	units        Units
	exercises    []service.ExerciseSummary
	viewport     viewport.Model
	loading      bool
	err          error
	width        int
	height       int
	ready        bool
}

// NewTrendsModel creates a new trends model
func NewTrendsModel(qs *service.QueryService, units Units, width, height int) TrendsModel {
	m := TrendsModel{
		queryService: qs,
		units:        units,
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

// Init initializes the trends screen
func (m TrendsModel) Init() tea.Cmd {
	return m.loadTrends
}

type trendsLoadedMsg struct {
	exercises []service.ExerciseSummary
	err       error
}

func (m TrendsModel) loadTrends() tea.Msg {
	exercises, err := m.queryService.Exercises(context.Background())
	return trendsLoadedMsg{exercises: exercises, err: err}
}

// Update handles messages
func (m TrendsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case trendsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.exercises = msg.exercises
		if m.ready {
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
		if m.exercises != nil {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadTrends
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the trends screen
func (m TrendsModel) View() string {
	if m.loading {
		return "\n  Classifying trends..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if len(m.exercises) == 0 {
		return "\n  No exercises yet. Press 's' to sync with Hevy."
	}

	if !m.ready {
		return m.renderContent()
	}

	help := statusStyle.Render("j/k to scroll, 'r' to refresh")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), help)
}

func (m TrendsModel) renderContent() string {
	groups := make(map[analysis.TrendType][]service.ExerciseSummary)
	for _, e := range m.exercises {
		groups[e.Trend.Type] = append(groups[e.Trend.Type], e)
	}

	var sections []string
	sections = append(sections, cardTitleStyle.Render("Strength Trends"))

	for _, tt := range trendOrder {
		group := groups[tt]
		if len(group) == 0 {
			continue
		}

		heading := lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).
			Render(fmt.Sprintf("%s (%d)", trendHeadings[tt], len(group)))

		rows := []string{"", heading}
		for _, e := range group {
			rows = append(rows, fmt.Sprintf("  %-28s  %s",
				truncateName(e.Title, 28),
				describeTrend(e.Trend, m.units)))
		}
		sections = append(sections, strings.Join(rows, "\n"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
