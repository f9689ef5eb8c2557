package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Dashboard"},
		{"2", "Exercise list"},
		{"3", "Strength trends"},
		{"4 or s", "Sync screen"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	dashSection := m.renderSection("Dashboard", []keyHelp{
		{"t", "Cycle time range"},
		{"g", "Toggle week/month buckets"},
		{"r", "Refresh data"},
	})
	sections = append(sections, dashSection)

	listSection := m.renderSection("Exercise List", []keyHelp{
		{"j / down", "Move cursor down"},
		{"k / up", "Move cursor up"},
		{"enter", "Open exercise detail"},
		{"r", "Refresh list"},
	})
	sections = append(sections, listSection)

	syncSection := m.renderSection("Sync Screen", []keyHelp{
		{"s / enter", "Start sync"},
	})
	sections = append(sections, syncSection)

	trendsSection := m.renderTrendsHelp()
	sections = append(sections, trendsSection)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderTrendsHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Trends Explained"))
	lines = append(lines, "")

	trends := []struct {
		name string
		desc string
	}{
		{"Gaining", "Top-set weight up more than 2 kg, or reps climbing while weight holds."},
		{"Losing", "Top-set weight down more than 2 kg, or reps falling while weight holds."},
		{"Plateau", "Last five sessions within 0.5 kg and 1 rep of each other."},
		{"Maintaining", "Roughly stable; none of the above."},
		{"Inactive", "Not trained in over 60 days."},
		{"Not Enough Data", "Fewer than five sessions in the last 60 days."},
	}

	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)

	for _, t := range trends {
		lines = append(lines, "  "+helpKeyStyle.Render(t.name))
		lines = append(lines, "  "+mutedStyle.Render(t.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
