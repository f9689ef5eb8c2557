package tui

import (
	"context"
	"fmt"
	"strings"

	"hevy-insights/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SyncModel is the sync screen model
type SyncModel struct {
	syncService *service.SyncService
	syncing     bool
	result      *service.RefreshResult
	err         error
	done        bool
}

// NewSyncModel creates a new sync model
func NewSyncModel(ss *service.SyncService) SyncModel {
	return SyncModel{
		syncService: ss,
	}
}

// Init initializes the sync screen
func (m SyncModel) Init() tea.Cmd {
	return nil
}

// SyncDoneMsg is sent when sync finishes
type SyncDoneMsg struct {
	Result *service.RefreshResult
	Err    error
}

// Update handles messages
func (m SyncModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SyncDoneMsg:
		m.syncing = false
		m.done = true
		m.result = msg.Result
		m.err = msg.Err
		if m.err == nil {
			return m, func() tea.Msg { return SyncCompleteMsg{} }
		}
		return m, nil

	case tea.KeyMsg:
		if !m.syncing {
			switch msg.String() {
			case "enter", "s":
				m.syncing = true
				m.done = false
				m.err = nil
				m.result = nil
				return m, m.runSync
			}
		}
	}
	return m, nil
}

func (m SyncModel) runSync() tea.Msg {
	// Force bypasses the freshness window so a deliberate sync always
	// re-pages the collection.
	result, err := m.syncService.Refresh(context.Background(), true)
	return SyncDoneMsg{Result: result, Err: err}
}

// View renders the sync screen
func (m SyncModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Hevy Sync")
	sections = append(sections, title)

	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err)))
		sections = append(sections, "\n"+statusStyle.Render("  Press 's' or Enter to retry"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if m.done && !m.syncing {
		sections = append(sections, successStyle.Render("\n  Sync complete!"))
		sections = append(sections, m.renderSummary())
		sections = append(sections, "\n"+statusStyle.Render("  Press '1' to go to dashboard"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if m.syncing {
		sections = append(sections, m.renderProgress())
	} else {
		sections = append(sections, m.renderStartPrompt())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m SyncModel) renderStartPrompt() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, "  This will refresh your workouts from Hevy:")
	lines = append(lines, "")
	lines = append(lines, "  1. Page through your workout history")
	lines = append(lines, "  2. Replace the local collection")
	lines = append(lines, "  3. Save a snapshot for offline use")
	lines = append(lines, "")
	lines = append(lines, statusStyle.Render("  Press 's' or Enter to start sync"))

	return strings.Join(lines, "\n")
}

func (m SyncModel) renderProgress() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, "  Syncing with Hevy...")
	lines = append(lines, "")
	lines = append(lines, statusStyle.Render("  Fetching pages, this may take a moment..."))

	return strings.Join(lines, "\n")
}

func (m SyncModel) renderSummary() string {
	if m.result == nil {
		return ""
	}

	r := m.result
	var lines []string
	lines = append(lines, "")
	lines = append(lines, successStyle.Render(fmt.Sprintf("  %d workouts across %d pages", r.WorkoutCount, r.Pages)))

	if r.PagesCapped {
		lines = append(lines, warningStyle.Render("  Page limit reached, collection may be truncated"))
	}

	if r.SnapshotSaved {
		lines = append(lines, statusStyle.Render("  Snapshot saved at "+r.FetchedAt.Format("15:04:05")))
	}

	return strings.Join(lines, "\n")
}
