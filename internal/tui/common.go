package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BerkeKaanDinler/fitness-web/internal/export"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewCalculators
	viewLibrary
	viewSession
	viewMetrics
	viewPrograms
	viewAccount
)

var viewNames = []string{"Panel", "Hesaplayici", "Kutuphane", "Seans", "Olcumler", "Programlar", "Hesap"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type exportDoneMsg struct {
	path string
}

type importDoneMsg struct {
	result export.ImportResult
}

// profileChangedMsg lets views that derive from the profile (dashboard
// recommendation, session rest seconds) reload after a calculator run
// or goal change.
type profileChangedMsg struct{}

// favoritesChangedMsg fans favorite toggles out to the dashboard count.
type favoritesChangedMsg struct{}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

func errorCmd(format string, args ...any) tea.Cmd {
	text := fmt.Sprintf(format, args...)
	return func() tea.Msg { return statusMsg{text: text, isError: true} }
}

// --- Helpers ---

func formatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(done)/float64(total)*100 + 0.5)
}
