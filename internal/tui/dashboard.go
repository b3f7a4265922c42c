package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BerkeKaanDinler/fitness-web/internal/fitness"
	"github.com/BerkeKaanDinler/fitness-web/internal/store"
)

// focusByDay gives each weekday its training focus line on the panel.
var focusByDay = map[string]string{
	"pzt":   "Bugun odak: gogus ve triceps. Ana hareketlerde formu koru.",
	"sal":   "Bugun odak: sirt ve biceps. Cekis hareketlerinde tam acilim.",
	"car":   "Bugun odak: bacak gunu. Squat oncesi iyi isin.",
	"per":   "Bugun odak: omuz ve core. Kontrollu tempo.",
	"cum":   "Bugun odak: tum vucut guc. Agirliklari dikkatli artir.",
	"cmt":   "Bugun odak: aktif toparlanma. Hafif kardiyo ve esneme.",
	"pazar": "Bugun odak: dinlenme. Uyku ve beslenmeye yuklen.",
}

type dashboardModel struct {
	store  *store.Store
	width  int
	height int

	profile   fitness.Profile
	tracker   fitness.Tracker
	favorites fitness.Favorites
	customs   []fitness.CustomProgram

	cursor int // checkpoint cursor
}

func newDashboardModel(s *store.Store) dashboardModel {
	return dashboardModel{store: s}
}

func (d dashboardModel) Init() tea.Cmd {
	return d.loadData()
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

type dashboardDataMsg struct {
	profile   fitness.Profile
	tracker   fitness.Tracker
	favorites fitness.Favorites
	customs   []fitness.CustomProgram
}

func (d dashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		return dashboardDataMsg{
			profile:   d.store.LoadProfile(),
			tracker:   d.store.LoadTracker(),
			favorites: d.store.LoadFavorites(),
			customs:   d.store.LoadCustomPrograms(),
		}
	}
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		d.profile = msg.profile
		d.tracker = msg.tracker
		d.favorites = msg.favorites
		d.customs = msg.customs
		return d, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if d.cursor > 0 {
				d.cursor--
			}
		case key.Matches(msg, keys.Down):
			if d.cursor < len(fitness.Checkpoints)-1 {
				d.cursor++
			}
		case key.Matches(msg, keys.Enter):
			cp := fitness.Checkpoints[d.cursor]
			d.tracker = d.tracker.Toggle(cp.ID)
			d.store.SaveTracker(d.tracker)
			return d, nil
		case key.Matches(msg, keys.Reset):
			d.tracker = d.tracker.Reset()
			d.store.SaveTracker(d.tracker)
			return d, statusCmd("Haftalik takip sifirlandi.")
		case key.Matches(msg, keys.Left):
			return d.cycleGoal(-1)
		case key.Matches(msg, keys.Right):
			return d.cycleGoal(1)
		}
	}
	return d, nil
}

// cycleGoal steps the planner goal and persists it; other tabs refresh
// via profileChangedMsg.
func (d dashboardModel) cycleGoal(dir int) (dashboardModel, tea.Cmd) {
	goals := fitness.PlannerGoals
	idx := 0
	for i, g := range goals {
		if g == d.profile.PlannerGoal {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(goals)) % len(goals)
	d.profile.PlannerGoal = goals[idx]
	d.store.SaveProfile(d.profile)
	return d, func() tea.Msg { return profileChangedMsg{} }
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	contentWidth := d.width - 4

	today := d.renderTodayPanel(contentWidth)
	reco := d.renderRecommendationPanel(contentWidth)
	track := d.renderTrackerPanel(contentWidth)

	return lipgloss.JoinVertical(lipgloss.Left, today, reco, track)
}

// favoriteNames resolves up to n favorite ids against the library,
// skipping ids the library no longer has.
func (d dashboardModel) favoriteNames(n int) []string {
	var names []string
	for _, id := range d.favorites {
		if ex, ok := fitness.ExerciseByID(id); ok {
			names = append(names, ex.Name)
			if len(names) == n {
				break
			}
		}
	}
	return names
}

func (d dashboardModel) renderTodayPanel(w int) string {
	now := time.Now()
	dayKey := fitness.DayKeyFor(now)

	title := titleStyle.Render(now.Format("02.01.2006") + " " + fitness.DayName(dayKey))
	focus := focusByDay[dayKey]

	done, total := d.tracker.Progress()
	progress := fmt.Sprintf("Haftalik ilerleme: %d/%d antrenman (%%%d)", done, total, percent(done, total))

	favText := fmt.Sprintf("Favori hareket: %d", len(d.favorites))
	if names := d.favoriteNames(3); len(names) > 0 {
		favText += " (" + strings.Join(names, ", ") + ")"
	}
	favs := mutedStyle.Render(favText)

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		focus,
		accentStyle.Render(progress),
		favs,
	)
	return panelStyle.Width(w).Render(content)
}

func (d dashboardModel) renderRecommendationPanel(w int) string {
	goal := d.profile.PlannerGoal
	header := headerStyle.Render("Hedef: " + goal + "  (←/→ degistir)")

	var body string
	if reco := fitness.Recommend(goal, d.customs); reco != nil {
		name := highlightStyle.Render(reco.Title)
		if reco.Custom {
			name += mutedStyle.Render(" (ozel)")
		}
		body = lipgloss.JoinVertical(lipgloss.Left, name, reco.Text)
	} else {
		body = mutedStyle.Render("Bu hedef icin oneri bulunamadi.")
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

func (d dashboardModel) renderTrackerPanel(w int) string {
	header := headerStyle.Render("Haftalik takip  (enter isaretle, r sifirla)")

	rows := make([]string, 0, len(fitness.Checkpoints)+1)
	rows = append(rows, header)
	for i, cp := range fitness.Checkpoints {
		box := "[ ]"
		if d.tracker[cp.ID] {
			box = successStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s %s", box, cp.Label)
		if i == d.cursor {
			line = selectedItemStyle.Render("> " + line)
		} else {
			line = normalItemStyle.Render("  " + line)
		}
		rows = append(rows, line)
	}

	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
