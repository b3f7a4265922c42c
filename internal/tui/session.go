package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/BerkeKaanDinler/fitness-web/internal/fitness"
	"github.com/BerkeKaanDinler/fitness-web/internal/store"
)

type sessionModel struct {
	store  *store.Store
	width  int
	height int

	plan    *fitness.SessionPlan
	rest    restTimerModel
	cursor  int
	profile fitness.Profile

	formActive bool
	form       *huh.Form
	muscle     *string
	duration   *string
}

func newSessionModel(s *store.Store) sessionModel {
	m, d := "", ""
	return sessionModel{
		store:    s,
		rest:     newRestTimerModel(90),
		muscle:   &m,
		duration: &d,
	}
}

func (s *sessionModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type sessionDataMsg struct {
	plan    *fitness.SessionPlan
	profile fitness.Profile
}

func (s sessionModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return sessionDataMsg{
			plan:    s.store.LoadSessionPlan(),
			profile: s.store.LoadProfile(),
		}
	}
}

func (s sessionModel) update(msg tea.Msg) (sessionModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case sessionDataMsg:
		s.plan = msg.plan
		s.profile = msg.profile
		s.rest.setConfigured(msg.profile.RestSeconds)
		if s.plan != nil && s.cursor >= len(s.plan.Steps) {
			s.cursor = 0
		}
		return s, nil

	case tickMsg:
		if s.rest.tick() {
			return s, statusCmd("Dinlenme bitti, sonraki sete gec!")
		}
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.New):
			return s.showForm()

		case key.Matches(msg, keys.Up):
			if s.cursor > 0 {
				s.cursor--
			}
		case key.Matches(msg, keys.Down):
			if s.plan != nil && s.cursor < len(s.plan.Steps)-1 {
				s.cursor++
			}
		case key.Matches(msg, keys.Enter):
			return s.toggleStep()

		case key.Matches(msg, keys.Start):
			s.rest.start()
			return s, nil
		case key.Matches(msg, keys.Pause):
			s.rest.pause()
			return s, nil
		case key.Matches(msg, keys.Reset):
			s.rest.reset()
			return s, nil

		case key.Matches(msg, keys.Left):
			return s.adjustRest(-15)
		case key.Matches(msg, keys.Right):
			return s.adjustRest(15)
		}
	}
	return s, nil
}

func (s sessionModel) toggleStep() (sessionModel, tea.Cmd) {
	if s.plan == nil || s.cursor >= len(s.plan.Steps) {
		return s, nil
	}
	s.plan.ToggleStep(s.plan.Steps[s.cursor].ID)
	s.store.SaveSessionPlan(s.plan)
	return s, nil
}

// adjustRest steps the configured rest in 15s increments and persists
// it on the profile like any other preference.
func (s sessionModel) adjustRest(delta int) (sessionModel, tea.Cmd) {
	s.profile.RestSeconds = fitness.ClampRestSeconds(s.profile.RestSeconds + delta)
	s.rest.setConfigured(s.profile.RestSeconds)
	s.store.SaveProfile(s.profile)
	return s, func() tea.Msg { return profileChangedMsg{} }
}

func (s sessionModel) showForm() (sessionModel, tea.Cmd) {
	*s.muscle = "gogus"
	*s.duration = "45"
	if s.plan != nil {
		*s.muscle = s.plan.Muscle
		*s.duration = strconv.Itoa(s.plan.Duration)
	}

	muscleOpts := make([]huh.Option[string], 0, len(fitness.MuscleKeys))
	for _, k := range fitness.MuscleKeys {
		muscleOpts = append(muscleOpts, huh.NewOption(fitness.MuscleLabels[k], k))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Kas grubu").Options(muscleOpts...).Value(s.muscle),
			huh.NewSelect[string]().Title("Sure (dk)").
				Options(
					huh.NewOption("30", "30"),
					huh.NewOption("45", "45"),
					huh.NewOption("60", "60"),
				).Value(s.duration),
		).Title("Yeni Seans"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s sessionModel) updateForm(msg tea.Msg) (sessionModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		duration, _ := strconv.Atoi(*s.duration)
		plan := fitness.BuildSessionPlan(*s.muscle, duration)
		s.plan = &plan
		s.cursor = 0
		s.store.SaveSessionPlan(s.plan)
		return s, statusCmd("Yeni seans plani hazir.")
	}

	return s, cmd
}

func (s sessionModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Seans Planlayici")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	timer := s.renderTimerPanel(w)
	plan := s.renderPlanPanel(w)
	hint := mutedStyle.Render("n: yeni plan  enter: adimi isaretle  s/space/r: dinlenme sayaci  ←/→: dinlenme suresi")

	return lipgloss.JoinVertical(lipgloss.Left, timer, plan, hint)
}

func (s sessionModel) renderTimerPanel(w int) string {
	clock := formatClock(s.rest.remaining)

	var display, indicator string
	if s.rest.running {
		display = timerRunningStyle.Width(w - 6).Render(clock)
		indicator = successStyle.Render("●  DINLENME")
	} else {
		display = timerStyle.Width(w - 6).Render(clock)
		indicator = mutedStyle.Render("■  HAZIR")
	}
	config := mutedStyle.Render(fmt.Sprintf("Set arasi dinlenme: %d sn", s.rest.configured))

	content := lipgloss.JoinVertical(lipgloss.Center, display, indicator, config)
	if s.rest.running {
		return activePanelStyle.Width(w).Render(content)
	}
	return panelStyle.Width(w).Render(content)
}

func (s sessionModel) renderPlanPanel(w int) string {
	if s.plan == nil {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Seans Plani"),
			mutedStyle.Render("Henuz plan yok. n ile yeni seans olustur."),
		))
	}

	done, total := s.plan.Progress()
	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("%s | %d dk", fitness.MuscleLabels[s.plan.Muscle], s.plan.Duration)),
		accentStyle.Render(fmt.Sprintf("Ilerleme: %d/%d (%%%d)", done, total, percent(done, total))),
	)

	rows := []string{header}
	for i, step := range s.plan.Steps {
		box := "[ ]"
		text := step.Text
		if step.Done {
			box = successStyle.Render("[x]")
			text = mutedStyle.Render(text)
		}
		line := fmt.Sprintf("%s %s", box, text)
		if i == s.cursor {
			line = selectedItemStyle.Render("> " + line)
		} else {
			line = normalItemStyle.Render("  " + line)
		}
		rows = append(rows, line)
	}

	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
