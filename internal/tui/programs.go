package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/BerkeKaanDinler/fitness-web/internal/auth"
	"github.com/BerkeKaanDinler/fitness-web/internal/fitness"
	"github.com/BerkeKaanDinler/fitness-web/internal/store"
)

type programsModel struct {
	store *store.Store
	auth  *auth.Service

	width  int
	height int

	profile fitness.Profile
	customs []fitness.CustomProgram
	cursor  int

	formActive bool
	form       *huh.Form
	title      *string
	tag        *string
	goal       *string
	desc       *string
	detail     *string
	days       *string
}

func newProgramsModel(s *store.Store, a *auth.Service) programsModel {
	t, tg, g, d, dt, dy := "", "", "", "", "", ""
	return programsModel{
		store:  s,
		auth:   a,
		title:  &t,
		tag:    &tg,
		goal:   &g,
		desc:   &d,
		detail: &dt,
		days:   &dy,
	}
}

func (p *programsModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

type programsDataMsg struct {
	profile fitness.Profile
	customs []fitness.CustomProgram
}

func (p programsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return programsDataMsg{
			profile: p.store.LoadProfile(),
			customs: p.store.LoadCustomPrograms(),
		}
	}
}

// allPrograms lists customs first so they shadow the built-ins the
// same way the recommendation resolver prefers them.
func (p programsModel) allPrograms() []fitness.Program {
	out := make([]fitness.Program, 0, len(p.customs)+len(fitness.BuiltinPrograms))
	for _, c := range p.customs {
		out = append(out, c.Program())
	}
	out = append(out, fitness.BuiltinPrograms...)
	return out
}

func (p programsModel) update(msg tea.Msg) (programsModel, tea.Cmd) {
	if p.formActive && p.form != nil {
		return p.updateForm(msg)
	}

	switch msg := msg.(type) {
	case programsDataMsg:
		p.profile = msg.profile
		p.customs = msg.customs
		if p.cursor >= len(p.allPrograms()) {
			p.cursor = 0
		}
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, keys.Down):
			if p.cursor < len(p.allPrograms())-1 {
				p.cursor++
			}
		case key.Matches(msg, keys.New):
			return p.showForm()
		case key.Matches(msg, keys.Delete):
			return p.deleteSelected()
		}
	}
	return p, nil
}

func (p programsModel) showForm() (programsModel, tea.Cmd) {
	if _, err := p.auth.RequireAdmin(); err != nil {
		return p, errorCmd("Program eklemek icin kurucu yetkisi gerekiyor.")
	}

	*p.title, *p.tag, *p.goal = "", "", "kas"
	*p.desc, *p.detail, *p.days = "", "", ""

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Program adi").Value(p.title),
			huh.NewInput().Title("Etiket (ornek: 4 Gun)").Value(p.tag),
			huh.NewSelect[string]().Title("Hedef").
				Options(
					huh.NewOption("Kas kazanimi", "kas"),
					huh.NewOption("Yag yakimi", "yag"),
					huh.NewOption("Guc", "guc"),
					huh.NewOption("Atletik", "atletik"),
				).Value(p.goal),
			huh.NewInput().Title("Kisa aciklama").Value(p.desc),
			huh.NewText().Title("Detay").Value(p.detail),
			huh.NewText().Title("Gunler (her satir bir gun)").Value(p.days),
		).Title("Yeni Ozel Program"),
	).WithShowHelp(true).WithShowErrors(true)

	p.formActive = true
	return p, p.form.Init()
}

func (p programsModel) updateForm(msg tea.Msg) (programsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			p.formActive = false
			p.form = nil
			return p, nil
		}
	}

	form, cmd := p.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.form = f
	}

	if p.form.State == huh.StateCompleted {
		p.formActive = false
		return p.saveProgram()
	}

	return p, cmd
}

func (p programsModel) saveProgram() (programsModel, tea.Cmd) {
	// Re-check on submit; the session may have changed while the form
	// was open.
	user, err := p.auth.RequireAdmin()
	if err != nil {
		return p, errorCmd("Program eklemek icin kurucu yetkisi gerekiyor.")
	}

	var days []string
	for _, line := range strings.Split(*p.days, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			days = append(days, line)
		}
	}

	custom, err := fitness.NewCustomProgram(*p.title, *p.tag, *p.goal, *p.desc, *p.detail, days, user.Email)
	if err != nil {
		return p, errorCmd("Program adi, aciklama ve en az bir gun gerekli.")
	}

	p.customs = append([]fitness.CustomProgram{*custom}, p.customs...)
	p.store.SaveCustomPrograms(p.customs)
	p.cursor = 0
	return p, statusCmd(custom.Title + " eklendi.")
}

func (p programsModel) deleteSelected() (programsModel, tea.Cmd) {
	if p.cursor >= len(p.customs) {
		return p, errorCmd("Hazir programlar silinemez.")
	}
	if _, err := p.auth.RequireAdmin(); err != nil {
		return p, errorCmd("Program silmek icin kurucu yetkisi gerekiyor.")
	}

	removed := p.customs[p.cursor]
	p.customs = append(p.customs[:p.cursor], p.customs[p.cursor+1:]...)
	p.store.SaveCustomPrograms(p.customs)
	if p.cursor >= len(p.allPrograms()) {
		p.cursor = 0
	}
	return p, statusCmd(removed.Title + " silindi.")
}

func (p programsModel) view() string {
	w := p.width - 4

	if p.formActive && p.form != nil {
		title := titleStyle.Render("Yeni Ozel Program")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", p.form.View()),
		)
	}

	list := p.renderList(w)
	detail := p.renderDetail(w)
	hint := mutedStyle.Render("n: yeni program (kurucu)  d: ozel programi sil")

	return lipgloss.JoinVertical(lipgloss.Left, list, detail, hint)
}

func (p programsModel) renderList(w int) string {
	reco := fitness.Recommend(p.profile.PlannerGoal, p.customs)

	var rows []string
	rows = append(rows, titleStyle.Render("Antrenman Programlari"))
	for i, prog := range p.allPrograms() {
		name := prog.Title
		label := mutedStyle.Render(prog.Tag + " | hedef: " + prog.Goal)
		if i < len(p.customs) {
			label += warningStyle.Render("  ozel")
		}
		if reco != nil && reco.Key == prog.Key {
			name = successStyle.Render(name + " (onerilen)")
		}
		line := fmt.Sprintf("%s  %s", name, label)
		if i == p.cursor {
			line = selectedItemStyle.Render("> " + line)
		} else {
			line = normalItemStyle.Render("  " + line)
		}
		rows = append(rows, line)
	}

	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (p programsModel) renderDetail(w int) string {
	progs := p.allPrograms()
	if p.cursor >= len(progs) {
		return ""
	}
	prog := progs[p.cursor]

	var rows []string
	rows = append(rows, titleStyle.Render(prog.Title))
	rows = append(rows, prog.Desc)
	if prog.Detail != "" {
		rows = append(rows, mutedStyle.Render(prog.Detail))
	}
	for _, day := range prog.Days {
		rows = append(rows, "  - "+day)
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
