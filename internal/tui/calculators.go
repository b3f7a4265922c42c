package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/BerkeKaanDinler/fitness-web/internal/fitness"
	"github.com/BerkeKaanDinler/fitness-web/internal/store"
)

type calculatorsModel struct {
	store  *store.Store
	width  int
	height int

	profile    fitness.Profile
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	age      *string
	gender   *string
	weight   *string
	heightCm *string
	activity *string
	goal     *string
	rmWeight *string
	rmReps   *string
	waterMin *string

	nutrition *fitness.NutritionResult
	oneRM     *fitness.OneRepMaxResult
	water     float64
	hasWater  bool
}

func newCalculatorsModel(s *store.Store) calculatorsModel {
	a, g, w, h := "", "", "", ""
	ac, gl, rw, rr, wm := "", "", "", "", ""
	return calculatorsModel{
		store:    s,
		age:      &a,
		gender:   &g,
		weight:   &w,
		heightCm:  &h,
		activity: &ac,
		goal:     &gl,
		rmWeight: &rw,
		rmReps:   &rr,
		waterMin: &wm,
	}
}

func (c *calculatorsModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

type calculatorsDataMsg struct {
	profile fitness.Profile
}

func (c calculatorsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return calculatorsDataMsg{profile: c.store.LoadProfile()}
	}
}

func (c calculatorsModel) update(msg tea.Msg) (calculatorsModel, tea.Cmd) {
	if c.formActive && c.form != nil {
		return c.updateForm(msg)
	}

	switch msg := msg.(type) {
	case calculatorsDataMsg:
		c.profile = msg.profile
		c.recalc()
		return c, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return c.showForm()
		}
	}
	return c, nil
}

func (c calculatorsModel) showForm() (calculatorsModel, tea.Cmd) {
	p := c.profile
	*c.age = strconv.Itoa(p.Age)
	*c.gender = p.Gender
	*c.weight = formatFloat(p.Weight)
	*c.heightCm = formatFloat(p.Height)
	*c.activity = formatFloat(p.Activity)
	*c.goal = p.Goal
	*c.rmWeight = formatFloat(p.RMWeight)
	*c.rmReps = strconv.Itoa(p.RMReps)
	*c.waterMin = formatFloat(p.WaterTraining)

	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Yas").Value(c.age),
			huh.NewSelect[string]().Title("Cinsiyet").
				Options(
					huh.NewOption("Erkek", "male"),
					huh.NewOption("Kadin", "female"),
				).Value(c.gender),
			huh.NewInput().Title("Kilo (kg)").Value(c.weight),
			huh.NewInput().Title("Boy (cm)").Value(c.heightCm),
			huh.NewSelect[string]().Title("Aktivite").
				Options(
					huh.NewOption("Hareketsiz", "1.2"),
					huh.NewOption("Az aktif", "1.375"),
					huh.NewOption("Orta aktif", "1.55"),
					huh.NewOption("Cok aktif", "1.725"),
				).Value(c.activity),
			huh.NewSelect[string]().Title("Hedef").
				Options(
					huh.NewOption("Kilo koru", "maintain"),
					huh.NewOption("Kas kazan", "bulk"),
					huh.NewOption("Yag yak", "cut"),
				).Value(c.goal),
		).Title("Kalori ve Makro"),
		huh.NewGroup(
			huh.NewInput().Title("Kaldirilan agirlik (kg)").Value(c.rmWeight),
			huh.NewInput().Title("Tekrar sayisi").Value(c.rmReps),
		).Title("1RM"),
		huh.NewGroup(
			huh.NewInput().Title("Gunluk antrenman (dk)").Value(c.waterMin),
		).Title("Su"),
	).WithShowHelp(true).WithShowErrors(true)

	c.formActive = true
	return c, c.form.Init()
}

func (c calculatorsModel) updateForm(msg tea.Msg) (calculatorsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			c.formActive = false
			c.form = nil
			return c, nil
		}
	}

	form, cmd := c.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		c.form = f
	}

	if c.form.State == huh.StateCompleted {
		c.formActive = false
		return c.saveProfile()
	}

	return c, cmd
}

func (c calculatorsModel) saveProfile() (calculatorsModel, tea.Cmd) {
	p := c.profile
	if v, err := strconv.Atoi(strings.TrimSpace(*c.age)); err == nil {
		p.Age = v
	}
	p.Gender = *c.gender
	if v, err := parseFloat(*c.weight); err == nil {
		p.Weight = v
		p.WaterWeight = v
	}
	if v, err := parseFloat(*c.heightCm); err == nil {
		p.Height = v
	}
	if v, err := parseFloat(*c.activity); err == nil {
		p.Activity = v
	}
	p.Goal = *c.goal
	if v, err := parseFloat(*c.rmWeight); err == nil {
		p.RMWeight = v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(*c.rmReps)); err == nil {
		p.RMReps = v
	}
	if v, err := parseFloat(*c.waterMin); err == nil {
		p.WaterTraining = v
	}

	c.profile = p
	c.store.SaveProfile(p)
	c.recalc()
	return c, tea.Batch(
		statusCmd("Profil kaydedildi, sonuclar guncellendi."),
		func() tea.Msg { return profileChangedMsg{} },
	)
}

// recalc reruns all three calculators from the current profile. A
// calculator that rejects its inputs just leaves its panel empty.
func (c *calculatorsModel) recalc() {
	if res, err := fitness.CalculateNutrition(c.profile); err == nil {
		c.nutrition = &res
	} else {
		c.nutrition = nil
	}
	if res, err := fitness.CalculateOneRepMax(c.profile.RMWeight, c.profile.RMReps); err == nil {
		c.oneRM = &res
	} else {
		c.oneRM = nil
	}
	if litres, err := fitness.CalculateWaterIntake(c.profile.WaterWeight, c.profile.WaterTraining); err == nil {
		c.water = litres
		c.hasWater = true
	} else {
		c.hasWater = false
	}
}

func (c calculatorsModel) view() string {
	w := c.width - 4

	if c.formActive && c.form != nil {
		title := titleStyle.Render("Hesaplayicilar")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", c.form.View()),
		)
	}

	nutrition := c.renderNutritionPanel(w)
	strength := c.renderOneRMPanel(w)
	waterPanel := c.renderWaterPanel(w)

	hint := mutedStyle.Render("enter: degerleri duzenle")
	return lipgloss.JoinVertical(lipgloss.Left, nutrition, strength, waterPanel, hint)
}

func (c calculatorsModel) renderNutritionPanel(w int) string {
	title := titleStyle.Render("Kalori ve Makro")

	var rows []string
	rows = append(rows, title)
	if c.nutrition == nil {
		rows = append(rows, errorStyle.Render("Lutfen gecerli degerler gir."))
	} else {
		n := c.nutrition
		rows = append(rows,
			highlightStyle.Render(fmt.Sprintf("Gunluk hedef kalori: %d kcal (bakim: %d kcal).",
				int(n.Target), int(n.Maintenance))),
			fmt.Sprintf("Makrolar -> Protein: %d g | Karbonhidrat: %d g | Yag: %d g.",
				n.ProteinG, n.CarbsG, n.FatG),
			mutedStyle.Render(fmt.Sprintf("BMR: %d kcal", int(n.BMR))),
		)
	}
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (c calculatorsModel) renderOneRMPanel(w int) string {
	title := titleStyle.Render("1RM Tahmini")

	var rows []string
	rows = append(rows, title)
	if c.oneRM == nil {
		rows = append(rows, errorStyle.Render("Agirlik ve tekrar degerlerini kontrol et."))
	} else {
		rows = append(rows, highlightStyle.Render(fmt.Sprintf("Tahmini 1RM: %.1f kg", c.oneRM.OneRM)))
		if c.oneRM.ClampedReps != c.profile.RMReps {
			rows = append(rows, warningStyle.Render("Tekrar sayisi 15 ile sinirlandi."))
		}
		for _, row := range c.oneRM.Table {
			rows = append(rows, fmt.Sprintf("  %%%d -> %.1f kg", row.Percent, row.Load))
		}
	}
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (c calculatorsModel) renderWaterPanel(w int) string {
	title := titleStyle.Render("Su Ihtiyaci")

	var rows []string
	rows = append(rows, title)
	if !c.hasWater {
		rows = append(rows, errorStyle.Render("Lutfen gecerli degerler gir."))
	} else {
		rows = append(rows, highlightStyle.Render(fmt.Sprintf("Gunluk su hedefi: %.2f litre", c.water)))
	}
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
