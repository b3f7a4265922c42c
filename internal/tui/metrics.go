package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/BerkeKaanDinler/fitness-web/internal/fitness"
	"github.com/BerkeKaanDinler/fitness-web/internal/store"
)

type metricsModel struct {
	store  *store.Store
	width  int
	height int

	metrics  fitness.WeeklyMetrics
	mealPlan string
	cursor   int // day cursor into fitness.DayKeys

	chart barchart.Model

	formActive bool
	form       *huh.Form
	weight     *string
	minutes    *string
	steps      *string
}

func newMetricsModel(s *store.Store) metricsModel {
	w, m, st := "", "", ""
	return metricsModel{
		store:   s,
		chart:   barchart.New(60, 10),
		weight:  &w,
		minutes: &m,
		steps:   &st,
	}
}

func (m *metricsModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.rebuildChart()
}

type metricsDataMsg struct {
	metrics  fitness.WeeklyMetrics
	mealPlan string
}

func (m metricsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return metricsDataMsg{
			metrics:  m.store.LoadWeeklyMetrics(time.Now()),
			mealPlan: m.store.LoadMealPlan(),
		}
	}
}

func (m metricsModel) update(msg tea.Msg) (metricsModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case metricsDataMsg:
		m.metrics = msg.metrics
		m.mealPlan = msg.mealPlan
		m.rebuildChart()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Right):
			if m.cursor < len(fitness.DayKeys)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return m.showForm()
		case msg.String() == "p":
			return m.cycleMealPlan()
		}
	}
	return m, nil
}

func (m metricsModel) cycleMealPlan() (metricsModel, tea.Cmd) {
	idx := -1
	for i, k := range fitness.MealPlanKeys {
		if k == m.mealPlan {
			idx = i
			break
		}
	}
	m.mealPlan = fitness.MealPlanKeys[(idx+1)%len(fitness.MealPlanKeys)]
	m.store.SaveMealPlan(m.mealPlan)
	return m, nil
}

func (m metricsModel) showForm() (metricsModel, tea.Cmd) {
	day := fitness.DayKeys[m.cursor]
	entry := m.metrics.Entries[day]

	*m.weight = ""
	if entry.Weight != nil {
		*m.weight = formatFloat(*entry.Weight)
	}
	*m.minutes = strconv.Itoa(entry.Minutes)
	*m.steps = strconv.Itoa(entry.Steps)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Kilo (kg, bos birakilabilir)").Value(m.weight),
			huh.NewInput().Title("Antrenman (dk)").Value(m.minutes),
			huh.NewInput().Title("Adim").Value(m.steps),
		).Title(fitness.DayName(day)),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m metricsModel) updateForm(msg tea.Msg) (metricsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		return m.saveDay()
	}

	return m, cmd
}

func (m metricsModel) saveDay() (metricsModel, tea.Cmd) {
	day := fitness.DayKeys[m.cursor]

	var weight *float64
	if v, err := parseFloat(*m.weight); err == nil {
		weight = &v
	}
	minutes, _ := strconv.Atoi(strings.TrimSpace(*m.minutes))
	steps, _ := strconv.Atoi(strings.TrimSpace(*m.steps))

	m.metrics = m.metrics.SetDay(day, weight, minutes, steps)
	m.store.SaveWeeklyMetrics(m.metrics)
	m.rebuildChart()
	return m, statusCmd(fitness.DayName(day) + " kaydedildi.")
}

func (m *metricsModel) rebuildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	m.chart = barchart.New(chartWidth, 10)

	var bars []barchart.BarData
	for _, day := range fitness.DayKeys {
		entry := m.metrics.Entries[day]
		values := []barchart.BarValue{{
			Name:  "adim",
			Value: float64(entry.Steps),
			Style: lipgloss.NewStyle().Foreground(colorPrimary),
		}}
		if entry.Steps == 0 {
			values[0].Style = lipgloss.NewStyle().Foreground(colorSubtle)
		}
		bars = append(bars, barchart.BarData{
			Label:  strings.ToUpper(day[:1]) + day[1:2],
			Values: values,
		})
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m metricsModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("Gun Kaydi")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View()),
		)
	}

	days := m.renderDayStrip(w)
	chart := panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Adimlar"),
		m.chart.View(),
	))
	summary := m.renderSummaryPanel(w)
	meals := m.renderMealPanel(w)
	hint := mutedStyle.Render("←/→: gun sec  enter: gun kaydi gir  p: beslenme plani degistir")

	return lipgloss.JoinVertical(lipgloss.Left, days, chart, summary, meals, hint)
}

func (m metricsModel) renderDayStrip(w int) string {
	var cells []string
	for i, day := range fitness.DayKeys {
		entry := m.metrics.Entries[day]
		label := fitness.DayName(day)
		detail := fmt.Sprintf("%d dk | %d adim", entry.Minutes, entry.Steps)
		if entry.Weight != nil {
			detail = fmt.Sprintf("%.1f kg | %s", *entry.Weight, detail)
		}
		cell := label + "  " + mutedStyle.Render(detail)
		if i == m.cursor {
			cell = selectedItemStyle.Render("> " + cell)
		} else {
			cell = normalItemStyle.Render("  " + cell)
		}
		cells = append(cells, cell)
	}

	header := titleStyle.Render("Haftalik Olcumler  " + mutedStyle.Render("(hafta: "+m.metrics.WeekStart+")"))
	rows := append([]string{header}, cells...)
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m metricsModel) renderSummaryPanel(w int) string {
	sum := fitness.Summarize(m.metrics)

	var rows []string
	rows = append(rows, titleStyle.Render("Haftalik Ozet"))
	if sum.WeighedDays > 0 {
		rows = append(rows, fmt.Sprintf("Ortalama kilo: %.1f kg (%d gun tartildi)", sum.AvgWeight, sum.WeighedDays))
	} else {
		rows = append(rows, mutedStyle.Render("Bu hafta kilo girilmedi."))
	}
	rows = append(rows, fmt.Sprintf("Toplam antrenman: %d dk | Toplam adim: %d", sum.TotalMinutes, sum.TotalSteps))
	if sum.BestDay != "" {
		rows = append(rows, accentStyle.Render("En hareketli gun: "+fitness.DayName(sum.BestDay)))
	}
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m metricsModel) renderMealPanel(w int) string {
	var rows []string
	rows = append(rows, titleStyle.Render("Beslenme Plani"))
	if m.mealPlan == "" {
		rows = append(rows, mutedStyle.Render("Plan secilmedi. p ile plan sec."))
	} else {
		rows = append(rows, highlightStyle.Render(fitness.MealPlanTexts[m.mealPlan]))
	}
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
