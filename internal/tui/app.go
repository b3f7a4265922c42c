package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/BerkeKaanDinler/fitness-web/internal/auth"
	"github.com/BerkeKaanDinler/fitness-web/internal/export"
	"github.com/BerkeKaanDinler/fitness-web/internal/store"
)

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	auth   *auth.Service
	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	importing  bool
	importForm *huhImportForm

	dashboard   dashboardModel
	calculators calculatorsModel
	library     libraryModel
	session     sessionModel
	metrics     metricsModel
	programs    programsModel
	account     accountModel

	help      help.Model
	status    string
	statusErr bool
}

func NewApp(s *store.Store) App {
	h := help.New()
	h.ShowAll = false

	svc := auth.NewService(s)

	return App{
		store:       s,
		auth:        svc,
		activeView:  viewDashboard,
		dashboard:   newDashboardModel(s),
		calculators: newCalculatorsModel(s),
		library:     newLibraryModel(s),
		session:     newSessionModel(s),
		metrics:     newMetricsModel(s),
		programs:    newProgramsModel(s, svc),
		account:     newAccountModel(svc),
		help:        h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.dashboard.Init(),
		a.session.refresh(),
		tickCmd(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.dashboard.setSize(a.width, contentHeight)
		a.calculators.setSize(a.width, contentHeight)
		a.library.setSize(a.width, contentHeight)
		a.session.setSize(a.width, contentHeight)
		a.metrics.setSize(a.width, contentHeight)
		a.programs.setSize(a.width, contentHeight)
		a.account.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}
		if a.importing {
			return a.updateImportForm(msg)
		}

		// If a child view is capturing input (e.g. form or search),
		// delegate first.
		if a.isInputActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Import):
			a.importing = true
			a.importForm = newImportForm()
			return a, a.importForm.init()
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewDashboard
			return a, a.dashboard.loadData()
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewCalculators
			return a, a.calculators.refresh()
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewLibrary
			return a, a.library.refresh()
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewSession
			return a, a.session.refresh()
		case key.Matches(msg, keys.Tab5):
			a.activeView = viewMetrics
			return a, a.metrics.refresh()
		case key.Matches(msg, keys.Tab6):
			a.activeView = viewPrograms
			return a, a.programs.refresh()
		case key.Matches(msg, keys.Tab7):
			a.activeView = viewAccount
			return a, a.account.refresh()
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % viewState(len(viewNames))
			return a, a.refreshCurrentView()
		}

	case tickMsg:
		cmds = append(cmds, tickCmd())
		// The rest timer keeps ticking even when another tab is open.
		var cmd tea.Cmd
		a.session, cmd = a.session.update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isError
		return a, nil

	case profileChangedMsg:
		// Goal and rest preferences feed several tabs.
		return a, tea.Batch(
			a.dashboard.loadData(),
			a.calculators.refresh(),
			a.session.refresh(),
			a.programs.refresh(),
		)

	case favoritesChangedMsg:
		return a, tea.Batch(
			a.dashboard.loadData(),
			a.library.refresh(),
		)

	case exportDoneMsg:
		a.status = "Disa aktarildi: " + msg.path
		a.statusErr = false
		a.exportPicking = false
		return a, nil

	case importDoneMsg:
		a.status = fmt.Sprintf("Iceri aktarildi: %d bolum (%d atlandi)",
			len(msg.result.Imported), len(msg.result.Skipped))
		a.statusErr = false
		return a, a.refreshAll()
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewCalculators:
		a.calculators, cmd = a.calculators.update(msg)
	case viewLibrary:
		a.library, cmd = a.library.update(msg)
	case viewSession:
		a.session, cmd = a.session.update(msg)
	case viewMetrics:
		a.metrics, cmd = a.metrics.update(msg)
	case viewPrograms:
		a.programs, cmd = a.programs.update(msg)
	case viewAccount:
		a.account, cmd = a.account.update(msg)
	}
	return a, cmd
}

func (a App) isInputActive() bool {
	switch a.activeView {
	case viewCalculators:
		return a.calculators.formActive
	case viewLibrary:
		return a.library.searching
	case viewSession:
		return a.session.formActive
	case viewMetrics:
		return a.metrics.formActive
	case viewPrograms:
		return a.programs.formActive
	case viewAccount:
		return a.account.formActive
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewDashboard:
		return a.dashboard.loadData()
	case viewCalculators:
		return a.calculators.refresh()
	case viewLibrary:
		return a.library.refresh()
	case viewSession:
		return a.session.refresh()
	case viewMetrics:
		return a.metrics.refresh()
	case viewPrograms:
		return a.programs.refresh()
	case viewAccount:
		return a.account.refresh()
	}
	return nil
}

func (a App) refreshAll() tea.Cmd {
	return tea.Batch(
		a.dashboard.loadData(),
		a.calculators.refresh(),
		a.library.refresh(),
		a.session.refresh(),
		a.metrics.refresh(),
		a.programs.refresh(),
		a.account.refresh(),
	)
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewDashboard:
		content = a.dashboard.view()
	case viewCalculators:
		content = a.calculators.view()
	case viewLibrary:
		content = a.library.view()
	case viewSession:
		content = a.session.view()
	case viewMetrics:
		content = a.metrics.view()
	case viewPrograms:
		content = a.programs.view()
	case viewAccount:
		content = a.account.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}
	if a.importing && a.importForm != nil {
		content = a.importForm.view(a.width - 4)
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("bkd fitness")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		if a.statusErr {
			status = errorStyle.Render(" " + a.status)
		} else {
			status = mutedStyle.Render(" " + a.status)
		}
	}

	// Rest countdown stays visible from any tab.
	timerInfo := ""
	if a.session.rest.running {
		timerInfo = successStyle.Render(" ● " + formatClock(a.session.rest.remaining))
	}

	left := footerStyle.Render(helpView)
	right := timerInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

// ==================== Export picker ====================

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Disa Aktarma")
	formats := []string{"Tum veriler (JSON)", "Haftalik olcumler (CSV)"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: aktar  esc: vazgec"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	return func() tea.Msg {
		home, _ := os.UserHomeDir()

		var path string
		if format == 0 {
			path = filepath.Join(home, "bkd-fitness-data.json")
			snap := export.BuildSnapshot(a.store)
			if err := export.WriteFile(snap, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON hatasi: %v", err), isError: true}
			}
		} else {
			dateStr := time.Now().Format("2006-01-02")
			path = filepath.Join(home, fmt.Sprintf("bkd-olcumler-%s.csv", dateStr))
			metrics := a.store.LoadWeeklyMetrics(time.Now())
			if err := export.MetricsToCSV(metrics, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV hatasi: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}

// ==================== Import prompt ====================

// huhImportForm holds the snapshot path prompt.
type huhImportForm struct {
	form *huh.Form
	path *string
}

func newImportForm() *huhImportForm {
	p := ""
	f := &huhImportForm{path: &p}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Yedek dosyasinin yolu").Value(f.path),
		).Title("Iceri Aktarma"),
	).WithShowHelp(true).WithShowErrors(true)
	return f
}

func (f *huhImportForm) init() tea.Cmd { return f.form.Init() }

func (f *huhImportForm) view(w int) string {
	title := titleStyle.Render("Iceri Aktarma")
	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", f.form.View()),
	)
}

func (a App) updateImportForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		a.importing = false
		a.importForm = nil
		return a, nil
	}

	form, cmd := a.importForm.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.importForm.form = f
	}

	if a.importForm.form.State == huh.StateCompleted {
		path := strings.TrimSpace(*a.importForm.path)
		a.importing = false
		a.importForm = nil
		if path == "" {
			return a, nil
		}
		return a, a.doImport(path)
	}
	return a, cmd
}

func (a App) doImport(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Dosya okunamadi: %v", err), isError: true}
		}
		result, err := export.Import(a.store, data, time.Now())
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Iceri aktarma hatasi: %v", err), isError: true}
		}
		return importDoneMsg{result: result}
	}
}
