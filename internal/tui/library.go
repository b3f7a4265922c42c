package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BerkeKaanDinler/fitness-web/internal/fitness"
	"github.com/BerkeKaanDinler/fitness-web/internal/store"
)

const searchDebounce = 110 * time.Millisecond

// libraryDebounceMsg carries the sequence number of the keystroke that
// scheduled it; stale ones are dropped so only the last keystroke in a
// burst triggers a refilter.
type libraryDebounceMsg struct {
	seq int
}

type libraryModel struct {
	store  *store.Store
	width  int
	height int

	search    textinput.Model
	searchSeq int
	searching bool

	muscleIdx    int // 0 = all
	equipmentIdx int // 0 = all
	favsOnly     bool

	favorites fitness.Favorites
	results   []fitness.Exercise
	cursor    int
}

func newLibraryModel(s *store.Store) libraryModel {
	ti := textinput.New()
	ti.Placeholder = "Hareket ara..."
	ti.CharLimit = 64
	return libraryModel{store: s, search: ti}
}

func (l *libraryModel) setSize(w, h int) {
	l.width = w
	l.height = h
}

type libraryDataMsg struct {
	favorites fitness.Favorites
}

func (l libraryModel) refresh() tea.Cmd {
	return func() tea.Msg {
		return libraryDataMsg{favorites: l.store.LoadFavorites()}
	}
}

func (l *libraryModel) filter() fitness.ExerciseFilter {
	f := fitness.ExerciseFilter{
		Query:         l.search.Value(),
		FavoritesOnly: l.favsOnly,
		Favorites:     l.favorites,
	}
	if l.muscleIdx > 0 {
		f.Muscle = fitness.MuscleKeys[l.muscleIdx-1]
	}
	if l.equipmentIdx > 0 {
		f.Equipment = fitness.EquipmentKeys[l.equipmentIdx-1]
	}
	return f
}

func (l *libraryModel) refilter() {
	l.results = fitness.FilterExercises(l.filter())
	if l.cursor >= len(l.results) {
		l.cursor = 0
	}
}

func (l libraryModel) update(msg tea.Msg) (libraryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case libraryDataMsg:
		l.favorites = msg.favorites
		l.refilter()
		return l, nil

	case libraryDebounceMsg:
		if msg.seq != l.searchSeq {
			return l, nil
		}
		l.refilter()
		return l, nil

	case tea.KeyMsg:
		if l.searching {
			return l.updateSearch(msg)
		}

		switch {
		case msg.String() == "/":
			l.searching = true
			l.search.Focus()
			return l, textinput.Blink

		case key.Matches(msg, keys.Up):
			if l.cursor > 0 {
				l.cursor--
			}
		case key.Matches(msg, keys.Down):
			if l.cursor < len(l.results)-1 {
				l.cursor++
			}
		case key.Matches(msg, keys.Left):
			l.muscleIdx = (l.muscleIdx + len(fitness.MuscleKeys)) % (len(fitness.MuscleKeys) + 1)
			l.refilter()
		case key.Matches(msg, keys.Right):
			l.muscleIdx = (l.muscleIdx + 1) % (len(fitness.MuscleKeys) + 1)
			l.refilter()
		case msg.String() == "e":
			l.equipmentIdx = (l.equipmentIdx + 1) % (len(fitness.EquipmentKeys) + 1)
			l.refilter()
		case key.Matches(msg, keys.Favorite):
			return l.toggleFavorite()
		case msg.String() == "o":
			l.favsOnly = !l.favsOnly
			l.refilter()
		}
	}
	return l, nil
}

func (l libraryModel) updateSearch(msg tea.KeyMsg) (libraryModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		l.searching = false
		l.search.Blur()
		l.refilter()
		return l, nil
	}

	var cmd tea.Cmd
	l.search, cmd = l.search.Update(msg)
	l.searchSeq++
	seq := l.searchSeq
	debounce := tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return libraryDebounceMsg{seq: seq}
	})
	return l, tea.Batch(cmd, debounce)
}

func (l libraryModel) toggleFavorite() (libraryModel, tea.Cmd) {
	if l.cursor >= len(l.results) {
		return l, nil
	}
	ex := l.results[l.cursor]
	l.favorites = l.favorites.Toggle(ex.ID)
	l.store.SaveFavorites(l.favorites)
	l.refilter()

	text := ex.Name + " favorilere eklendi."
	if !l.favorites.Has(ex.ID) {
		text = ex.Name + " favorilerden cikarildi."
	}
	return l, tea.Batch(
		statusCmd(text),
		func() tea.Msg { return favoritesChangedMsg{} },
	)
}

func (l libraryModel) view() string {
	w := l.width - 4

	header := l.renderFilterBar(w)
	list := l.renderList(w)
	hint := mutedStyle.Render("/: ara  ←/→: kas grubu  e: ekipman  o: sadece favoriler  f: favori")

	return lipgloss.JoinVertical(lipgloss.Left, header, list, hint)
}

func (l libraryModel) renderFilterBar(w int) string {
	muscle := "Tum kaslar"
	if l.muscleIdx > 0 {
		muscle = fitness.MuscleLabels[fitness.MuscleKeys[l.muscleIdx-1]]
	}
	equipment := "Tum ekipman"
	if l.equipmentIdx > 0 {
		equipment = fitness.EquipmentLabels[fitness.EquipmentKeys[l.equipmentIdx-1]]
	}

	parts := []string{
		accentStyle.Render(muscle),
		accentStyle.Render(equipment),
	}
	if l.favsOnly {
		parts = append(parts, warningStyle.Render("Sadece favoriler"))
	}

	var search string
	if l.searching {
		search = l.search.View()
	} else if q := l.search.Value(); q != "" {
		search = mutedStyle.Render("Arama: " + q)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Hareket Kutuphanesi"),
		strings.Join(parts, "  "),
		search,
	)
	return panelStyle.Width(w).Render(content)
}

func (l libraryModel) renderList(w int) string {
	if len(l.results) == 0 {
		return panelStyle.Width(w).Render(mutedStyle.Render("Filtreye uyan hareket yok."))
	}

	var rows []string
	for i, ex := range l.results {
		star := " "
		if l.favorites.Has(ex.ID) {
			star = warningStyle.Render("*")
		}
		line := fmt.Sprintf("%s %s  %s",
			star,
			ex.Name,
			mutedStyle.Render(fitness.MuscleLabels[ex.Muscle]+" | "+fitness.EquipmentLabels[ex.Equipment]+" | "+fitness.LevelLabels[ex.Level]),
		)
		if i == l.cursor {
			line = selectedItemStyle.Render("> " + line)
			rows = append(rows, line)
			rows = append(rows, mutedStyle.Render("    "+ex.Note))
			if ex.Video != "" {
				rows = append(rows, mutedStyle.Render("    Video: "+ex.Video))
			}
		} else {
			rows = append(rows, normalItemStyle.Render("  "+line))
		}
	}

	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
