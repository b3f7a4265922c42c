package store

import (
	"testing"
	"time"

	"github.com/BerkeKaanDinler/fitness-web/internal/fitness"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	// Should have run migration v1
	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != currentVersion {
		t.Fatalf("expected user_version %d, got %d", currentVersion, version)
	}
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sub/fitness.db"
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen — should succeed and not re-migrate
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s2.Close()
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("empty path")
	}
}

// ============================================================
// Raw slices
// ============================================================

func TestSliceReadWriteRemove(t *testing.T) {
	s := newTestStore(t)

	if _, ok := s.ReadSlice(KeyProfile); ok {
		t.Fatal("fresh store should have no slices")
	}

	s.WriteSlice(KeyProfile, []byte(`{"age": 30}`))
	raw, ok := s.ReadSlice(KeyProfile)
	if !ok {
		t.Fatal("slice should exist after write")
	}
	if string(raw) != `{"age": 30}` {
		t.Fatalf("raw = %s", raw)
	}

	// Overwrite in place
	s.WriteSlice(KeyProfile, []byte(`{"age": 31}`))
	raw, _ = s.ReadSlice(KeyProfile)
	if string(raw) != `{"age": 31}` {
		t.Fatalf("after overwrite raw = %s", raw)
	}

	s.RemoveSlice(KeyProfile)
	if _, ok := s.ReadSlice(KeyProfile); ok {
		t.Fatal("slice should be gone after remove")
	}
}

func TestSlicesAreIndependent(t *testing.T) {
	s := newTestStore(t)
	s.WriteSlice(KeyProfile, []byte(`{"age": 30}`))
	s.WriteSlice(KeyFavorites, []byte(`["bench-press"]`))

	s.RemoveSlice(KeyProfile)
	if _, ok := s.ReadSlice(KeyFavorites); !ok {
		t.Fatal("removing one slice must not touch another")
	}
}

func TestGetJSONMalformed(t *testing.T) {
	s := newTestStore(t)
	s.WriteSlice(KeyFavorites, []byte(`{broken`))

	var v []string
	if s.GetJSON(KeyFavorites, &v) {
		t.Fatal("malformed document should read as absent")
	}
}

// ============================================================
// Typed loaders
// ============================================================

func TestLoadProfileDefaults(t *testing.T) {
	s := newTestStore(t)
	p := s.LoadProfile()
	if p != fitness.DefaultProfile() {
		t.Fatalf("fresh profile = %+v", p)
	}

	// Malformed persisted data also falls back to defaults.
	s.WriteSlice(KeyProfile, []byte(`]]]`))
	if s.LoadProfile() != fitness.DefaultProfile() {
		t.Fatal("malformed profile should yield defaults")
	}
}

func TestSaveLoadProfile(t *testing.T) {
	s := newTestStore(t)
	p := fitness.DefaultProfile()
	p.Weight = 92.5
	p.PlannerGoal = "guc"
	s.SaveProfile(p)

	got := s.LoadProfile()
	if got.Weight != 92.5 || got.PlannerGoal != "guc" {
		t.Fatalf("loaded profile = %+v", got)
	}
}

func TestSaveLoadTracker(t *testing.T) {
	s := newTestStore(t)
	tr := fitness.DefaultTracker().Toggle("cum")
	s.SaveTracker(tr)

	got := s.LoadTracker()
	if !got["cum"] {
		t.Fatal("cum should be marked")
	}
	done, _ := got.Progress()
	if done != 1 {
		t.Fatalf("done = %d", done)
	}
}

func TestSaveLoadFavorites(t *testing.T) {
	s := newTestStore(t)
	s.SaveFavorites(fitness.Favorites{"bench-press", "back-squat"})

	got := s.LoadFavorites()
	if len(got) != 2 || !got.Has("back-squat") {
		t.Fatalf("favorites = %v", got)
	}
}

func TestSaveLoadSessionPlan(t *testing.T) {
	s := newTestStore(t)
	if s.LoadSessionPlan() != nil {
		t.Fatal("fresh store should have no plan")
	}

	plan := fitness.BuildSessionPlan("gogus", 45)
	plan.ToggleStep(plan.Steps[0].ID)
	s.SaveSessionPlan(&plan)

	got := s.LoadSessionPlan()
	if got == nil {
		t.Fatal("plan should round-trip")
	}
	if got.Muscle != "gogus" || got.Duration != 45 {
		t.Fatalf("plan = %+v", got)
	}
	if !got.Steps[0].Done {
		t.Fatal("step state should survive")
	}

	// Saving nil is a no-op, not a delete.
	s.SaveSessionPlan(nil)
	if s.LoadSessionPlan() == nil {
		t.Fatal("nil save should not clear the stored plan")
	}
}

func TestSaveLoadCustomPrograms(t *testing.T) {
	s := newTestStore(t)
	p, err := fitness.NewCustomProgram("Ev Programi", "3 Gun", "yag", "Evde.", "", []string{"Gun 1"}, "x@y.com")
	if err != nil {
		t.Fatal(err)
	}
	s.SaveCustomPrograms([]fitness.CustomProgram{*p})

	got := s.LoadCustomPrograms()
	if len(got) != 1 || got[0].Key != "ozel-ev-programi" {
		t.Fatalf("programs = %+v", got)
	}
}

func TestLoadWeeklyMetricsRollsOver(t *testing.T) {
	s := newTestStore(t)

	week1 := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	m := fitness.EmptyWeeklyMetrics(week1)
	m = m.SetDay("pzt", nil, 30, 5000)
	s.SaveWeeklyMetrics(m)

	same := s.LoadWeeklyMetrics(week1)
	if same.Entries["pzt"].Steps != 5000 {
		t.Fatal("same week should load stored data")
	}

	next := s.LoadWeeklyMetrics(week1.AddDate(0, 0, 7))
	if next.Entries["pzt"].Steps != 0 {
		t.Fatal("new week should reset entries")
	}
	if next.WeekStart != "2024-01-08" {
		t.Fatalf("week start = %q", next.WeekStart)
	}
}

func TestSaveLoadMealPlan(t *testing.T) {
	s := newTestStore(t)
	if s.LoadMealPlan() != "" {
		t.Fatal("fresh store should have no meal plan")
	}

	s.SaveMealPlan("performance")
	if got := s.LoadMealPlan(); got != "performance" {
		t.Fatalf("meal plan = %q", got)
	}

	// Unknown keys are rejected at save time.
	s.SaveMealPlan("keto")
	if got := s.LoadMealPlan(); got != "performance" {
		t.Fatalf("unknown key should not persist, got %q", got)
	}
}
