package fitness

import (
	"math"
	"strings"
	"testing"
	"time"
)

func baseProfile() Profile {
	p := DefaultProfile()
	p.Age = 25
	p.Weight = 80
	p.Height = 180
	p.Activity = 1.55
	p.Gender = "male"
	p.Goal = "maintain"
	return p
}

// ============================================================
// Nutrition calculator
// ============================================================

func TestCalculateNutritionMaintain(t *testing.T) {
	res, err := CalculateNutrition(baseProfile())
	if err != nil {
		t.Fatal(err)
	}

	// Mifflin-St Jeor: 10*80 + 6.25*180 - 5*25 + 5 = 1805
	if res.BMR != 1805 {
		t.Fatalf("BMR = %v, want 1805", res.BMR)
	}
	if res.Maintenance != 1805*1.55 {
		t.Fatalf("maintenance = %v", res.Maintenance)
	}
	if res.Target != res.Maintenance {
		t.Fatalf("maintain target should equal maintenance, got %v", res.Target)
	}
	if res.ProteinG != 152 { // 80 * 1.9
		t.Fatalf("protein = %d, want 152", res.ProteinG)
	}
	if res.FatG != 72 { // 80 * 0.9
		t.Fatalf("fat = %d, want 72", res.FatG)
	}
}

func TestCalculateNutritionGoalOffsets(t *testing.T) {
	p := baseProfile()

	p.Goal = "bulk"
	bulk, err := CalculateNutrition(p)
	if err != nil {
		t.Fatal(err)
	}
	if bulk.Target != bulk.Maintenance+300 {
		t.Fatalf("bulk target = %v, want maintenance+300", bulk.Target)
	}
	if bulk.ProteinG != 160 { // 80 * 2.0
		t.Fatalf("bulk protein = %d, want 160", bulk.ProteinG)
	}

	p.Goal = "cut"
	cut, err := CalculateNutrition(p)
	if err != nil {
		t.Fatal(err)
	}
	if cut.Target != cut.Maintenance-400 {
		t.Fatalf("cut target = %v, want maintenance-400", cut.Target)
	}
	if cut.ProteinG != 176 { // 80 * 2.2
		t.Fatalf("cut protein = %d, want 176", cut.ProteinG)
	}
	if cut.FatG != 64 { // 80 * 0.8
		t.Fatalf("cut fat = %d, want 64", cut.FatG)
	}
}

func TestCalculateNutritionFemale(t *testing.T) {
	p := baseProfile()
	p.Gender = "female"
	res, err := CalculateNutrition(p)
	if err != nil {
		t.Fatal(err)
	}
	if res.BMR != 10*80+6.25*180-5*25-161 {
		t.Fatalf("female BMR = %v", res.BMR)
	}
}

func TestCalculateNutritionRejectsNonFinite(t *testing.T) {
	p := baseProfile()
	p.Weight = math.NaN()
	if _, err := CalculateNutrition(p); err == nil {
		t.Fatal("expected error for NaN weight")
	}
}

func TestCalculateNutritionCarbsFloor(t *testing.T) {
	p := baseProfile()
	p.Weight = 200
	p.Height = 140
	p.Age = 80
	p.Activity = 1.2
	p.Goal = "cut"
	res, err := CalculateNutrition(p)
	if err != nil {
		t.Fatal(err)
	}
	if res.CarbsG < 0 {
		t.Fatalf("carbs went negative: %d", res.CarbsG)
	}
}

// ============================================================
// One-rep max
// ============================================================

func TestCalculateOneRepMax(t *testing.T) {
	res, err := CalculateOneRepMax(60, 6)
	if err != nil {
		t.Fatal(err)
	}
	if res.OneRM != 72 { // 60 * (1 + 6/30)
		t.Fatalf("1RM = %v, want 72", res.OneRM)
	}
	if res.ClampedReps != 6 {
		t.Fatalf("clamped reps = %d", res.ClampedReps)
	}
	if len(res.Table) != 6 {
		t.Fatalf("table rows = %d, want 6", len(res.Table))
	}
	if res.Table[0].Percent != 95 || res.Table[0].Load != 72*0.95 {
		t.Fatalf("first table row = %+v", res.Table[0])
	}
}

func TestCalculateOneRepMaxClampsHighReps(t *testing.T) {
	res, err := CalculateOneRepMax(100, 20)
	if err != nil {
		t.Fatal(err)
	}
	if res.ClampedReps != 15 {
		t.Fatalf("clamped reps = %d, want 15", res.ClampedReps)
	}
	if res.OneRM != 150 { // 100 * (1 + 15/30)
		t.Fatalf("1RM = %v, want 150", res.OneRM)
	}
}

func TestCalculateOneRepMaxRejectsBadReps(t *testing.T) {
	if _, err := CalculateOneRepMax(100, 0); err == nil {
		t.Fatal("expected error for zero reps")
	}
	if _, err := CalculateOneRepMax(math.Inf(1), 5); err == nil {
		t.Fatal("expected error for infinite weight")
	}
}

// ============================================================
// Water intake
// ============================================================

func TestCalculateWaterIntake(t *testing.T) {
	litres, err := CalculateWaterIntake(80, 60)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(litres-3.5) > 1e-9 { // 80*0.035 + 0.7
		t.Fatalf("water = %v, want 3.5", litres)
	}
}

func TestCalculateWaterIntakeNoTraining(t *testing.T) {
	litres, err := CalculateWaterIntake(80, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(litres-2.8) > 1e-9 {
		t.Fatalf("water = %v, want 2.8", litres)
	}
}

// ============================================================
// Profile normalization
// ============================================================

func TestNormalizeProfileEmpty(t *testing.T) {
	p := NormalizeProfile(nil)
	if p != DefaultProfile() {
		t.Fatalf("empty input should yield defaults, got %+v", p)
	}
}

func TestNormalizeProfileMalformed(t *testing.T) {
	p := NormalizeProfile([]byte("{not json"))
	if p != DefaultProfile() {
		t.Fatalf("malformed input should yield defaults, got %+v", p)
	}
}

func TestNormalizeProfilePartial(t *testing.T) {
	p := NormalizeProfile([]byte(`{"weight": 95.5, "goal": "cut"}`))
	if p.Weight != 95.5 {
		t.Fatalf("weight = %v", p.Weight)
	}
	if p.Goal != "cut" {
		t.Fatalf("goal = %q", p.Goal)
	}
	def := DefaultProfile()
	if p.Age != def.Age || p.Height != def.Height {
		t.Fatal("untouched fields should keep defaults")
	}
}

func TestNormalizeProfileRejectsBadValues(t *testing.T) {
	p := NormalizeProfile([]byte(`{"weight": -10, "gender": "robot", "goal": "superbulk", "restSeconds": 9999}`))
	def := DefaultProfile()
	if p.Weight != def.Weight {
		t.Fatalf("negative weight should be ignored, got %v", p.Weight)
	}
	if p.Gender != def.Gender {
		t.Fatalf("unknown gender should be ignored, got %q", p.Gender)
	}
	if p.Goal != def.Goal {
		t.Fatalf("unknown goal should be ignored, got %q", p.Goal)
	}
	if p.RestSeconds != 300 {
		t.Fatalf("rest seconds should clamp to 300, got %d", p.RestSeconds)
	}
}

func TestClampRestSeconds(t *testing.T) {
	if got := ClampRestSeconds(5); got != 15 {
		t.Fatalf("clamp low = %d", got)
	}
	if got := ClampRestSeconds(500); got != 300 {
		t.Fatalf("clamp high = %d", got)
	}
	if got := ClampRestSeconds(90); got != 90 {
		t.Fatalf("clamp passthrough = %d", got)
	}
}

// ============================================================
// Days and weeks
// ============================================================

func TestDayKeyFor(t *testing.T) {
	// 2024-01-01 was a Monday.
	mon := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	if got := DayKeyFor(mon); got != "pzt" {
		t.Fatalf("monday key = %q", got)
	}
	sun := mon.AddDate(0, 0, 6)
	if got := DayKeyFor(sun); got != "pazar" {
		t.Fatalf("sunday key = %q", got)
	}
}

func TestWeekStart(t *testing.T) {
	thu := time.Date(2024, 1, 4, 18, 30, 0, 0, time.UTC)
	ws := WeekStart(thu)
	if ws.Weekday() != time.Monday {
		t.Fatalf("week start weekday = %v", ws.Weekday())
	}
	if ws.Format("2006-01-02") != "2024-01-01" {
		t.Fatalf("week start = %v", ws)
	}
	if ws.Hour() != 0 || ws.Minute() != 0 {
		t.Fatal("week start should be midnight")
	}

	// A Sunday still belongs to the week that started the previous Monday.
	sun := time.Date(2024, 1, 7, 3, 0, 0, 0, time.UTC)
	if WeekStart(sun).Format("2006-01-02") != "2024-01-01" {
		t.Fatalf("sunday week start = %v", WeekStart(sun))
	}
}

// ============================================================
// Tracker
// ============================================================

func TestNormalizeTrackerDropsUnknownKeys(t *testing.T) {
	tr := NormalizeTracker([]byte(`{"pzt": true, "bogus": true}`))
	if !tr["pzt"] {
		t.Fatal("pzt should survive")
	}
	if _, ok := tr["bogus"]; ok {
		t.Fatal("unknown key should be dropped")
	}
	if len(tr) != len(Checkpoints) {
		t.Fatalf("tracker size = %d", len(tr))
	}
}

func TestTrackerToggleAndProgress(t *testing.T) {
	tr := DefaultTracker()
	tr = tr.Toggle("car")
	done, total := tr.Progress()
	if done != 1 || total != len(Checkpoints) {
		t.Fatalf("progress = %d/%d", done, total)
	}
	tr = tr.Reset()
	done, _ = tr.Progress()
	if done != 0 {
		t.Fatalf("after reset done = %d", done)
	}
}

// ============================================================
// Favorites
// ============================================================

func TestNormalizeFavorites(t *testing.T) {
	f := NormalizeFavorites([]byte(`["bench-press", 42, "bench-press", "squat", null]`))
	if len(f) != 2 {
		t.Fatalf("favorites = %v", f)
	}
	if !f.Has("bench-press") || !f.Has("squat") {
		t.Fatalf("favorites = %v", f)
	}
}

func TestFavoritesToggle(t *testing.T) {
	var f Favorites
	f = f.Toggle("squat")
	if !f.Has("squat") {
		t.Fatal("toggle should add")
	}
	f = f.Toggle("squat")
	if f.Has("squat") {
		t.Fatal("toggle should remove")
	}
}

// ============================================================
// Exercise library
// ============================================================

func TestFilterExercises(t *testing.T) {
	all := FilterExercises(ExerciseFilter{})
	if len(all) != len(Exercises) {
		t.Fatalf("unfiltered = %d", len(all))
	}

	chest := FilterExercises(ExerciseFilter{Muscle: "gogus"})
	for _, ex := range chest {
		if ex.Muscle != "gogus" {
			t.Fatalf("muscle filter leaked %q", ex.ID)
		}
	}
	if len(chest) == 0 {
		t.Fatal("chest filter should match")
	}

	favs := FilterExercises(ExerciseFilter{
		FavoritesOnly: true,
		Favorites:     Favorites{"back-squat"},
	})
	if len(favs) != 1 || favs[0].ID != "back-squat" {
		t.Fatalf("favorites filter = %v", favs)
	}
}

func TestFilterExercisesQuery(t *testing.T) {
	res := FilterExercises(ExerciseFilter{Query: "BENCH"})
	found := false
	for _, ex := range res {
		if ex.ID == "bench-press" {
			found = true
		}
	}
	if !found {
		t.Fatal("query should match case-insensitively")
	}
}

// ============================================================
// Session plans
// ============================================================

func TestClampSessionDuration(t *testing.T) {
	if got := ClampSessionDuration(10); got != 30 {
		t.Fatalf("clamp low = %d", got)
	}
	if got := ClampSessionDuration(90); got != 60 {
		t.Fatalf("clamp high = %d", got)
	}
}

func TestSessionMoveCount(t *testing.T) {
	if got := SessionMoveCount(30); got != 3 {
		t.Fatalf("30 min moves = %d", got)
	}
	if got := SessionMoveCount(45); got != 4 {
		t.Fatalf("45 min moves = %d", got)
	}
	if got := SessionMoveCount(60); got != 5 {
		t.Fatalf("60 min moves = %d", got)
	}
}

func TestBuildSessionPlan(t *testing.T) {
	plan := BuildSessionPlan("gogus", 10)
	if plan.Duration != 30 {
		t.Fatalf("duration = %d, want 30", plan.Duration)
	}
	// warmup + 3 chest movements + cooldown
	if len(plan.Steps) != 5 {
		t.Fatalf("steps = %d, want 5", len(plan.Steps))
	}
	if !strings.Contains(plan.Steps[0].Text, "isinma") {
		t.Fatalf("first step = %q", plan.Steps[0].Text)
	}
	if !strings.Contains(plan.Steps[len(plan.Steps)-1].Text, "soguma") {
		t.Fatalf("last step = %q", plan.Steps[len(plan.Steps)-1].Text)
	}
	for _, step := range plan.Steps {
		if step.Done {
			t.Fatal("new plan steps should start unchecked")
		}
	}
}

func TestBuildSessionPlanLongSets(t *testing.T) {
	plan := BuildSessionPlan("bacak", 90)
	if plan.Duration != 60 {
		t.Fatalf("duration = %d, want clamp to 60", plan.Duration)
	}
	// Main sets get heavier programming on long sessions.
	if !strings.Contains(plan.Steps[1].Text, "4 set x 8-10") {
		t.Fatalf("main set = %q", plan.Steps[1].Text)
	}
}

func TestNormalizeSessionPlan(t *testing.T) {
	raw := []byte(`{"muscle":"sirt","duration":45,"steps":[{"id":"a","text":"Row","done":true},{"text":"Pulldown"}]}`)
	plan := NormalizeSessionPlan(raw)
	if plan == nil {
		t.Fatal("plan should parse")
	}
	if plan.Muscle != "sirt" || plan.Duration != 45 {
		t.Fatalf("plan = %+v", plan)
	}
	if len(plan.Steps) != 2 {
		t.Fatalf("steps = %d", len(plan.Steps))
	}
	if !plan.Steps[0].Done || plan.Steps[0].ID != "a" {
		t.Fatalf("first step = %+v", plan.Steps[0])
	}
	if plan.Steps[1].ID != "saved-step-1" {
		t.Fatalf("missing id should be synthesized, got %q", plan.Steps[1].ID)
	}
}

func TestNormalizeSessionPlanRejectsEmpty(t *testing.T) {
	if NormalizeSessionPlan(nil) != nil {
		t.Fatal("nil input should yield nil")
	}
	if NormalizeSessionPlan([]byte(`{"muscle":"gogus","steps":[]}`)) != nil {
		t.Fatal("stepless plan should yield nil")
	}
	if NormalizeSessionPlan([]byte(`garbage`)) != nil {
		t.Fatal("malformed plan should yield nil")
	}
}

func TestSessionPlanToggleStep(t *testing.T) {
	plan := BuildSessionPlan("core", 30)
	id := plan.Steps[0].ID
	plan.ToggleStep(id)
	if !plan.Steps[0].Done {
		t.Fatal("toggle should mark done")
	}
	plan.ToggleStep("no-such-step")
	done, total := plan.Progress()
	if done != 1 || total != len(plan.Steps) {
		t.Fatalf("progress = %d/%d", done, total)
	}
}

// ============================================================
// Programs and recommendations
// ============================================================

func TestSlugify(t *testing.T) {
	if got := Slugify("  Full Body 3x  "); got != "full-body-3x" {
		t.Fatalf("slug = %q", got)
	}
	if got := Slugify("Guc & Kuvvet!!"); got != "guc-kuvvet" {
		t.Fatalf("slug = %q", got)
	}
	if got := Slugify(""); got != "" {
		t.Fatalf("empty slug = %q", got)
	}
}

func TestNewCustomProgram(t *testing.T) {
	p, err := NewCustomProgram("Ev Programi", "3 Gun", "yag", "Evde ekipmansiz.", "", []string{"Gun 1", "Gun 2"}, "berke@bkdfitness.com")
	if err != nil {
		t.Fatal(err)
	}
	if p.Key != "ozel-ev-programi" {
		t.Fatalf("key = %q", p.Key)
	}
	if p.ID == "" {
		t.Fatal("id should be generated")
	}
	if p.CreatedBy != "berke@bkdfitness.com" {
		t.Fatalf("createdBy = %q", p.CreatedBy)
	}
}

func TestNewCustomProgramValidation(t *testing.T) {
	if _, err := NewCustomProgram("", "", "kas", "desc", "", []string{"g1"}, ""); err == nil {
		t.Fatal("empty title should fail")
	}
	if _, err := NewCustomProgram("T", "", "kas", "desc", "", nil, ""); err == nil {
		t.Fatal("no days should fail")
	}
	if _, err := NewCustomProgram("T", "", "cardio", "desc", "", []string{"g1"}, ""); err == nil {
		t.Fatal("unknown goal should fail")
	}
}

func TestNormalizeCustomProgramsDropsInvalid(t *testing.T) {
	raw := []byte(`[
		{"title":"Valid","desc":"ok","goal":"guc","days":["Gun 1"]},
		{"title":"","desc":"ok","days":["Gun 1"]},
		{"title":"No Days","desc":"ok","days":[]},
		{"title":"Bad Goal","desc":"ok","goal":"cardio","days":["Gun 1"]}
	]`)
	progs := NormalizeCustomPrograms(raw)
	if len(progs) != 2 {
		t.Fatalf("programs = %d, want 2", len(progs))
	}
	if progs[0].Goal != "guc" {
		t.Fatalf("goal = %q", progs[0].Goal)
	}
	// Invalid goals fall back instead of dropping the program.
	if progs[1].Goal != "kas" {
		t.Fatalf("fallback goal = %q", progs[1].Goal)
	}
}

func TestRecommendBuiltin(t *testing.T) {
	reco := Recommend("kas", nil)
	if reco == nil {
		t.Fatal("kas should resolve to a built-in")
	}
	if reco.Key != "titan" || reco.Custom {
		t.Fatalf("reco = %+v", reco)
	}
}

func TestRecommendPrefersCustom(t *testing.T) {
	newest, _ := NewCustomProgram("Yeni", "", "kas", "d", "", []string{"g"}, "")
	older, _ := NewCustomProgram("Eski", "", "kas", "d", "", []string{"g"}, "")
	other, _ := NewCustomProgram("Yag", "", "yag", "d", "", []string{"g"}, "")

	// Customs are stored newest-first.
	reco := Recommend("kas", []CustomProgram{*newest, *older, *other})
	if reco == nil || !reco.Custom {
		t.Fatalf("reco = %+v", reco)
	}
	if reco.Title != "Yeni" {
		t.Fatalf("newest custom should win, got %q", reco.Title)
	}
}

func TestRecommendIgnoresDroppedCustoms(t *testing.T) {
	// A custom with no days never survives normalization, so the
	// resolver falls back to the built-in for that goal.
	raw := []byte(`[{"title":"Bozuk","desc":"ok","goal":"guc","days":[]}]`)
	reco := Recommend("guc", NormalizeCustomPrograms(raw))
	if reco == nil || reco.Custom {
		t.Fatalf("reco = %+v", reco)
	}
	if reco.Key != "alpha" {
		t.Fatalf("fallback key = %q", reco.Key)
	}
}

func TestRecommendUnknownGoal(t *testing.T) {
	if reco := Recommend("cardio", nil); reco != nil {
		t.Fatalf("unknown goal should yield nil, got %+v", reco)
	}
}

// ============================================================
// Weekly metrics
// ============================================================

func TestEmptyWeeklyMetrics(t *testing.T) {
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)
	m := EmptyWeeklyMetrics(now)
	if m.WeekStart != "2024-01-01" {
		t.Fatalf("week start = %q", m.WeekStart)
	}
	if len(m.Entries) != len(DayKeys) {
		t.Fatalf("entries = %d", len(m.Entries))
	}
}

func TestNormalizeWeeklyMetricsResetsStaleWeek(t *testing.T) {
	now := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC) // week of Jan 8
	raw := []byte(`{"weekStart":"2024-01-01","entries":{"pzt":{"steps":9000}}}`)
	m := NormalizeWeeklyMetrics(raw, now)
	if m.WeekStart != "2024-01-08" {
		t.Fatalf("week start = %q", m.WeekStart)
	}
	if m.Entries["pzt"].Steps != 0 {
		t.Fatal("stale week data should be dropped")
	}
}

func TestNormalizeWeeklyMetricsCurrentWeek(t *testing.T) {
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)
	raw := []byte(`{"weekStart":"2024-01-01","entries":{"pzt":{"weight":81.5,"minutes":50,"steps":9000},"sal":{"minutes":-5}}}`)
	m := NormalizeWeeklyMetrics(raw, now)
	if m.Entries["pzt"].Weight == nil || *m.Entries["pzt"].Weight != 81.5 {
		t.Fatalf("pzt weight = %v", m.Entries["pzt"].Weight)
	}
	if m.Entries["pzt"].Steps != 9000 {
		t.Fatalf("pzt steps = %d", m.Entries["pzt"].Steps)
	}
	if m.Entries["sal"].Minutes != 0 {
		t.Fatal("negative minutes should clamp to zero")
	}
	if len(m.Entries) != len(DayKeys) {
		t.Fatalf("entries = %d", len(m.Entries))
	}
}

func TestSetDay(t *testing.T) {
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)
	m := EmptyWeeklyMetrics(now)

	w := 82.0
	m = m.SetDay("cum", &w, 45, 8000)
	if m.Entries["cum"].Weight == nil || *m.Entries["cum"].Weight != 82 {
		t.Fatalf("cum = %+v", m.Entries["cum"])
	}

	bad := -5.0
	m = m.SetDay("cum", &bad, -10, -20)
	e := m.Entries["cum"]
	if e.Weight != nil || e.Minutes != 0 || e.Steps != 0 {
		t.Fatalf("bad values should clamp, got %+v", e)
	}

	m = m.SetDay("notaday", &w, 1, 1)
	if _, ok := m.Entries["notaday"]; ok {
		t.Fatal("unknown day should be ignored")
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)
	m := EmptyWeeklyMetrics(now)
	w1, w2 := 80.0, 82.0
	m = m.SetDay("pzt", &w1, 60, 10000)
	m = m.SetDay("car", &w2, 30, 4000)

	s := Summarize(m)
	if s.AvgWeight != 81 {
		t.Fatalf("avg weight = %v", s.AvgWeight)
	}
	if s.WeighedDays != 2 {
		t.Fatalf("weighed days = %d", s.WeighedDays)
	}
	if s.TotalMinutes != 90 || s.TotalSteps != 14000 {
		t.Fatalf("totals = %d min / %d steps", s.TotalMinutes, s.TotalSteps)
	}
	if s.BestDay != "pzt" {
		t.Fatalf("best day = %q", s.BestDay)
	}
}

func TestSummarizeEmptyWeek(t *testing.T) {
	m := EmptyWeeklyMetrics(time.Now())
	s := Summarize(m)
	if s.BestDay != "" {
		t.Fatalf("stepless week best day = %q", s.BestDay)
	}
	if s.AvgWeight != 0 {
		t.Fatalf("avg weight = %v", s.AvgWeight)
	}
}

// ============================================================
// Meal plans
// ============================================================

func TestNormalizeMealPlan(t *testing.T) {
	if got := NormalizeMealPlan([]byte(`"bulk"`)); got != "bulk" {
		t.Fatalf("quoted key = %q", got)
	}
	if got := NormalizeMealPlan([]byte(`cut`)); got != "cut" {
		t.Fatalf("bare key = %q", got)
	}
	if got := NormalizeMealPlan([]byte(`"keto"`)); got != "" {
		t.Fatalf("unknown key = %q", got)
	}
	if got := NormalizeMealPlan(nil); got != "" {
		t.Fatalf("empty = %q", got)
	}
}
