package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/BerkeKaanDinler/fitness-web/internal/fitness"
	"github.com/BerkeKaanDinler/fitness-web/internal/store"
)

// ImportResult reports which slices an import touched. Partial success
// is the designed behavior: invalid slices are skipped, not errors.
type ImportResult struct {
	Imported []string
	Skipped  []string
}

// Import merges an uploaded snapshot into the store. A document that
// does not parse at all aborts with a single error; otherwise each
// present slice is normalized and, when valid, overwrites the stored
// copy. Absent slices are left untouched.
func Import(s *store.Store, data []byte, now time.Time) (ImportResult, error) {
	var res ImportResult

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return res, fmt.Errorf("parse snapshot: %w", err)
	}

	if present(snap.Profile) {
		// The profile normalizer fully defaults, so presence is enough.
		s.SaveProfile(fitness.NormalizeProfile(snap.Profile))
		res.Imported = append(res.Imported, "profile")
	}

	if present(snap.Tracker) {
		var obj map[string]bool
		if json.Unmarshal(snap.Tracker, &obj) == nil {
			s.SaveTracker(fitness.NormalizeTracker(snap.Tracker))
			res.Imported = append(res.Imported, "tracker")
		} else {
			res.Skipped = append(res.Skipped, "tracker")
		}
	}

	if present(snap.MealPlan) {
		if key := fitness.NormalizeMealPlan(snap.MealPlan); key != "" {
			s.SaveMealPlan(key)
			res.Imported = append(res.Imported, "mealPlan")
		} else {
			res.Skipped = append(res.Skipped, "mealPlan")
		}
	}

	if present(snap.Favorites) {
		var arr []any
		if json.Unmarshal(snap.Favorites, &arr) == nil {
			s.SaveFavorites(fitness.NormalizeFavorites(snap.Favorites))
			res.Imported = append(res.Imported, "favorites")
		} else {
			res.Skipped = append(res.Skipped, "favorites")
		}
	}

	if present(snap.SessionPlan) {
		if plan := fitness.NormalizeSessionPlan(snap.SessionPlan); plan != nil {
			s.SaveSessionPlan(plan)
			res.Imported = append(res.Imported, "sessionPlan")
		} else {
			res.Skipped = append(res.Skipped, "sessionPlan")
		}
	}

	if present(snap.CustomPrograms) {
		var arr []json.RawMessage
		if json.Unmarshal(snap.CustomPrograms, &arr) == nil {
			// Bulk replace; individually invalid records drop silently.
			s.SaveCustomPrograms(fitness.NormalizeCustomPrograms(snap.CustomPrograms))
			res.Imported = append(res.Imported, "customPrograms")
		} else {
			res.Skipped = append(res.Skipped, "customPrograms")
		}
	}

	if present(snap.WeeklyMetrics) {
		var obj map[string]json.RawMessage
		if json.Unmarshal(snap.WeeklyMetrics, &obj) == nil {
			s.SaveWeeklyMetrics(fitness.NormalizeWeeklyMetrics(snap.WeeklyMetrics, now))
			res.Imported = append(res.Imported, "weeklyMetrics")
		} else {
			res.Skipped = append(res.Skipped, "weeklyMetrics")
		}
	}

	return res, nil
}

// present treats both absent fields and explicit nulls as "leave the
// stored slice alone".
func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
