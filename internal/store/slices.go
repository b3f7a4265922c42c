package store

import (
	"encoding/json"
	"time"

	"github.com/BerkeKaanDinler/fitness-web/internal/fitness"
)

// ReadSlice returns the raw document for a key. Any failure (missing
// row, closed database, scan error) reads as absent.
func (s *Store) ReadSlice(key string) ([]byte, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM slices WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return nil, false
	}
	return []byte(value), true
}

// WriteSlice upserts the raw document for a key. Write failures are
// swallowed; the caller keeps its in-memory copy either way.
func (s *Store) WriteSlice(key string, value []byte) {
	now := time.Now().UTC().Format(time.RFC3339)
	_, _ = s.db.Exec(
		`INSERT INTO slices (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), now,
	)
}

// RemoveSlice deletes a document. Failures are swallowed.
func (s *Store) RemoveSlice(key string) {
	_, _ = s.db.Exec(`DELETE FROM slices WHERE key = ?`, key)
}

// GetJSON decodes the document at key into v. Malformed content reads
// as absent, never as an error.
func (s *Store) GetJSON(key string, v any) bool {
	raw, ok := s.ReadSlice(key)
	if !ok {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

// PutJSON encodes v and writes it at key, best-effort.
func (s *Store) PutJSON(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.WriteSlice(key, data)
}

// Typed slice accessors. Loads run the slice normalizer so callers
// always get a well-formed value.

func (s *Store) LoadProfile() fitness.Profile {
	raw, _ := s.ReadSlice(KeyProfile)
	return fitness.NormalizeProfile(raw)
}

func (s *Store) SaveProfile(p fitness.Profile) {
	s.PutJSON(KeyProfile, p)
}

func (s *Store) LoadTracker() fitness.Tracker {
	raw, _ := s.ReadSlice(KeyTracker)
	return fitness.NormalizeTracker(raw)
}

func (s *Store) SaveTracker(t fitness.Tracker) {
	s.PutJSON(KeyTracker, t)
}

func (s *Store) LoadFavorites() fitness.Favorites {
	raw, _ := s.ReadSlice(KeyFavorites)
	return fitness.NormalizeFavorites(raw)
}

func (s *Store) SaveFavorites(f fitness.Favorites) {
	s.PutJSON(KeyFavorites, f)
}

func (s *Store) LoadSessionPlan() *fitness.SessionPlan {
	raw, _ := s.ReadSlice(KeySessionPlan)
	return fitness.NormalizeSessionPlan(raw)
}

func (s *Store) SaveSessionPlan(p *fitness.SessionPlan) {
	if p == nil || len(p.Steps) == 0 {
		return
	}
	s.PutJSON(KeySessionPlan, p)
}

func (s *Store) LoadCustomPrograms() []fitness.CustomProgram {
	raw, _ := s.ReadSlice(KeyCustomPrograms)
	return fitness.NormalizeCustomPrograms(raw)
}

func (s *Store) SaveCustomPrograms(programs []fitness.CustomProgram) {
	s.PutJSON(KeyCustomPrograms, programs)
}

func (s *Store) LoadWeeklyMetrics(now time.Time) fitness.WeeklyMetrics {
	raw, _ := s.ReadSlice(KeyWeeklyMetrics)
	return fitness.NormalizeWeeklyMetrics(raw, now)
}

func (s *Store) SaveWeeklyMetrics(m fitness.WeeklyMetrics) {
	s.PutJSON(KeyWeeklyMetrics, m)
}

func (s *Store) LoadMealPlan() string {
	raw, _ := s.ReadSlice(KeyMealPlan)
	return fitness.NormalizeMealPlan(raw)
}

func (s *Store) SaveMealPlan(key string) {
	if _, ok := fitness.MealPlanTexts[key]; !ok {
		return
	}
	s.PutJSON(KeyMealPlan, key)
}
