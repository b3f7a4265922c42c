// Package export moves the whole app state in and out as a single
// JSON snapshot, plus a CSV view of the weekly metrics.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/BerkeKaanDinler/fitness-web/internal/store"
)

// Snapshot is the exchange document. Every slice field is optional and
// is validated independently on import. Auth users and sessions never
// travel in snapshots.
type Snapshot struct {
	ExportedAt     string          `json:"exportedAt"`
	Profile        json.RawMessage `json:"profile,omitempty"`
	Tracker        json.RawMessage `json:"tracker,omitempty"`
	MealPlan       json.RawMessage `json:"mealPlan,omitempty"`
	Favorites      json.RawMessage `json:"favorites,omitempty"`
	SessionPlan    json.RawMessage `json:"sessionPlan,omitempty"`
	CustomPrograms json.RawMessage `json:"customPrograms,omitempty"`
	WeeklyMetrics  json.RawMessage `json:"weeklyMetrics,omitempty"`
}

// BuildSnapshot assembles a snapshot from the persisted documents
// directly, not from in-memory state, so the export reflects ground
// truth.
func BuildSnapshot(s *store.Store) Snapshot {
	snap := Snapshot{ExportedAt: time.Now().UTC().Format(time.RFC3339)}
	snap.Profile = rawSlice(s, store.KeyProfile)
	snap.Tracker = rawSlice(s, store.KeyTracker)
	snap.MealPlan = rawSlice(s, store.KeyMealPlan)
	snap.Favorites = rawSlice(s, store.KeyFavorites)
	snap.SessionPlan = rawSlice(s, store.KeySessionPlan)
	snap.CustomPrograms = rawSlice(s, store.KeyCustomPrograms)
	snap.WeeklyMetrics = rawSlice(s, store.KeyWeeklyMetrics)
	return snap
}

func rawSlice(s *store.Store, key string) json.RawMessage {
	raw, ok := s.ReadSlice(key)
	if !ok || !json.Valid(raw) {
		return nil
	}
	return json.RawMessage(raw)
}

// WriteFile marshals the snapshot to path with indentation.
func WriteFile(snap Snapshot, path string) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}
	return nil
}
