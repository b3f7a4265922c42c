package fitness

import "encoding/json"

// Checkpoint is one row of the weekly habit checklist.
type Checkpoint struct {
	ID    string
	Label string
}

// Checkpoints is the canonical weekly checklist, one per day key.
// Persisted tracker keys outside this list are ignored on load.
var Checkpoints = []Checkpoint{
	{ID: "pzt", Label: "Pazartesi - ana guc antrenmani"},
	{ID: "sal", Label: "Sali - cekis + form calismasi"},
	{ID: "car", Label: "Carsamba - bacak + core"},
	{ID: "per", Label: "Persembe - aktif toparlanma"},
	{ID: "cum", Label: "Cuma - ust vucut hacim"},
	{ID: "cmt", Label: "Cumartesi - kondisyon"},
	{ID: "pazar", Label: "Pazar - mobility + yuruyus"},
}

// Tracker maps checkpoint id to completion state.
type Tracker map[string]bool

func DefaultTracker() Tracker {
	t := make(Tracker, len(Checkpoints))
	for _, c := range Checkpoints {
		t[c.ID] = false
	}
	return t
}

// NormalizeTracker keeps only the checkpoints the checklist defines;
// anything else in the document is dropped.
func NormalizeTracker(raw []byte) Tracker {
	t := DefaultTracker()
	if len(raw) == 0 {
		return t
	}

	var doc map[string]bool
	if err := json.Unmarshal(raw, &doc); err != nil {
		return t
	}
	for _, c := range Checkpoints {
		if v, ok := doc[c.ID]; ok {
			t[c.ID] = v
		}
	}
	return t
}

// Toggle flips one checkpoint and returns the updated tracker.
func (t Tracker) Toggle(id string) Tracker {
	if _, ok := t[id]; ok {
		t[id] = !t[id]
	}
	return t
}

// Reset clears every checkpoint to false.
func (t Tracker) Reset() Tracker {
	for k := range t {
		t[k] = false
	}
	return t
}

// Progress reports completed and total checkpoint counts.
func (t Tracker) Progress() (done, total int) {
	for _, c := range Checkpoints {
		total++
		if t[c.ID] {
			done++
		}
	}
	return done, total
}
