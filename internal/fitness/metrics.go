package fitness

import (
	"encoding/json"
	"time"
)

// DayMetrics is one day's measurements. Weight is nil when unset;
// minutes and steps default to zero activity.
type DayMetrics struct {
	Weight  *float64 `json:"weight"`
	Minutes int      `json:"minutes"`
	Steps   int      `json:"steps"`
}

// WeeklyMetrics holds the current week's measurements keyed by the
// canonical day keys. WeekStart pins the structure to its Monday; a
// week rollover resets everything.
type WeeklyMetrics struct {
	WeekStart string                `json:"weekStart"`
	Entries   map[string]DayMetrics `json:"entries"`
}

// EmptyWeeklyMetrics creates a blank week anchored at now's Monday.
func EmptyWeeklyMetrics(now time.Time) WeeklyMetrics {
	entries := make(map[string]DayMetrics, len(DayKeys))
	for _, k := range DayKeys {
		entries[k] = DayMetrics{}
	}
	return WeeklyMetrics{
		WeekStart: WeekStart(now).Format("2006-01-02"),
		Entries:   entries,
	}
}

type dayMetricsDoc struct {
	Weight  *float64 `json:"weight"`
	Minutes *float64 `json:"minutes"`
	Steps   *float64 `json:"steps"`
}

type weeklyMetricsDoc struct {
	WeekStart *string                  `json:"weekStart"`
	Entries   map[string]dayMetricsDoc `json:"entries"`
}

// NormalizeWeeklyMetrics validates a raw document against the current
// week. A stored week start that is not now's Monday means the week
// rolled over and the whole structure resets. Entries always come back
// with exactly the seven canonical day keys.
func NormalizeWeeklyMetrics(raw []byte, now time.Time) WeeklyMetrics {
	m := EmptyWeeklyMetrics(now)
	if len(raw) == 0 {
		return m
	}

	var doc weeklyMetricsDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return m
	}
	if doc.WeekStart == nil || *doc.WeekStart != m.WeekStart {
		return m
	}

	for _, k := range DayKeys {
		d, ok := doc.Entries[k]
		if !ok {
			continue
		}
		entry := DayMetrics{}
		if w := numValue(d.Weight); w != nil && *w > 0 {
			entry.Weight = w
		}
		if v := numValue(d.Minutes); v != nil && *v > 0 {
			entry.Minutes = int(*v)
		}
		if v := numValue(d.Steps); v != nil && *v > 0 {
			entry.Steps = int(*v)
		}
		m.Entries[k] = entry
	}
	return m
}

// SetDay overwrites a single day entry, clamping negatives to zero.
func (m WeeklyMetrics) SetDay(key string, weight *float64, minutes, steps int) WeeklyMetrics {
	if _, ok := m.Entries[key]; !ok {
		return m
	}
	if minutes < 0 {
		minutes = 0
	}
	if steps < 0 {
		steps = 0
	}
	if weight != nil && (*weight <= 0 || !finite(*weight)) {
		weight = nil
	}
	m.Entries[key] = DayMetrics{Weight: weight, Minutes: minutes, Steps: steps}
	return m
}

// WeeklySummary aggregates one week of metrics.
type WeeklySummary struct {
	AvgWeight    float64 // 0 when no weight was recorded
	WeighedDays  int
	TotalMinutes int
	TotalSteps   int
	BestDay      string // day key with the most steps, "" when stepless
}

// Summarize computes the weekly aggregate. Step ties resolve to the
// first day in canonical week order.
func Summarize(m WeeklyMetrics) WeeklySummary {
	var s WeeklySummary
	var weightSum float64
	bestSteps := -1

	for _, k := range DayKeys {
		e := m.Entries[k]
		if e.Weight != nil {
			weightSum += *e.Weight
			s.WeighedDays++
		}
		s.TotalMinutes += e.Minutes
		s.TotalSteps += e.Steps
		if e.Steps > bestSteps {
			bestSteps = e.Steps
			s.BestDay = k
		}
	}

	if s.WeighedDays > 0 {
		s.AvgWeight = weightSum / float64(s.WeighedDays)
	}
	if bestSteps <= 0 {
		s.BestDay = ""
	}
	return s
}
