package fitness

import (
	"encoding/json"
	"math"
)

// Profile holds every calculator input so a returning user finds the
// forms the way they left them. Fields default independently; there is
// no cross-field validation.
type Profile struct {
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Activity      float64 `json:"activity"`
	Goal          string  `json:"goal"`
	WaterWeight   float64 `json:"waterWeight"`
	WaterTraining float64 `json:"waterTraining"`
	RMWeight      float64 `json:"rmWeight"`
	RMReps        int     `json:"rmReps"`
	PlannerGoal   string  `json:"plannerGoal"`
	RestSeconds   int     `json:"restSeconds"`
}

func DefaultProfile() Profile {
	return Profile{
		Age:           24,
		Gender:        "male",
		Weight:        78,
		Height:        178,
		Activity:      1.55,
		Goal:          "maintain",
		WaterWeight:   78,
		WaterTraining: 60,
		RMWeight:      80,
		RMReps:        6,
		PlannerGoal:   "kas",
		RestSeconds:   90,
	}
}

// profileDoc is the tolerant wire form: absent fields stay nil instead
// of collapsing into zero values.
type profileDoc struct {
	Age           *float64 `json:"age"`
	Gender        *string  `json:"gender"`
	Weight        *float64 `json:"weight"`
	Height        *float64 `json:"height"`
	Activity      *float64 `json:"activity"`
	Goal          *string  `json:"goal"`
	WaterWeight   *float64 `json:"waterWeight"`
	WaterTraining *float64 `json:"waterTraining"`
	RMWeight      *float64 `json:"rmWeight"`
	RMReps        *float64 `json:"rmReps"`
	PlannerGoal   *string  `json:"plannerGoal"`
	RestSeconds   *float64 `json:"restSeconds"`
}

// NormalizeProfile turns a raw persisted or imported document into a
// usable profile. A document that does not decode at all yields the
// defaults wholesale; otherwise each field falls back on its own.
func NormalizeProfile(raw []byte) Profile {
	p := DefaultProfile()
	if len(raw) == 0 {
		return p
	}

	var doc profileDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return p
	}

	if v := numValue(doc.Age); v != nil && *v > 0 {
		p.Age = int(*v)
	}
	if doc.Gender != nil && (*doc.Gender == "male" || *doc.Gender == "female") {
		p.Gender = *doc.Gender
	}
	if v := numValue(doc.Weight); v != nil && *v > 0 {
		p.Weight = *v
	}
	if v := numValue(doc.Height); v != nil && *v > 0 {
		p.Height = *v
	}
	if v := numValue(doc.Activity); v != nil && *v > 0 {
		p.Activity = *v
	}
	if doc.Goal != nil && validGoal(*doc.Goal) {
		p.Goal = *doc.Goal
	}
	if v := numValue(doc.WaterWeight); v != nil && *v > 0 {
		p.WaterWeight = *v
	}
	if v := numValue(doc.WaterTraining); v != nil && *v >= 0 {
		p.WaterTraining = *v
	}
	if v := numValue(doc.RMWeight); v != nil && *v > 0 {
		p.RMWeight = *v
	}
	if v := numValue(doc.RMReps); v != nil && *v >= 1 {
		p.RMReps = int(*v)
	}
	if doc.PlannerGoal != nil && IsPlannerGoal(*doc.PlannerGoal) {
		p.PlannerGoal = *doc.PlannerGoal
	}
	if v := numValue(doc.RestSeconds); v != nil {
		p.RestSeconds = ClampRestSeconds(int(*v))
	}
	return p
}

// ClampRestSeconds bounds the rest timer to [15,300] seconds.
func ClampRestSeconds(secs int) int {
	if secs < 15 {
		return 15
	}
	if secs > 300 {
		return 300
	}
	return secs
}

func validGoal(g string) bool {
	return g == "maintain" || g == "bulk" || g == "cut"
}

// numValue filters out non-finite numbers so a poisoned document can
// never reach the calculators.
func numValue(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}
