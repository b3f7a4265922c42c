package fitness

import (
	"errors"
	"math"
)

// ErrInvalidInput marks calculator inputs that cannot produce a
// result. Callers surface it as text in place of the output; no
// partial computation happens.
var ErrInvalidInput = errors.New("invalid input")

// NutritionResult is the calorie/macro calculator output.
type NutritionResult struct {
	BMR         float64
	Maintenance float64
	Target      float64
	ProteinG    int
	CarbsG      int
	FatG        int
}

// CalculateNutrition estimates daily calories and macros from the
// profile. BMR uses Mifflin-St Jeor; the goal shifts the target by
// +300 (bulk) or -400 (cut) kcal from maintenance.
func CalculateNutrition(p Profile) (NutritionResult, error) {
	if !finite(float64(p.Age)) || !finite(p.Weight) || !finite(p.Height) || !finite(p.Activity) {
		return NutritionResult{}, ErrInvalidInput
	}

	base := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	bmr := base + 5
	if p.Gender == "female" {
		bmr = base - 161
	}
	maintenance := bmr * p.Activity

	target := maintenance
	switch p.Goal {
	case "bulk":
		target = maintenance + 300
	case "cut":
		target = maintenance - 400
	}

	proteinMult := 1.9
	fatMult := 0.9
	switch p.Goal {
	case "cut":
		proteinMult = 2.2
		fatMult = 0.8
	case "bulk":
		proteinMult = 2.0
	}

	protein := int(math.Round(p.Weight * proteinMult))
	fat := int(math.Round(p.Weight * fatMult))
	carbs := int(math.Round((target - float64(protein)*4 - float64(fat)*9) / 4))
	if carbs < 0 {
		carbs = 0
	}

	return NutritionResult{
		BMR:         bmr,
		Maintenance: maintenance,
		Target:      target,
		ProteinG:    protein,
		CarbsG:      carbs,
		FatG:        fat,
	}, nil
}

// OneRepMaxResult is the 1RM estimate plus its percentage table.
type OneRepMaxResult struct {
	OneRM       float64
	ClampedReps int
	Table       []OneRepMaxRow
}

type OneRepMaxRow struct {
	Percent int
	Load    float64
}

var oneRepMaxPercents = []int{95, 90, 85, 80, 75, 70}

// CalculateOneRepMax estimates a single-rep max with the Epley
// formula. Reps are clamped into [1,15] before the estimate; reps
// below 1 are an input error rather than a clamp.
func CalculateOneRepMax(weight float64, reps int) (OneRepMaxResult, error) {
	if !finite(weight) || reps < 1 {
		return OneRepMaxResult{}, ErrInvalidInput
	}

	clamped := reps
	if clamped > 15 {
		clamped = 15
	}
	oneRM := weight * (1 + float64(clamped)/30)

	table := make([]OneRepMaxRow, 0, len(oneRepMaxPercents))
	for _, pct := range oneRepMaxPercents {
		table = append(table, OneRepMaxRow{Percent: pct, Load: oneRM * float64(pct) / 100})
	}

	return OneRepMaxResult{OneRM: oneRM, ClampedReps: clamped, Table: table}, nil
}

// CalculateWaterIntake returns the daily water target in liters.
func CalculateWaterIntake(weight, trainingMinutes float64) (float64, error) {
	if !finite(weight) || !finite(trainingMinutes) {
		return 0, ErrInvalidInput
	}
	return weight*0.035 + trainingMinutes/60*0.7, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
