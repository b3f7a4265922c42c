package fitness

import "strings"

// Exercise is one entry of the built-in movement library.
type Exercise struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Muscle    string `json:"muscle"`
	Equipment string `json:"equipment"`
	Level     string `json:"level"`
	Note      string `json:"note"`
	Video     string `json:"video"`
}

// Exercises is the built-in library. Custom movements are out of
// scope; favorites and session plans reference these ids.
var Exercises = []Exercise{
	{ID: "bench-press", Name: "Bench Press", Muscle: "gogus", Equipment: "barbell", Level: "intermediate", Note: "Temel guc hareketi.", Video: "https://www.youtube.com/results?search_query=bench+press+proper+form"},
	{ID: "incline-dumbbell-press", Name: "Incline Dumbbell Press", Muscle: "gogus", Equipment: "dumbbell", Level: "beginner", Note: "Ust gogus odagi.", Video: "https://www.youtube.com/results?search_query=incline+dumbbell+press+form"},
	{ID: "cable-fly", Name: "Cable Fly", Muscle: "gogus", Equipment: "cable", Level: "beginner", Note: "Kasilma hissini artirir.", Video: "https://www.youtube.com/results?search_query=cable+fly+proper+form"},
	{ID: "pull-up", Name: "Pull-up", Muscle: "sirt", Equipment: "bodyweight", Level: "intermediate", Note: "Genislik odakli cekis.", Video: "https://www.youtube.com/results?search_query=pull+up+form+tutorial"},
	{ID: "barbell-row", Name: "Barbell Row", Muscle: "sirt", Equipment: "barbell", Level: "intermediate", Note: "Sirt kalinligini destekler.", Video: "https://www.youtube.com/results?search_query=barbell+row+proper+form"},
	{ID: "lat-pulldown", Name: "Lat Pulldown", Muscle: "sirt", Equipment: "machine", Level: "beginner", Note: "Teknik kontrolu kolay.", Video: "https://www.youtube.com/results?search_query=lat+pulldown+proper+form"},
	{ID: "overhead-press", Name: "Overhead Press", Muscle: "omuz", Equipment: "barbell", Level: "intermediate", Note: "Omuz ve core stabilitesi.", Video: "https://www.youtube.com/results?search_query=overhead+press+tutorial"},
	{ID: "lateral-raise", Name: "Lateral Raise", Muscle: "omuz", Equipment: "dumbbell", Level: "beginner", Note: "Yan omuz izolasyonu.", Video: "https://www.youtube.com/results?search_query=lateral+raise+form"},
	{ID: "face-pull", Name: "Face Pull", Muscle: "omuz", Equipment: "cable", Level: "beginner", Note: "Arka omuz ve postur.", Video: "https://www.youtube.com/results?search_query=face+pull+proper+form"},
	{ID: "back-squat", Name: "Back Squat", Muscle: "bacak", Equipment: "barbell", Level: "intermediate", Note: "Alt vucut guc temeli.", Video: "https://www.youtube.com/results?search_query=squat+technique+tutorial"},
	{ID: "leg-press", Name: "Leg Press", Muscle: "bacak", Equipment: "machine", Level: "beginner", Note: "Yuksek hacim icin uygun.", Video: "https://www.youtube.com/results?search_query=leg+press+proper+form"},
	{ID: "romanian-deadlift", Name: "Romanian Deadlift", Muscle: "bacak", Equipment: "barbell", Level: "intermediate", Note: "Hamstring-kalca odagi.", Video: "https://www.youtube.com/results?search_query=romanian+deadlift+form"},
	{ID: "ez-bar-curl", Name: "EZ Bar Curl", Muscle: "kol", Equipment: "barbell", Level: "beginner", Note: "Biceps hacim hareketi.", Video: "https://www.youtube.com/results?search_query=ez+bar+curl+proper+form"},
	{ID: "hammer-curl", Name: "Hammer Curl", Muscle: "kol", Equipment: "dumbbell", Level: "beginner", Note: "Brachialis hedefler.", Video: "https://www.youtube.com/results?search_query=hammer+curl+proper+form"},
	{ID: "rope-pushdown", Name: "Rope Pushdown", Muscle: "kol", Equipment: "cable", Level: "beginner", Note: "Triceps izolasyonu.", Video: "https://www.youtube.com/results?search_query=rope+triceps+pushdown+form"},
	{ID: "plank", Name: "Plank", Muscle: "core", Equipment: "bodyweight", Level: "beginner", Note: "Temel core dayaniklilik.", Video: "https://www.youtube.com/results?search_query=plank+core+technique"},
	{ID: "ab-wheel", Name: "Ab Wheel", Muscle: "core", Equipment: "bodyweight", Level: "intermediate", Note: "Anti-extension guc.", Video: "https://www.youtube.com/results?search_query=ab+wheel+rollout+form"},
	{ID: "cable-crunch", Name: "Cable Crunch", Muscle: "core", Equipment: "cable", Level: "beginner", Note: "Yuklenebilir core hareketi.", Video: "https://www.youtube.com/results?search_query=cable+crunch+proper+form"},
}

var MuscleLabels = map[string]string{
	"gogus": "Gogus",
	"sirt":  "Sirt",
	"omuz":  "Omuz",
	"bacak": "Bacak",
	"kol":   "Kol",
	"core":  "Core",
}

var EquipmentLabels = map[string]string{
	"barbell":    "Barbell",
	"dumbbell":   "Dumbbell",
	"machine":    "Machine",
	"bodyweight": "Bodyweight",
	"cable":      "Cable",
}

var LevelLabels = map[string]string{
	"beginner":     "Baslangic",
	"intermediate": "Orta",
	"advanced":     "Ileri",
}

// MuscleKeys lists the filterable muscle groups in display order.
var MuscleKeys = []string{"gogus", "sirt", "omuz", "bacak", "kol", "core"}

// EquipmentKeys lists the filterable equipment kinds in display order.
var EquipmentKeys = []string{"barbell", "dumbbell", "machine", "bodyweight", "cable"}

// ExerciseFilter selects a subset of the library. Zero values mean
// "no constraint"; muscle/equipment also accept "all".
type ExerciseFilter struct {
	Query         string
	Muscle        string
	Equipment     string
	FavoritesOnly bool
	Favorites     Favorites
}

// FilterExercises applies the library filters: free-text match on name
// or note, exact muscle and equipment match, optional favorites-only.
func FilterExercises(f ExerciseFilter) []Exercise {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	var out []Exercise
	for _, ex := range Exercises {
		if query != "" &&
			!strings.Contains(strings.ToLower(ex.Name), query) &&
			!strings.Contains(strings.ToLower(ex.Note), query) {
			continue
		}
		if f.Muscle != "" && f.Muscle != "all" && ex.Muscle != f.Muscle {
			continue
		}
		if f.Equipment != "" && f.Equipment != "all" && ex.Equipment != f.Equipment {
			continue
		}
		if f.FavoritesOnly && !f.Favorites.Has(ex.ID) {
			continue
		}
		out = append(out, ex)
	}
	return out
}

// ExerciseByID looks up a library entry.
func ExerciseByID(id string) (Exercise, bool) {
	for _, ex := range Exercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return Exercise{}, false
}
