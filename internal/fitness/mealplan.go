package fitness

import "encoding/json"

// MealPlanTexts maps each nutrition package to its description.
var MealPlanTexts = map[string]string{
	"bulk":        "Secilen plan: Kas Kazanimi Paketi. Odak: haftalik agirlik artisi + yeterli karbonhidrat.",
	"cut":         "Secilen plan: Yag Yakim Paketi. Odak: protein yuksek, kalori kontrollu, lif agirlikli.",
	"performance": "Secilen plan: Atletik Performans Paketi. Odak: antrenman etrafinda dengeli yakit.",
}

// MealPlanKeys lists the selectable packages in display order.
var MealPlanKeys = []string{"bulk", "cut", "performance"}

// NormalizeMealPlan accepts either a JSON-quoted or bare plan key and
// returns it when known, otherwise "".
func NormalizeMealPlan(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	var key string
	if err := json.Unmarshal(raw, &key); err != nil {
		// Legacy documents stored the bare key without quoting.
		key = string(raw)
	}
	if _, ok := MealPlanTexts[key]; !ok {
		return ""
	}
	return key
}
