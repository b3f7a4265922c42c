package fitness

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlannerGoals enumerates the recommendation goals.
var PlannerGoals = []string{"kas", "yag", "guc", "atletik"}

// IsPlannerGoal reports whether g is a known recommendation goal.
func IsPlannerGoal(g string) bool {
	for _, v := range PlannerGoals {
		if v == g {
			return true
		}
	}
	return false
}

// Program describes a workout program card, built-in or custom.
type Program struct {
	Key    string   `json:"key"`
	Title  string   `json:"title"`
	Tag    string   `json:"tag"`
	Goal   string   `json:"goal"`
	Desc   string   `json:"desc"`
	Detail string   `json:"detail"`
	Days   []string `json:"days"`
}

// BuiltinPrograms are the four stock programs, keyed by goal through
// the recommendation table below.
var BuiltinPrograms = []Program{
	{
		Key: "titan", Title: "Titan 4 Gun", Tag: "4 gun / hafta", Goal: "kas",
		Desc:   "Haftalik hacim artisi icin dengeli kas kazanimi plani.",
		Detail: "Her hafta ana liftlerde kucuk yuk artisi hedeflenir.",
		Days:   []string{"Gogus + Triceps", "Sirt + Biceps", "Bacak", "Omuz + Core"},
	},
	{
		Key: "cutcore", Title: "Cut & Core 5 Gun", Tag: "5 gun / hafta", Goal: "yag",
		Desc:   "Yag yakimi icin direnc + kondisyon kombinasyonu.",
		Detail: "Direnc gunlerinin sonuna kisa kondisyon bloklari eklenir.",
		Days:   []string{"Ust Vucut", "HIIT + Core", "Alt Vucut", "Tempo Kardiyo", "Full Body"},
	},
	{
		Key: "alpha", Title: "Alpha 3 Gun", Tag: "3 gun / hafta", Goal: "guc",
		Desc:   "Temel kuvveti guvenli ve hizli sekilde yukseltir.",
		Detail: "Squat, bench ve deadlift etrafinda dusuk tekrarli calisma.",
		Days:   []string{"Squat Odak", "Bench Odak", "Deadlift Odak"},
	},
	{
		Key: "hybrid", Title: "Hybrid 6 Gun", Tag: "6 gun / hafta", Goal: "atletik",
		Desc:   "Guc, hiz ve kondisyonu birlikte gelistirir.",
		Detail: "Guc, sprint ve dayaniklilik gunleri donusumlu ilerler.",
		Days:   []string{"Guc", "Sprint", "Dayaniklilik", "Guc", "Patlayicilik", "Kondisyon"},
	},
}

var recommendationTexts = map[string]string{
	"kas":     "Oneri: Titan 4 Gun. Haftalik hacim artisi icin en dengeli kas kazanimi plani.",
	"yag":     "Oneri: Cut & Core 5 Gun. Yag yakimi icin direnc + kondisyon kombinasyonu.",
	"guc":     "Oneri: Alpha 3 Gun. Temel kuvveti guvenli ve hizli sekilde yukseltir.",
	"atletik": "Oneri: Hybrid 6 Gun. Guc, hiz ve kondisyonu birlikte gelistirir.",
}

// CustomProgram is an admin-authored program card.
type CustomProgram struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	Tag       string    `json:"tag"`
	Goal      string    `json:"goal"`
	Desc      string    `json:"desc"`
	Detail    string    `json:"detail"`
	Days      []string  `json:"days"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// customKeyPrefix guarantees custom keys can never collide with the
// built-in program keys.
const customKeyPrefix = "ozel-"

// Slugify lowercases and strips a title down to a dash-separated key.
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

type customProgramDoc struct {
	ID        *string    `json:"id"`
	Key       *string    `json:"key"`
	Title     *string    `json:"title"`
	Tag       *string    `json:"tag"`
	Goal      *string    `json:"goal"`
	Desc      *string    `json:"desc"`
	Detail    *string    `json:"detail"`
	Days      []string   `json:"days"`
	CreatedAt *time.Time `json:"createdAt"`
	CreatedBy *string    `json:"createdBy"`
}

// NormalizeCustomPrograms validates a raw program list, silently
// dropping records that fail validation.
func NormalizeCustomPrograms(raw []byte) []CustomProgram {
	if len(raw) == 0 {
		return nil
	}

	var docs []customProgramDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil
	}

	var out []CustomProgram
	for _, doc := range docs {
		if p := normalizeCustomProgram(doc); p != nil {
			out = append(out, *p)
		}
	}
	return out
}

func normalizeCustomProgram(doc customProgramDoc) *CustomProgram {
	if doc.Title == nil || strings.TrimSpace(*doc.Title) == "" {
		return nil
	}
	if doc.Desc == nil || strings.TrimSpace(*doc.Desc) == "" {
		return nil
	}

	var days []string
	for _, d := range doc.Days {
		if strings.TrimSpace(d) != "" {
			days = append(days, strings.TrimSpace(d))
		}
	}
	if len(days) == 0 {
		return nil
	}

	goal := "kas"
	if doc.Goal != nil && IsPlannerGoal(*doc.Goal) {
		goal = *doc.Goal
	}

	p := CustomProgram{
		Title:     strings.TrimSpace(*doc.Title),
		Goal:      goal,
		Desc:      strings.TrimSpace(*doc.Desc),
		Days:      days,
		CreatedAt: time.Now().UTC(),
	}
	if doc.ID != nil && *doc.ID != "" {
		p.ID = *doc.ID
	} else {
		p.ID = uuid.NewString()
	}
	slugSource := p.Title
	if doc.Key != nil && *doc.Key != "" {
		slugSource = *doc.Key
	}
	p.Key = customKeyPrefix + strings.TrimPrefix(Slugify(slugSource), customKeyPrefix)
	if doc.Tag != nil {
		p.Tag = strings.TrimSpace(*doc.Tag)
	}
	if doc.Detail != nil {
		p.Detail = strings.TrimSpace(*doc.Detail)
	}
	if doc.CreatedAt != nil {
		p.CreatedAt = *doc.CreatedAt
	}
	if doc.CreatedBy != nil {
		p.CreatedBy = *doc.CreatedBy
	}
	return &p
}

// NewCustomProgram builds a validated custom program for the admin
// form. Unlike the normalizer it reports what is wrong.
func NewCustomProgram(title, tag, goal, desc, detail string, days []string, createdBy string) (*CustomProgram, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(desc) == "" {
		return nil, ErrInvalidInput
	}
	var kept []string
	for _, d := range days {
		if strings.TrimSpace(d) != "" {
			kept = append(kept, strings.TrimSpace(d))
		}
	}
	if len(kept) == 0 {
		return nil, ErrInvalidInput
	}
	if !IsPlannerGoal(goal) {
		return nil, ErrInvalidInput
	}

	return &CustomProgram{
		ID:        uuid.NewString(),
		Key:       customKeyPrefix + Slugify(title),
		Title:     strings.TrimSpace(title),
		Tag:       strings.TrimSpace(tag),
		Goal:      goal,
		Desc:      strings.TrimSpace(desc),
		Detail:    strings.TrimSpace(detail),
		Days:      kept,
		CreatedAt: time.Now().UTC(),
		CreatedBy: createdBy,
	}, nil
}

// Program converts a custom program to its display card.
func (c CustomProgram) Program() Program {
	return Program{
		Key: c.Key, Title: c.Title, Tag: c.Tag, Goal: c.Goal,
		Desc: c.Desc, Detail: c.Detail, Days: c.Days,
	}
}

// Recommendation resolves a goal to one highlighted program.
type Recommendation struct {
	Key    string
	Title  string
	Text   string
	Custom bool
}

// Recommend prefers the first custom program matching the goal (the
// list is newest-first, so the most recently added wins), falling back
// to the built-in program for that goal. Unknown goals resolve to nil.
func Recommend(goal string, customs []CustomProgram) *Recommendation {
	for _, c := range customs {
		if c.Goal == goal {
			return &Recommendation{
				Key:    c.Key,
				Title:  c.Title,
				Text:   "Oneri: " + c.Title + ". " + c.Desc,
				Custom: true,
			}
		}
	}

	text, ok := recommendationTexts[goal]
	if !ok {
		return nil
	}
	for _, p := range BuiltinPrograms {
		if p.Goal == goal {
			return &Recommendation{Key: p.Key, Title: p.Title, Text: text}
		}
	}
	return nil
}
