package fitness

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// SessionStep is one checkable line of a generated session.
type SessionStep struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// SessionPlan is a generated single-session workout. Plans are only
// ever replaced wholesale; steps toggle individually.
type SessionPlan struct {
	Muscle    string        `json:"muscle"`
	Duration  int           `json:"duration"`
	Steps     []SessionStep `json:"steps"`
	CreatedAt time.Time     `json:"createdAt"`
}

// ClampSessionDuration bounds a requested duration to [30,60] minutes.
func ClampSessionDuration(minutes int) int {
	if minutes < 30 {
		return 30
	}
	if minutes > 60 {
		return 60
	}
	return minutes
}

// SessionMoveCount derives how many main movements a session gets from
// its effective duration.
func SessionMoveCount(minutes int) int {
	switch {
	case minutes >= 60:
		return 5
	case minutes >= 45:
		return 4
	default:
		return 3
	}
}

// BuildSessionPlan generates a fresh plan for the muscle group: warmup,
// N movements drawn uniformly at random from the matching pool (first
// two as main sets), cooldown. A pool smaller than N just yields fewer
// steps.
func BuildSessionPlan(muscle string, duration int) SessionPlan {
	safe := ClampSessionDuration(duration)
	moveCount := SessionMoveCount(safe)

	mainSet := "3 set x 10-12 tekrar"
	auxSet := "2 set x 12-15 tekrar"
	if safe >= 60 {
		mainSet = "4 set x 8-10 tekrar"
		auxSet = "3 set x 12-15 tekrar"
	}

	warmup := 5
	if safe >= 45 {
		warmup = 7
	}
	cooldown := 6
	if safe >= 60 {
		cooldown = 8
	}

	var pool []Exercise
	for _, ex := range Exercises {
		if ex.Muscle == muscle {
			pool = append(pool, ex)
		}
	}
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > moveCount {
		pool = pool[:moveCount]
	}

	stamp := uuid.NewString()[:8]
	steps := []SessionStep{
		{ID: "warmup-" + stamp, Text: fmt.Sprintf("%d dk dinamik isinma + eklem mobilitesi", warmup)},
	}
	for i, ex := range pool {
		set := auxSet
		if i < 2 {
			set = mainSet
		}
		steps = append(steps, SessionStep{
			ID:   fmt.Sprintf("%s-%s-%d", ex.ID, stamp, i),
			Text: fmt.Sprintf("%s | %s", ex.Name, set),
		})
	}
	steps = append(steps, SessionStep{
		ID: "cooldown-" + stamp, Text: fmt.Sprintf("%d dk soguma + nefes toparlama", cooldown),
	})

	return SessionPlan{
		Muscle:    muscle,
		Duration:  safe,
		Steps:     steps,
		CreatedAt: time.Now().UTC(),
	}
}

type sessionStepDoc struct {
	ID   *string `json:"id"`
	Text *string `json:"text"`
	Done bool    `json:"done"`
}

type sessionPlanDoc struct {
	Muscle    *string          `json:"muscle"`
	Duration  *float64         `json:"duration"`
	Steps     []sessionStepDoc `json:"steps"`
	CreatedAt *time.Time       `json:"createdAt"`
}

// NormalizeSessionPlan validates a raw plan document. Steps without
// text are dropped; a plan that ends up with no steps is no plan.
func NormalizeSessionPlan(raw []byte) *SessionPlan {
	if len(raw) == 0 {
		return nil
	}

	var doc sessionPlanDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}

	plan := SessionPlan{Muscle: "gogus", Duration: 45, CreatedAt: time.Now().UTC()}
	if doc.Muscle != nil && *doc.Muscle != "" {
		plan.Muscle = *doc.Muscle
	}
	if v := numValue(doc.Duration); v != nil && *v > 0 {
		plan.Duration = ClampSessionDuration(int(*v))
	}
	if doc.CreatedAt != nil {
		plan.CreatedAt = *doc.CreatedAt
	}

	for i, step := range doc.Steps {
		if step.Text == nil || *step.Text == "" {
			continue
		}
		id := fmt.Sprintf("saved-step-%d", i)
		if step.ID != nil && *step.ID != "" {
			id = *step.ID
		}
		plan.Steps = append(plan.Steps, SessionStep{ID: id, Text: *step.Text, Done: step.Done})
	}
	if len(plan.Steps) == 0 {
		return nil
	}
	return &plan
}

// ToggleStep sets one step's done state; unknown ids are ignored.
func (p *SessionPlan) ToggleStep(id string) {
	for i := range p.Steps {
		if p.Steps[i].ID == id {
			p.Steps[i].Done = !p.Steps[i].Done
			return
		}
	}
}

// Progress reports completed and total step counts.
func (p *SessionPlan) Progress() (done, total int) {
	if p == nil {
		return 0, 0
	}
	for _, s := range p.Steps {
		total++
		if s.Done {
			done++
		}
	}
	return done, total
}
