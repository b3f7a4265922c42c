package tui

import "github.com/BerkeKaanDinler/fitness-web/internal/fitness"

// restTimerModel is the between-sets countdown. One shared ticker
// drives it; starting while running is a no-op, pause and reset clear
// the pending countdown unconditionally.
type restTimerModel struct {
	running    bool
	remaining  int // seconds
	configured int // seconds, clamped to [15,300]
}

func newRestTimerModel(configured int) restTimerModel {
	c := fitness.ClampRestSeconds(configured)
	return restTimerModel{configured: c, remaining: c}
}

func (r *restTimerModel) start() {
	if r.running {
		return
	}
	if r.remaining <= 0 {
		r.remaining = r.configured
	}
	r.running = true
}

func (r *restTimerModel) pause() {
	r.running = false
}

func (r *restTimerModel) reset() {
	r.running = false
	r.remaining = r.configured
}

// setConfigured reclamps the duration; like the input field in the
// original, it only resyncs the display while the timer is not ticking.
func (r *restTimerModel) setConfigured(secs int) {
	r.configured = fitness.ClampRestSeconds(secs)
	if !r.running {
		r.remaining = r.configured
	}
}

// tick advances one second and reports whether the countdown just hit
// zero.
func (r *restTimerModel) tick() bool {
	if !r.running {
		return false
	}
	r.remaining--
	if r.remaining <= 0 {
		r.remaining = 0
		r.running = false
		return true
	}
	return false
}
