package render

import (
	"image"
	"time"

	mandel "mandelview"
)

// FrameBudget is the default per-frame render budget, targeting 60 Hz.
const FrameBudget = 16 * time.Millisecond

// Scheduler owns the view parameters, the traversal progress and the frame
// buffer, and advances the render cooperatively: each Frame call spends at
// most one budget's worth of wall-clock time stepping the engine. All state
// is mutated from the caller's goroutine only.
type Scheduler struct {
	clock  Clock
	budget time.Duration

	params   mandel.Params
	progress Progress
	frame    *image.RGBA
}

// NewScheduler builds a scheduler for the given initial view. A nil clock
// selects the system clock; a non-positive budget selects FrameBudget.
func NewScheduler(p mandel.Params, clock Clock, budget time.Duration) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	if budget <= 0 {
		budget = FrameBudget
	}
	return &Scheduler{
		clock:    clock,
		budget:   budget,
		params:   p,
		progress: NewProgress(),
		frame:    image.NewRGBA(image.Rect(0, 0, int(p.Width), int(p.Height))),
	}
}

// Frame runs one scheduling round: apply the input deltas, restart the
// render if the view changed, then step the engine until the budget runs
// out or the render completes. The change check always happens before any
// stepping, so a new view is never painted against stale progress.
//
// It returns true if the frame buffer may have changed, false if the render
// was already complete (in which case the remainder of the budget is slept
// away to cap the frame rate).
func (s *Scheduler) Frame(in mandel.Input) bool {
	start := s.clock.Now()

	if next := s.params.Apply(in); next != s.params {
		s.SetParams(next)
	}

	if s.progress.Done() {
		if rest := s.budget - s.clock.Now().Sub(start); rest > 0 {
			s.clock.Sleep(rest)
		}
		return false
	}

	for !s.progress.Done() && s.clock.Now().Sub(start) < s.budget {
		Step(s.frame, s.params, &s.progress)
	}
	return true
}

// SetParams replaces the view outright (landmark jumps, bookmark loads) and
// restarts the render. The buffer is reallocated only when the dimensions
// changed; otherwise the old pixels stay visible until the first coarse pass
// repaints them.
func (s *Scheduler) SetParams(p mandel.Params) {
	if p == s.params {
		return
	}
	if p.Width != s.params.Width || p.Height != s.params.Height {
		s.frame = image.NewRGBA(image.Rect(0, 0, int(p.Width), int(p.Height)))
	}
	s.params = p
	s.progress.Reset()
}

// Drain runs the render to completion with no deadline and returns the
// finished frame. Used by the headless snapshot renderer.
func (s *Scheduler) Drain() *image.RGBA {
	for !s.progress.Done() {
		Step(s.frame, s.params, &s.progress)
	}
	return s.frame
}

// Params returns the view the current render is based on.
func (s *Scheduler) Params() mandel.Params {
	return s.params
}

// Done reports whether the current render has reached its finest pass.
func (s *Scheduler) Done() bool {
	return s.progress.Done()
}

// Progress returns a copy of the current traversal state.
func (s *Scheduler) Progress() Progress {
	return s.progress
}

// Buffer returns the live frame buffer. It is written by Frame and Drain;
// callers that hand it to other goroutines must copy it first.
func (s *Scheduler) Buffer() *image.RGBA {
	return s.frame
}
