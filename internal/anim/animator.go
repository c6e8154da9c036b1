package anim

import (
	"context"
	"time"

	"github.com/san-kum/lifesim/internal/life"
)

// Animator re-arms a Scheduler for as long as the controller asks to
// continue.
type Animator struct {
	ctrl  *Controller
	sched Scheduler
	armed bool
}

func NewAnimator(c *Controller, s Scheduler) *Animator {
	return &Animator{ctrl: c, sched: s}
}

func (a *Animator) Controller() *Controller { return a.ctrl }

// Start requests the first frame. It is a no-op while a frame is pending.
func (a *Animator) Start() {
	if a.armed {
		return
	}
	a.armed = true
	a.sched.RequestFrame(a.tick)
}

func (a *Animator) tick() {
	a.armed = false
	if _, sig := a.ctrl.OnFrame(); sig == Continue {
		a.Start()
	}
}

func (a *Animator) Pause() { a.ctrl.Pause() }

// Resume un-pauses the controller and requests a frame if it had stopped.
func (a *Animator) Resume() {
	if a.ctrl.Resume() {
		a.Start()
	}
}

// Toggle flips between pause and resume.
func (a *Animator) Toggle() {
	switch a.ctrl.State() {
	case Paused:
		a.Resume()
	case Running:
		if a.ctrl.paused {
			a.ctrl.Resume()
		} else {
			a.ctrl.Pause()
		}
	}
}

// Restart repopulates the grid and requests a frame if the previous run
// had stopped.
func (a *Animator) Restart(populate func(*life.Grid) error) error {
	stopped, err := a.ctrl.Restart(populate)
	if err != nil {
		return err
	}
	if stopped {
		a.Start()
	}
	return nil
}

// FrameQueue is a headless Scheduler. Callbacks run when the queue is
// pumped, never from inside RequestFrame.
type FrameQueue struct {
	pending []func()
}

func (q *FrameQueue) RequestFrame(fn func()) { q.pending = append(q.pending, fn) }

// Pending returns the number of armed callbacks.
func (q *FrameQueue) Pending() int { return len(q.pending) }

// Step runs the callbacks queued before the call. Callbacks they request
// wait for the next Step.
func (q *FrameQueue) Step() bool {
	if len(q.pending) == 0 {
		return false
	}
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn()
	}
	return true
}

// Run pumps frames until nothing is re-armed, ctx is done or maxFrames
// frames ran (0 means no limit). With interval > 0 frames are paced by a
// ticker.
func (q *FrameQueue) Run(ctx context.Context, maxFrames int, interval time.Duration) (int, error) {
	var tick <-chan time.Time
	if interval > 0 {
		t := time.NewTicker(interval)
		defer t.Stop()
		tick = t.C
	}

	frames := 0
	for len(q.pending) > 0 {
		if maxFrames > 0 && frames >= maxFrames {
			return frames, nil
		}
		select {
		case <-ctx.Done():
			return frames, ctx.Err()
		default:
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return frames, ctx.Err()
			case <-tick:
			}
		}
		q.Step()
		frames++
	}
	return frames, nil
}
