package tui

import (
	"time"

	"github.com/vovakirdan/number-catcher/internal/core"
)

// Terminals only report key presses, never releases. A held key shows up as
// the OS autorepeat stream: one press, a pause, then presses at a steady rate.
// HoldTracker turns that stream back into a held state.
const (
	// DefaultFirstHold must cover the autorepeat delay after the first press.
	DefaultFirstHold = 300 * time.Millisecond
	// DefaultRepeatHold must cover the gap between autorepeat presses.
	DefaultRepeatHold = 120 * time.Millisecond
)

// HoldTracker keeps each direction held for a short window after its last press.
type HoldTracker struct {
	first  time.Duration
	repeat time.Duration
	until  map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. first applies to a press of a key that is
// not already held, repeat to presses that extend a hold.
func NewHoldTracker(first, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		first:  first,
		repeat: repeat,
		until:  make(map[core.Action]time.Time),
	}
}

// Press records a press of a direction at now. Pressing a direction releases
// its opposite so a quick reversal does not cancel itself out.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if !a.IsDirection() {
		return
	}
	window := h.first
	if h.Held(a, now) {
		window = h.repeat
	}
	h.until[a] = now.Add(window)
	h.Release(opposite(a))
}

// Held reports whether a is still held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	until, ok := h.until[a]
	return ok && now.Before(until)
}

// Release drops the hold on a immediately.
func (h *HoldTracker) Release(a core.Action) {
	delete(h.until, a)
}

// Reset drops every hold.
func (h *HoldTracker) Reset() {
	clear(h.until)
}

// Apply marks every direction held at now on the frame and forgets expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for _, a := range core.Directions {
		if h.Held(a, now) {
			frame.Hold(a)
		} else {
			h.Release(a)
		}
	}
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	}
	return core.ActionNone
}
