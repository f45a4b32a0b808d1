package tui

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// keyPress is the event history of one key since it went down.
type keyPress struct {
	last      time.Time
	repeating bool // an auto-repeat event has arrived
}

// holdTracker infers held keys from a terminal's key events.
//
// Terminals report presses and auto-repeats but never releases. After the
// first event the keyboard stays silent for up to repeatDelay before it
// starts repeating every few tens of milliseconds. A key therefore counts as
// down for repeatDelay after its first event, and for window after each
// repeat.
type holdTracker struct {
	window      time.Duration
	repeatDelay time.Duration
	keys        map[core.Action]*keyPress
}

func newHoldTracker(window, repeatDelay time.Duration) *holdTracker {
	return &holdTracker{
		window:      window,
		repeatDelay: max(repeatDelay, window),
		keys:        make(map[core.Action]*keyPress),
	}
}

// Press records a key event for a and reports whether it begins a new
// press rather than repeating one still held.
func (h *holdTracker) Press(a core.Action, now time.Time) bool {
	k, ok := h.keys[a]
	if ok && h.down(k, now) {
		k.last = now
		k.repeating = true
		return false
	}

	h.keys[a] = &keyPress{last: now}
	return true
}

// Held reports whether a is still considered down at now.
func (h *holdTracker) Held(a core.Action, now time.Time) bool {
	k, ok := h.keys[a]
	return ok && h.down(k, now)
}

func (h *holdTracker) down(k *keyPress, now time.Time) bool {
	if k.repeating {
		return now.Sub(k.last) <= h.window
	}
	return now.Sub(k.last) <= h.repeatDelay
}
