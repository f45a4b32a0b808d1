package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionThrust},
		{"w", runeKey('w'), core.ActionThrust},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionRotateLeft},
		{"a", runeKey('a'), core.ActionRotateLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRotateRight},
		{"d", runeKey('d'), core.ActionRotateRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{"r", runeKey('r'), core.ActionRestart},
		{"p", runeKey('p'), core.ActionPause},
		{"q", runeKey('q'), core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys.Action(tt.msg))
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	assert.Len(t, keys.ShortHelp(), 7)
	assert.Len(t, keys.FullHelp(), 2)
}

func TestHoldTracker(t *testing.T) {
	base := time.Unix(1000, 0)
	at := func(ms int) time.Time { return base.Add(time.Duration(ms) * time.Millisecond) }
	h := newHoldTracker(150*time.Millisecond, 700*time.Millisecond)

	assert.False(t, h.Held(core.ActionThrust, base), "unseen key is not held")

	assert.True(t, h.Press(core.ActionThrust, at(0)), "first event is a fresh press")

	// Before the keyboard starts repeating the key stays down
	assert.True(t, h.Held(core.ActionThrust, at(250)))
	assert.True(t, h.Held(core.ActionThrust, at(650)))

	// The first auto-repeat continues the same press
	assert.False(t, h.Press(core.ActionThrust, at(400)))
	assert.False(t, h.Press(core.ActionThrust, at(433)))
	assert.True(t, h.Held(core.ActionThrust, at(550)))

	// Once repeating, silence longer than the window releases the key
	assert.False(t, h.Held(core.ActionThrust, at(600)))
	assert.True(t, h.Press(core.ActionThrust, at(700)))
}

func TestHoldTrackerTapReleases(t *testing.T) {
	base := time.Unix(1000, 0)
	h := newHoldTracker(150*time.Millisecond, 700*time.Millisecond)

	h.Press(core.ActionFire, base)

	assert.False(t, h.Held(core.ActionFire, base.Add(701*time.Millisecond)))
	assert.True(t, h.Press(core.ActionFire, base.Add(800*time.Millisecond)))
}

func TestHoldTrackerRepeatDelayNotBelowWindow(t *testing.T) {
	h := newHoldTracker(150*time.Millisecond, 50*time.Millisecond)
	assert.Equal(t, 150*time.Millisecond, h.repeatDelay)
}

func TestIsDiscrete(t *testing.T) {
	assert.True(t, isDiscrete(core.ActionFire))
	assert.True(t, isDiscrete(core.ActionRestart))
	assert.True(t, isDiscrete(core.ActionPause))
	assert.False(t, isDiscrete(core.ActionThrust))
	assert.False(t, isDiscrete(core.ActionRotateLeft))
}
