// Package audio plays the game's sound cues through the system speaker.
package audio

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// voicePool bounds how many cues play at once. It is lock-free because
// release runs on the speaker goroutine while the speaker lock is held.
type voicePool struct {
	active   atomic.Int32
	capacity atomic.Int32
}

func (p *voicePool) acquire() bool {
	for {
		n := p.active.Load()
		if n >= p.capacity.Load() {
			return false
		}
		if p.active.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (p *voicePool) release() {
	p.active.Add(-1)
}

func (p *voicePool) grow() int32 {
	return p.capacity.Add(1)
}

// Mixer implements core.SoundPlayer on top of a beep mixer.
// Play never blocks on audio: when every voice is busy the cue is dropped
// and one more voice is made available for later cues.
type Mixer struct {
	bank    *Bank
	mixer   *beep.Mixer
	voices  voicePool
	logger  *log.Logger
	started bool
}

// New renders the sound bank. Call Start to open the audio device.
func New(cfg config.AudioConfig, logger *log.Logger) (*Mixer, error) {
	bank, err := NewBank(beep.SampleRate(cfg.SampleRate), cfg.Volume)
	if err != nil {
		return nil, err
	}

	m := &Mixer{
		bank:   bank,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
	m.voices.capacity.Store(int32(cfg.Voices))
	return m, nil
}

// Start opens the speaker and begins streaming the mixer.
func (m *Mixer) Start() error {
	sr := m.bank.Format().SampleRate
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.started = true

	m.logger.Debug("audio started", "sample_rate", int(sr), "voices", m.Capacity())
	return nil
}

// Play queues a cue for playback.
func (m *Mixer) Play(cue core.Cue) {
	s, ok := m.bank.Streamer(cue)
	if !ok {
		m.logger.Warn("unknown sound cue", "cue", int(cue))
		return
	}

	if !m.voices.acquire() {
		capacity := m.voices.grow()
		m.logger.Warn("no free voices, dropping cue", "cue", cue, "capacity", capacity)
		return
	}

	speaker.Lock()
	m.mixer.Add(beep.Seq(s, beep.Callback(m.voices.release)))
	speaker.Unlock()
}

// Active returns how many cues are currently playing.
func (m *Mixer) Active() int {
	return int(m.voices.active.Load())
}

// Capacity returns how many cues may play at once.
func (m *Mixer) Capacity() int {
	return int(m.voices.capacity.Load())
}

// Close stops playback and releases the audio device.
func (m *Mixer) Close() {
	if !m.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.started = false
}
