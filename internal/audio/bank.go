package audio

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Bank holds every cue pre-rendered into memory, so playback never synthesizes.
type Bank struct {
	format  beep.Format
	buffers map[core.Cue]*beep.Buffer
}

// NewBank renders all cues at the given sample rate and volume.
func NewBank(sr beep.SampleRate, volume float64) (*Bank, error) {
	b := &Bank{
		format:  beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2},
		buffers: make(map[core.Cue]*beep.Buffer, len(core.Cues)),
	}

	// Fixed seed keeps the explosion identical between runs
	rng := rand.New(rand.NewSource(1))

	hit, err := blip(sr, 1320, 60*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("audio: synthesize %s: %w", core.CueHit, err)
	}

	sources := map[core.Cue]beep.Streamer{
		core.CueShoot:   sweep(sr, 1200, 300, 120*time.Millisecond),
		core.CueExplode: noiseBurst(sr, 600*time.Millisecond, rng),
		core.CueHit:     hit,
	}

	for _, cue := range core.Cues {
		buf := beep.NewBuffer(b.format)
		buf.Append(withVolume(sources[cue], volume))
		b.buffers[cue] = buf
	}
	return b, nil
}

// Format returns the audio format of every buffer.
func (b *Bank) Format() beep.Format {
	return b.format
}

// Streamer returns a fresh streamer for the cue, or false if the cue is unknown.
func (b *Bank) Streamer(cue core.Cue) (beep.StreamSeeker, bool) {
	buf, ok := b.buffers[cue]
	if !ok {
		return nil, false
	}
	return buf.Streamer(0, buf.Len()), true
}

// Len returns the cue's length in samples.
func (b *Bank) Len(cue core.Cue) int {
	if buf, ok := b.buffers[cue]; ok {
		return buf.Len()
	}
	return 0
}
