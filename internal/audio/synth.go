package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// sweep is a sine tone gliding from one frequency to another with a linear fade-out.
func sweep(sr beep.SampleRate, from, to float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(total)
			freq := from + (to-from)*t
			v := math.Sin(2*math.Pi*phase) * (1 - t)

			samples[i][0] = v
			samples[i][1] = v

			phase += freq / float64(sr)
			phase -= math.Floor(phase)
			pos++
			n++
		}
		return n, true
	})
}

// noiseBurst is white noise with a quadratic decay.
func noiseBurst(sr beep.SampleRate, d time.Duration, rng *rand.Rand) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			decay := 1 - float64(pos)/float64(total)
			v := (rng.Float64()*2 - 1) * decay * decay

			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}

// blip is a short pure tone.
func blip(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sr.N(d), tone), nil
}

// withVolume scales a stream linearly; zero or less silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
