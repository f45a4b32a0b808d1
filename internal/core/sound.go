package core

//go:generate go tool mockgen -destination=./mocks/sound_mock.go -package=mocks . SoundPlayer

// Cue identifies a sound effect the simulation can request.
type Cue int

const (
	CueShoot Cue = iota
	CueExplode
	CueHit
)

// Cues lists every cue in declaration order.
var Cues = []Cue{CueShoot, CueExplode, CueHit}

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueExplode:
		return "explode"
	case CueHit:
		return "hit"
	default:
		return "unknown"
	}
}

// SoundPlayer is the audio sink. Play must not block the frame; an
// implementation that cannot play a cue right now drops it.
type SoundPlayer interface {
	Play(cue Cue)
}

// NopSound discards every cue. Used when audio is muted or unavailable.
type NopSound struct{}

// Play does nothing.
func (NopSound) Play(Cue) {}
