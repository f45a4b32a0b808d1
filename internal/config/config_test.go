package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultAsteroidsConfig(), cfg)
}

func TestDefaultsAreValid(t *testing.T) {
	assert.NoError(t, DefaultAsteroidsConfig().Validate())
}

func TestParsePartialOverride(t *testing.T) {
	doc := []byte(`
asteroid:
  spawn_interval: 2s
simulation:
  max_frame_delta: 50ms
render:
  debug_hitboxes: true
`)
	cfg, err := Parse(doc)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Asteroid.SpawnInterval)
	assert.Equal(t, 50*time.Millisecond, cfg.Simulation.MaxFrameDelta)
	assert.True(t, cfg.Render.DebugHitboxes)

	// Untouched sections keep their defaults
	def := DefaultAsteroidsConfig()
	assert.Equal(t, def.Player, cfg.Player)
	assert.Equal(t, def.Asteroid.MinRadius, cfg.Asteroid.MinRadius)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"zero viewport", "viewport: {width: 0, height: 480}", "viewport"},
		{"inverted radius band", "asteroid: {spawn_min_radius: 50, spawn_max_radius: 40}", "spawn_max_radius"},
		{"empty speed band", "asteroid: {min_speed: 90, max_speed: 90}", "speed band"},
		{"negative frame cap", "simulation: {max_frame_delta: -1s}", "max_frame_delta"},
		{"opening asteroid too small", "asteroid: {opening: [{x: 1, y: 1, radius: 4}]}", "opening[0]"},
		{"repeat delay below hold window", "input: {hold_window: 200ms, repeat_delay: 100ms}", "repeat_delay"},
		{"loud audio", "audio: {volume: 2}", "volume"},
		{"malformed yaml", "player: [", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.Error(t, err)
			if tc.wantErr != "" {
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestValidateDisabledAudioSkipsAudioChecks(t *testing.T) {
	cfg := DefaultAsteroidsConfig()
	cfg.Audio = AudioConfig{Enabled: false}
	assert.NoError(t, cfg.Validate())
}

func TestLoadAsteroidsCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  max_speed: 200\n"), 0o600))

	cfg, err := LoadAsteroids(path)
	require.NoError(t, err)
	assert.Equal(t, 200.0, cfg.Player.MaxSpeed)
}

func TestLoadAsteroidsCustomPathMissing(t *testing.T) {
	_, err := LoadAsteroids(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to read config"))
}

func TestLoadAsteroidsSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, err := LoadAsteroids("")
	require.NoError(t, err)
	assert.Equal(t, DefaultAsteroidsConfig(), cfg)

	// Local ./configs file
	require.NoError(t, os.MkdirAll(filepath.Join(work, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(work, "configs", "asteroids.yaml"),
		[]byte("bullet: {speed: 600}\n"), 0o600))
	cfg, err = LoadAsteroids("")
	require.NoError(t, err)
	assert.Equal(t, 600.0, cfg.Bullet.Speed)

	// User config wins over the local one
	userDir := filepath.Join(home, ".asteroids", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "asteroids.yaml"),
		[]byte("bullet: {speed: 700}\n"), 0o600))
	cfg, err = LoadAsteroids("")
	require.NoError(t, err)
	assert.Equal(t, 700.0, cfg.Bullet.Speed)
}

func TestMarshalWritesReadableDurations(t *testing.T) {
	data, err := Marshal(DefaultAsteroidsConfig())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "spawn_interval: 5s")
	assert.Contains(t, out, "lifetime: 1.5s")
}
