package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-asteroids/internal/audio"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

const gameID = "asteroids"

// session holds everything a frontend needs to run one game.
type session struct {
	game    registry.Game
	runtime core.RuntimeConfig
	cfg     config.AsteroidsConfig
	logger  *log.Logger
	closers []func() error
}

// newLogger builds the run logger. fallback receives logs when --log-file is unset.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
		Level:           level,
	})
	return logger.With("run", uuid.New().String()[:8]), closeFn, nil
}

// newSession loads the config, opens audio and creates the game.
// logOut receives logs when --log-file is unset.
func newSession(logOut io.Writer) (*session, error) {
	logger, closeLog, err := newLogger(logOut)
	if err != nil {
		return nil, err
	}
	s := &session{logger: logger, closers: []func() error{closeLog}}

	s.cfg, err = config.LoadAsteroids(flagConfig)
	if err != nil {
		s.close()
		return nil, err
	}
	asteroids.UseConfig(s.cfg)

	s.runtime = core.RuntimeConfig{
		ScreenW:  s.cfg.Viewport.Width,
		ScreenH:  s.cfg.Viewport.Height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	s.game, err = registry.Create(gameID, registry.Services{
		Sound:  s.openSound(),
		Logger: logger,
	})
	if err != nil {
		s.close()
		return nil, fmt.Errorf("error creating game: %w", err)
	}
	return s, nil
}

// openSound returns the speaker mixer, or a silent player when audio is
// muted, disabled or unavailable.
func (s *session) openSound() core.SoundPlayer {
	if flagMute || !s.cfg.Audio.Enabled {
		return core.NopSound{}
	}

	mixer, err := audio.New(s.cfg.Audio, s.logger)
	if err != nil {
		s.logger.Warn("sound disabled", "error", err)
		return core.NopSound{}
	}
	if err := mixer.Start(); err != nil {
		s.logger.Warn("sound disabled", "error", err)
		return core.NopSound{}
	}
	s.closers = append(s.closers, func() error {
		mixer.Close()
		return nil
	})
	return mixer
}

// close releases resources in reverse order of acquisition.
func (s *session) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		//nolint:errcheck // Best-effort cleanup on exit
		s.closers[i]()
	}
}
