package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing Asteroids in the terminal.

Controls:
  Up/W         - Thrust
  Left/A       - Rotate left
  Right/D      - Rotate right
  Space        - Fire
  P            - Pause
  R            - Restart (after being destroyed)
  Q/Esc        - Quit

Logs are discarded unless --log-file is set, since the game owns the screen.

Examples:
  asteroids play
  asteroids play --seed 42 --mute
  asteroids play --log-level debug --log-file asteroids.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal")
		fmt.Fprintln(os.Stderr, "Run 'asteroids window' to play in a desktop window.")
		os.Exit(1)
	}

	s, err := newSession(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Run the game
	runErr := tui.Run(s.game, s.runtime, s.cfg.Input, s.logger)

	// Release audio and log file before potential exit
	s.close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
