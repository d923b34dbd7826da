package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Charu-web/Neon-Drift/internal/audio"
	"github.com/Charu-web/Neon-Drift/internal/core"
	"github.com/Charu-web/Neon-Drift/internal/games/drift"
	"github.com/Charu-web/Neon-Drift/internal/platform/tui"
	"github.com/Charu-web/Neon-Drift/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a run in the current terminal.

Controls:
  A/D, arrows  - Steer the craft
  Mouse drag   - Steer toward the pointer
  Space/F      - Toggle autofire
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at the lowest intensity, progresses to max
  normal - Default curve
  hard   - Start hot, progresses to max
  fixed  - No progression, stays at the config's initial level

Examples:
  neondrift play
  neondrift play --difficulty easy
  neondrift play --config ./my-drift.yaml
  neondrift play --seed 42 --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on a command. The root command runs
// play directly, so it needs the same set.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size for the initial playfield
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		Difficulty: flagDifficulty,
	}

	drift.SetConfigPath(flagConfig)

	game, err := registry.Create("drift")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Sound is best effort: a headless or device-less terminal still plays
	engine := audio.NewEngine()
	if !flagMute {
		if audioErr := engine.Init(); audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound unavailable: %v\n", audioErr)
		}
	}

	runErr := tui.Run(game, engine, cfg)

	engine.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
