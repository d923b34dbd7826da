// neondrift is a terminal arcade shooter: steer a craft through a scrolling
// neon field, dodge what you cannot destroy, and ride the difficulty curve.
//
// Usage:
//
//	neondrift                - Play (same as "neondrift play")
//	neondrift play           - Play in the local terminal
//	neondrift serve          - Start SSH server for remote play
//	neondrift version        - Print build version
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/Charu-web/Neon-Drift/internal/games/drift"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neondrift",
	Short: "Neon Drift - a dodge-and-blast arcade game for your terminal",
	Long: `Neon Drift is a terminal arcade game. Hostiles, debris and pickups
rain down a parallax starfield; you steer with the keyboard or the mouse,
toggle autofire, and survive as the drift speeds up.

Examples:
  neondrift
  neondrift play --difficulty hard
  neondrift play --seed 42 --mute
  neondrift serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Running with no subcommand plays directly, so the root carries
	// the play flags too
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
