// tetris plays Tetris in the terminal, over SSH, in a browser or in a
// desktop window. Every host drives the same flat-buffer bridge.
//
// Usage:
//
//	tetris list              - List game modes
//	tetris play <mode>       - Play a mode in the terminal
//	tetris menu              - Pick modes interactively
//	tetris serve             - Start the SSH server
//	tetris web               - Start the browser server
//	tetris window            - Play in a desktop window
//	tetris scores <mode>     - Show best runs for a mode
//	tetris sim               - Run a seeded headless game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible games
//	--db <path>           - Set database path (default: ~/.tetris/scores.db)
//	--config <path>       - Use a custom tetris.yaml
//	--difficulty <name>   - Apply a preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris for the terminal, SSH, browser and desktop",
	Long: `Tetris renders one game engine through flat display buffers that any
host can draw: a terminal UI, an SSH server, a websocket canvas client or
a desktop window.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start the SSH server
  web      - Start the browser server
  window   - Open a desktop window
  scores   - View best runs
  sim      - Run a headless seeded game

Examples:
  tetris play tetris
  tetris play tetris_garbage --difficulty hard
  tetris web --addr :8080
  tetris sim --seed 7 --steps 500`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)

		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		tetris.SetConfigPath(flagConfig)
		tetris.SetDifficultyPreset(flagDifficulty)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tetris.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// isGarbageMode reports whether a mode ID enables timed garbage.
func isGarbageMode(mode string) bool {
	return mode == string(tetris.ModeGarbage)
}
