package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window that draws the display buffers directly.

Keys match the terminal version. Esc or Q closes the window.

Examples:
  tetris window
  tetris window tetris_garbage --seed 3`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, args []string) {
	mode := string(tetris.ModeMarathon)
	if len(args) == 1 {
		mode = args[0]
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	err := gui.Run(gui.Options{
		Game:    tetris.LoadConfig(),
		Garbage: isGarbageMode(mode),
		Seed:    flagSeed,
		TPS:     flagFPS,
		Store:   store,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
