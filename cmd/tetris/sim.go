package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/bridge"
	"github.com/vovakirdan/tui-tetris/internal/gamemaster"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	flagSimSteps   int
	flagSimStepMs  int64
	flagSimMode    string
	flagSimVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with seeded random input",
	Long: `Drive the bridge without a display. Inputs are drawn from the seed, so
the same seed always prints the same final field.

Examples:
  tetris sim --seed 7
  tetris sim --seed 7 --steps 2000 --mode tetris_garbage -v`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimSteps, "steps", 1000, "Number of steps to simulate")
	simCmd.Flags().Int64Var(&flagSimStepMs, "step-ms", 50, "Milliseconds between steps")
	simCmd.Flags().StringVar(&flagSimMode, "mode", string(tetris.ModeMarathon), "Game mode")
	simCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Print the field after every hard drop")
}

func runSim(_ *cobra.Command, _ []string) {
	b, err := tetris.NewBridge(tetris.LoadConfig(), isGarbageMode(flagSimMode), flagSeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	steps := simulate(b, rand.New(rand.NewSource(flagSeed)), flagSimSteps, flagSimStepMs, func(step int) {
		if flagSimVerbose {
			fmt.Printf("step %d\n%s\n", step, b.String())
		}
	})

	fmt.Println(b.String())
	fmt.Printf("steps: %d  lines: %d  game over: %v\n", steps, b.NumDeletedLines(), b.GameOver())
}

// simulate steps b with random keys until steps run out or the game ends.
// onDrop is called after every hard drop.
func simulate(b *bridge.Bridge, r *rand.Rand, steps int, stepMs int64, onDrop func(step int)) int {
	n := 0
	for ; n < steps && !b.GameOver(); n++ {
		keys := randomKeys(r)
		b.StepKeys(int64(n)*stepMs, keys)
		b.RenderAll()
		if keys.HardDrop && onDrop != nil {
			onDrop(n)
		}
	}
	return n
}

func randomKeys(r *rand.Rand) gamemaster.KeyPress {
	return gamemaster.KeyPress{
		RightRotate: r.Intn(6) == 0,
		LeftRotate:  r.Intn(8) == 0,
		Hold:        r.Intn(40) == 0,
		SoftDrop:    r.Intn(4) == 0,
		HardDrop:    r.Intn(12) == 0,
		RightMove:   r.Intn(3) == 0,
		LeftMove:    r.Intn(3) == 0,
	}
}
