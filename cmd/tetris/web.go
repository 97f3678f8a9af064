package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/web"
)

var (
	flagWebAddr string
	flagWebMode string
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the game to browsers over a websocket",
	Long: `Start an HTTP server with a canvas client. Each browser tab gets its own
game; the server streams the raw display buffers after every input.

Examples:
  tetris web
  tetris web --addr :9000 --mode tetris_garbage`,
	Run: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address")
	webCmd.Flags().StringVar(&flagWebMode, "mode", string(tetris.ModeMarathon), "Game mode")
}

func runWeb(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	srv, err := web.NewServer(web.ServerConfig{
		Address: flagWebAddr,
		Game:    tetris.LoadConfig(),
		Garbage: isGarbageMode(flagWebMode),
		Seed:    flagSeed,
		Store:   store,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Open http://localhost%s in a browser\n", flagWebAddr)
	if err := srv.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
