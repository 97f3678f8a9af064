// Package web serves the bridge buffers to a browser over a websocket.
// Every connection owns its own game; the server only relays input in and
// raw buffers out.
package web

import (
	"context"
	_ "embed"
	"errors"
	"net"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

//go:embed static/index.html
var indexHTML []byte

// ServerConfig holds configuration for the websocket server.
type ServerConfig struct {
	Address string
	Game    config.TetrisConfig
	Garbage bool
	// Seed fixes the first game of every connection. Zero means time-based.
	Seed   int64
	Store  *storage.Store
	Logger *log.Logger
}

// Server hosts the canvas client and the /ws endpoint.
type Server struct {
	cfg      ServerConfig
	logger   *log.Logger
	upgrader websocket.Upgrader
	sessions atomic.Int64
	http     *http.Server
}

// NewServer validates the game config and prepares the handlers.
func NewServer(cfg ServerConfig) (*Server, error) {
	if err := cfg.Game.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "tetris-web",
			Level:           log.GetLevel(),
		})
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s, nil
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	seed := s.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gameID := string(tetris.ModeMarathon)
	if s.cfg.Garbage {
		gameID = string(tetris.ModeGarbage)
	}

	sess := &session{
		conn:    conn,
		logger:  s.logger.With("remote", r.RemoteAddr),
		store:   s.cfg.Store,
		cfg:     s.cfg.Game,
		gameID:  gameID,
		garbage: s.cfg.Garbage,
		seed:    seed,
	}
	if err := sess.reset(); err != nil {
		s.logger.Error("cannot start session", "error", err)
		return
	}

	active := s.sessions.Add(1)
	s.logger.Info("session started", "remote", r.RemoteAddr, "seed", seed, "active", active)
	sess.run()
	active = s.sessions.Add(-1)
	s.logger.Info("session ended", "remote", r.RemoteAddr, "active", active)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("starting web server", "address", ln.Addr().String())

	errc := make(chan error, 1)
	go func() {
		errc <- s.http.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}

// ActiveSessions returns the number of open websocket sessions.
func (s *Server) ActiveSessions() int64 {
	return s.sessions.Load()
}
