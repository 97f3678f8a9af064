package web

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-tetris/internal/bridge"
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/gamemaster"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

const (
	writeWait = 10 * time.Second

	// maxStepMs caps how far one message can move the engine clock.
	maxStepMs = 1000
)

// clientMessage is the JSON sent by the browser.
type clientMessage struct {
	Type      string `json:"type"`
	T         int64  `json:"t"`
	RotRight  bool   `json:"rr"`
	RotLeft   bool   `json:"rl"`
	Hold      bool   `json:"hold"`
	SoftDrop  bool   `json:"sd"`
	HardDrop  bool   `json:"hd"`
	MoveRight bool   `json:"mr"`
	MoveLeft  bool   `json:"ml"`
}

func (m clientMessage) keys() gamemaster.KeyPress {
	return gamemaster.KeyPress{
		RightRotate: m.RotRight,
		LeftRotate:  m.RotLeft,
		Hold:        m.Hold,
		SoftDrop:    m.SoftDrop,
		HardDrop:    m.HardDrop,
		RightMove:   m.MoveRight,
		LeftMove:    m.MoveLeft,
	}
}

// session owns one bridge for one websocket connection.
type session struct {
	conn    *websocket.Conn
	logger  *log.Logger
	store   *storage.Store
	cfg     config.TetrisConfig
	gameID  string
	garbage bool
	seed    int64

	mu      sync.Mutex
	bridge  *bridge.Bridge
	lines   tetris.LineCounter
	lastT   int64
	clientT int64
	synced  bool
	saved   bool
	frame   []byte
}

func (s *session) reset() error {
	b, err := tetris.NewBridge(s.cfg, s.garbage, s.seed)
	if err != nil {
		return err
	}
	b.RenderAll()

	s.mu.Lock()
	s.bridge = b
	s.lines.Reset()
	s.lastT = 0
	s.synced = false
	s.saved = false
	s.mu.Unlock()
	return nil
}

// advance maps the client clock onto the engine clock, which starts at zero
// on the first message of every game. A clock running backwards adds no time.
func (s *session) advance(clientT int64) int64 {
	if s.synced {
		s.lastT += min(max(clientT-s.clientT, 0), maxStepMs)
	}
	s.clientT = clientT
	s.synced = true
	return s.lastT
}

// step applies one input.
func (s *session) step(msg clientMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.advance(msg.T)
	s.bridge.StepKeys(t, msg.keys())
	s.bridge.RenderAll()
	s.lines.Observe(s.bridge.NumDeletedLines())

	if s.bridge.GameOver() && !s.saved {
		s.saved = true
		s.saveScore(t)
	}
}

func (s *session) saveScore(t int64) {
	lines := s.lines.Total()
	if s.store == nil || lines == 0 {
		return
	}
	_, err := s.store.SaveRun(storage.Run{
		GameID:   s.gameID,
		Lines:    lines,
		Seed:     s.seed,
		Duration: time.Duration(t) * time.Millisecond,
	})
	if err != nil {
		s.logger.Warn("could not save score", "error", err)
	}
}

func (s *session) writeFrame() error {
	s.mu.Lock()
	s.frame = EncodeFrame(s.frame, s.bridge)
	data := s.frame
	s.mu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.BinaryMessage, data)
}

// run reads client messages until the connection closes. Every accepted
// message is answered with one frame.
func (s *session) run() {
	if err := s.writeFrame(); err != nil {
		return
	}

	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("connection closed", "error", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.logger.Debug("discarding malformed message", "error", err)
			continue
		}

		switch msg.Type {
		case "input":
			s.step(msg)
		case "reset":
			s.seed++
			if err := s.reset(); err != nil {
				s.logger.Error("reset failed", "error", err)
				return
			}
		default:
			s.logger.Debug("unknown message type", "type", msg.Type)
			continue
		}

		if err := s.writeFrame(); err != nil {
			return
		}
	}
}
