package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// styleCache holds one lipgloss style per distinct packed color. Piece
// colors come from float RGBA, so the set is open-ended and built lazily.
type styleCache struct {
	mu     sync.Mutex
	styles *intmap.Map[core.Color, lipgloss.Style]
}

func newStyleCache() *styleCache {
	return &styleCache{styles: intmap.New[core.Color, lipgloss.Style](32)}
}

var styles = newStyleCache()

func (c *styleCache) get(color core.Color) lipgloss.Style {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.styles.Get(color); ok {
		return s
	}
	s := lipgloss.NewStyle()
	if color != core.ColorDefault {
		hex := fmt.Sprintf("#%02X%02X%02X", color.R(), color.G(), color.B())
		s = s.Foreground(lipgloss.Color(hex))
	}
	c.styles.Put(color, s)
	return s
}

func (c *styleCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.styles.Len()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		row := s.RowCells(y)
		for start := 0; start < len(row); {
			color := row[start].Color
			run.Reset()
			end := start
			for end < len(row) && row[end].Color == color {
				run.WriteRune(row[end].Rune)
				end++
			}
			sb.WriteString(styles.get(color).Render(run.String()))
			start = end
		}
	}
	return sb.String()
}
