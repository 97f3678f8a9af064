package core

import "testing"

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 3x2", s.Width(), s.Height())
	}
	if got := s.String(); got != "   \n   " {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(4, 3)
	s.Set(1, 2, 'X')
	if s.Get(1, 2) != 'X' {
		t.Errorf("Get(1, 2) = %q, expected 'X'", s.Get(1, 2))
	}

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		s.Set(p[0], p[1], 'A')
		if got := s.GetCell(p[0], p[1]); got != blank {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], got)
		}
	}
	if got := s.String(); got != "    \n    \n X  " {
		t.Errorf("out-of-bounds writes leaked: %q", got)
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(4, 2)
	red := RGBA(1, 0, 0, 1)

	s.SetCell(1, 1, '#', red)
	if c := s.GetCell(1, 1); c.Rune != '#' || c.Color != red {
		t.Errorf("GetCell(1, 1) = %+v, expected '#' in red", c)
	}

	s.DrawTextColor(0, 0, "ab", ColorCyan)
	for x := range 2 {
		if s.GetCell(x, 0).Color != ColorCyan {
			t.Errorf("cell %d not colored", x)
		}
	}

	s.Clear()
	if s.GetCell(1, 1) != blank {
		t.Errorf("Clear should reset color, got %+v", s.GetCell(1, 1))
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want string
	}{
		{"plain", func(s *Screen) { s.DrawText(1, 0, "Hi") }, " Hi   "},
		{"clipped right", func(s *Screen) { s.DrawText(4, 0, "Hello") }, "    He"},
		{"clipped left", func(s *Screen) { s.DrawText(-2, 0, "Hello") }, "llo   "},
		{"centered", func(s *Screen) { s.DrawTextCentered(0, "Hi") }, "  Hi  "},
		{"multibyte", func(s *Screen) { s.DrawText(0, 0, "█░") }, "█░    "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(6, 1)
			tt.draw(s)
			if got := s.Row(0); got != tt.want {
				t.Errorf("Row(0) = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(1, 0, 4, 3), ColorGray)

	want := " ┌──┐ \n │  │ \n └──┘ \n      "
	if got := s.String(); got != want {
		t.Errorf("box:\n%s\nexpected:\n%s", got, want)
	}
	if s.GetCell(1, 0).Color != ColorGray || s.GetCell(4, 1).Color != ColorGray {
		t.Error("box should use the given color")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 2, "World")

	s.Resize(3, 2)
	if got := s.String(); got != "Hel\n   " {
		t.Errorf("after shrink: %q", got)
	}

	s.Resize(6, 3)
	if got := s.String(); got != "Hel   \n      \n      " {
		t.Errorf("after grow: %q", got)
	}

	s.Resize(-1, 2)
	if s.Width() != 0 || s.String() != "\n" {
		t.Errorf("negative width should clamp to zero, got %dx%d", s.Width(), s.Height())
	}
}

func TestScreenRows(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 1, "Test")

	if got := s.Row(1); got != "Test" {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.Row(-1); got != "    " {
		t.Errorf("out-of-bounds Row = %q, expected spaces", got)
	}
	if s.RowCells(2) != nil {
		t.Error("out-of-bounds RowCells should be nil")
	}

	s.RowCells(0)[3] = Cell{Rune: 'z'}
	if s.Get(3, 0) != 'z' {
		t.Error("RowCells should alias the screen")
	}
}
