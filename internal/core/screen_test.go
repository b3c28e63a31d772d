package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen not blank at (%d, %d): %+v", x, y, c)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, Cell{Rune: 'X', Color: ColorYellow})
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorYellow {
		t.Errorf("GetCell(5, 5) = %+v", c)
	}
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds writes are silent, reads return blank cells.
	s.SetCell(-1, 0, Cell{Rune: 'A'})
	s.SetCell(100, 0, Cell{Rune: 'A'})
	s.SetCell(0, -1, Cell{Rune: 'A'})
	s.SetCell(0, 100, Cell{Rune: 'A'})

	if c := s.GetCell(-1, 0); c.Rune != ' ' || c.Color != ColorDefault {
		t.Error("out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClearDropsColors(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "colored", ColorGreen)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("cell (%d, %d) not cleared: %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text is clipped at boundaries.
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at the right boundary")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(3, 2, "cube", ColorYellow)

	for i := range "cube" {
		if c := s.GetCell(3+i, 2); c.Color != ColorYellow {
			t.Errorf("cell %d color = %d, expected ColorYellow", i, c.Color)
		}
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Error("DrawTextCentered misplaced text")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("dimensions after resize = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content lost on shrink, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content lost on grow, row 0 = %q", s.Row(0))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) = %q", row)
	}
	if len(row) != 10 {
		t.Errorf("row length = %d, expected 10", len(row))
	}

	if s.Row(-1) != "          " {
		t.Errorf("out of bounds row = %q, expected spaces", s.Row(-1))
	}
}
