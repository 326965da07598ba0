package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(30, 32)

	if s.Width() != 30 || s.Height() != 32 {
		t.Fatalf("size = %dx%d, expected 30x32", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", c)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, 'A', ColorRed)
	s.SetCell(100, 0, 'A', ColorRed)
	s.SetCell(0, 100, 'A', ColorRed)

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClearRect(t *testing.T) {
	s := NewScreen(6, 6)
	for y := 0; y < 6; y++ {
		s.DrawText(0, y, "XXXXXX", ColorDefault)
	}

	s.ClearRect(NewRect(-2, 1, 4, 2))

	if s.GetCell(1, 1).Rune != ' ' || s.GetCell(0, 2).Rune != ' ' {
		t.Error("ClearRect should blank the clipped area")
	}
	if s.GetCell(2, 1).Rune != 'X' || s.GetCell(0, 3).Rune != 'X' {
		t.Error("ClearRect should not touch cells outside the rect")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(18, 0, "Héllo", ColorGreen)

	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'é' {
		t.Errorf("text should be clipped at right boundary, row = %q", s.Row(0))
	}
	if s.GetCell(19, 0).Color != ColorGreen {
		t.Error("text color not applied")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(10, 2, "Score", ColorRed)

	if !strings.HasPrefix(s.Row(2)[8:], "Score") {
		t.Errorf("centered text misplaced, row = %q", s.Row(2))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(1, 1, "ab", ColorDefault)

	if got := s.Row(1); got != " ab " {
		t.Errorf("Row(1) = %q, expected %q", got, " ab ")
	}
	if got := s.Row(5); got != "    " {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}
