package core

import "unicode/utf8"

// Align controls horizontal text placement relative to the anchor x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Sprite is an opaque image reference resolved by the asset collaborator.
// The simulation only reads its size; surfaces read the rest.
type Sprite interface {
	ID() string
	Size() (w, h int)
	Ready() bool
	Art() []string
	Color() Color
}

// Surface is the drawing target the game renders into.
// Coordinates are playfield pixels with a top-left origin.
type Surface interface {
	Clear(r Rect)
	DrawImage(img Sprite, x, y int)
	DrawText(text string, x, y, fontSizePx int, color Color, align Align)
}

// Scale maps playfield pixels onto terminal cells.
type Scale struct {
	ColumnPx int // Pixels per terminal column
	RowPx    int // Pixels per terminal row
}

// ToCell converts a pixel coordinate to the cell containing it.
func (s Scale) ToCell(x, y int) (int, int) {
	return floorDiv(x, s.ColumnPx), floorDiv(y, s.RowPx)
}

// Pixels returns the pixel size of a cols x rows cell area.
func (s Scale) Pixels(cols, rows int) (int, int) {
	return cols * s.ColumnPx, rows * s.RowPx
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ScreenSurface draws pixel-space primitives onto a cell Screen.
// Font size has no effect: terminal cells have a fixed size.
type ScreenSurface struct {
	screen *Screen
	scale  Scale
}

// NewScreenSurface wraps a screen with the given pixel scale.
func NewScreenSurface(screen *Screen, scale Scale) *ScreenSurface {
	return &ScreenSurface{screen: screen, scale: scale}
}

// Clear blanks every cell the pixel rectangle touches.
func (s *ScreenSurface) Clear(r Rect) {
	x0, y0 := s.scale.ToCell(r.X, r.Y)
	x1 := CeilDiv(r.Right(), s.scale.ColumnPx)
	y1 := CeilDiv(r.Bottom(), s.scale.RowPx)
	s.screen.ClearRect(NewRect(x0, y0, x1-x0, y1-y0))
}

// DrawImage blits the sprite art with its top-left corner at (x, y).
// Sprites that are not ready are skipped; spaces in the art are transparent.
func (s *ScreenSurface) DrawImage(img Sprite, x, y int) {
	if img == nil || !img.Ready() {
		return
	}
	col, row := s.scale.ToCell(x, y)
	color := img.Color()
	for dy, line := range img.Art() {
		dx := 0
		for _, r := range line {
			if r != ' ' {
				s.screen.SetCell(col+dx, row+dy, r, color)
			}
			dx++
		}
	}
}

// DrawText writes text anchored at pixel (x, y).
func (s *ScreenSurface) DrawText(text string, x, y, _ int, color Color, align Align) {
	col, row := s.scale.ToCell(x, y)
	switch align {
	case AlignCenter:
		s.screen.DrawTextCentered(col, row, text, color)
	case AlignRight:
		s.screen.DrawText(col-utf8.RuneCountInString(text), row, text, color)
	default:
		s.screen.DrawText(col, row, text, color)
	}
}
