package runner

import "github.com/vovakirdan/trophy-runner/internal/core"

// Lane is one of the three fixed columns objects and the player occupy.
type Lane int

const (
	LaneLeft Lane = iota
	LaneMiddle
	LaneRight

	laneCount = 3
)

// String returns the lane name.
func (l Lane) String() string {
	switch l {
	case LaneLeft:
		return "left"
	case LaneMiddle:
		return "middle"
	case LaneRight:
		return "right"
	default:
		return "unknown"
	}
}

// Playfield is the fixed simulation area in pixels.
// Lane x-coordinates are derived once from the width.
type Playfield struct {
	Width  int
	Height int
	lanes  [laneCount]int
}

// NewPlayfield creates a playfield and computes its lane centers
// at width/4, width/2 and width*3/4.
func NewPlayfield(width, height int) Playfield {
	return Playfield{
		Width:  width,
		Height: height,
		lanes:  [laneCount]int{width / 4, width / 2, width / 4 * 3},
	}
}

// LaneX returns the x-coordinate of a lane center.
func (p Playfield) LaneX(l Lane) int {
	return p.lanes[l]
}

// Bounds returns the playfield rectangle.
func (p Playfield) Bounds() core.Rect {
	return core.NewRect(0, 0, p.Width, p.Height)
}
