package runner

import "github.com/vovakirdan/trophy-runner/internal/core"

// Player is the entity the orchestrator tests objects against.
// Its bounding box must be stable for the whole frame after Move.
type Player interface {
	Move()
	Draw(s core.Surface)
	BoundingBox() core.Rect
}

// LaneSteerer is implemented by players that accept lane input.
type LaneSteerer interface {
	SetLane(l Lane)
	Lane() Lane
}

// LanePlayer holds a fixed vertical position near the bottom and moves
// between the three lanes.
type LanePlayer struct {
	field  Playfield
	image  core.Sprite
	x      int  // Center
	y      int  // Top edge
	target Lane // Lane being moved to
	speed  int  // Pixels per frame, 0 = snap
}

// NewLanePlayer creates a player in the middle lane with its top edge
// bottomOffset pixels above the playfield bottom.
func NewLanePlayer(field Playfield, image core.Sprite, bottomOffset, speed int) *LanePlayer {
	return &LanePlayer{
		field:  field,
		image:  image,
		x:      field.LaneX(LaneMiddle),
		y:      field.Height - bottomOffset,
		target: LaneMiddle,
		speed:  speed,
	}
}

// SetLane selects the lane to move to on the following Move calls.
func (p *LanePlayer) SetLane(l Lane) {
	p.target = l
}

// Lane returns the target lane.
func (p *LanePlayer) Lane() Lane {
	return p.target
}

// X returns the current center x-coordinate.
func (p *LanePlayer) X() int {
	return p.x
}

// Move advances toward the target lane.
func (p *LanePlayer) Move() {
	tx := p.field.LaneX(p.target)
	if p.speed <= 0 {
		p.x = tx
		return
	}
	p.x += core.Clamp(tx-p.x, -p.speed, p.speed)
}

// BoundingBox returns the sprite box centered on the current x.
func (p *LanePlayer) BoundingBox() core.Rect {
	w, h := p.image.Size()
	return core.CenteredRect(p.x, p.y, w, h)
}

// Draw renders the player sprite. Unready sprites are skipped.
func (p *LanePlayer) Draw(s core.Surface) {
	if !p.image.Ready() {
		return
	}
	w, _ := p.image.Size()
	s.DrawImage(p.image, p.x-w/2, p.y)
}
