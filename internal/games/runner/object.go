package runner

import "github.com/vovakirdan/trophy-runner/internal/core"

// ObjectState is the lifecycle position of a scoring object.
type ObjectState int

const (
	StateSpawned   ObjectState = iota // Created, not yet moved
	StateActive                       // Falling
	StateCollected                    // Removed by touching the player
	StateExited                       // Removed by crossing the bottom edge
)

// String returns the state name.
func (s ObjectState) String() string {
	switch s {
	case StateSpawned:
		return "spawned"
	case StateActive:
		return "active"
	case StateCollected:
		return "collected"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}

// ScoringObject is a falling entity worth a fixed number of points.
// Its lane, speed and value never change; once removed it is never mutated again.
type ScoringObject struct {
	id     int
	kind   Kind
	lane   Lane
	x      int // Lane center
	y      int // Top edge
	speed  int
	points int
	image  core.Sprite
	state  ObjectState
}

func newScoringObject(id int, kind Kind, lane Lane, x, startY, speed int, image core.Sprite) *ScoringObject {
	return &ScoringObject{
		id:     id,
		kind:   kind,
		lane:   lane,
		x:      x,
		y:      startY,
		speed:  speed,
		points: kind.Variant().Points,
		image:  image,
		state:  StateSpawned,
	}
}

// Move drops the object by its speed.
func (o *ScoringObject) Move() {
	if o.Removed() {
		return
	}
	o.y += o.speed
	o.state = StateActive
}

// CollidesWithPlayfieldBottom reports whether the bottom edge is past height.
func (o *ScoringObject) CollidesWithPlayfieldBottom(height int) bool {
	_, h := o.image.Size()
	return o.y+h > height
}

// BoundingBox returns the sprite box centered on the lane.
// It is empty while the sprite is not ready.
func (o *ScoringObject) BoundingBox() core.Rect {
	w, h := o.image.Size()
	return core.CenteredRect(o.x, o.y, w, h)
}

// Draw renders the sprite centered on the lane. Unready sprites are skipped.
func (o *ScoringObject) Draw(s core.Surface) {
	if !o.image.Ready() {
		return
	}
	w, _ := o.image.Size()
	s.DrawImage(o.image, o.x-w/2, o.y)
}

// remove moves the object to a terminal state. It returns false if the
// object was already removed.
func (o *ScoringObject) remove(state ObjectState) bool {
	if o.Removed() {
		return false
	}
	o.state = state
	return true
}

// Removed reports whether the object reached a terminal state.
func (o *ScoringObject) Removed() bool {
	return o.state == StateCollected || o.state == StateExited
}

// Points returns the signed value added to the score on collection.
func (o *ScoringObject) Points() int { return o.points }

// ID returns the per-game spawn number.
func (o *ScoringObject) ID() int { return o.id }

// Kind returns the variant.
func (o *ScoringObject) Kind() Kind { return o.kind }

// Lane returns the lane fixed at spawn.
func (o *ScoringObject) Lane() Lane { return o.lane }

// X returns the lane center the sprite is drawn around.
func (o *ScoringObject) X() int { return o.x }

// Y returns the top edge.
func (o *ScoringObject) Y() int { return o.y }

// Speed returns the fall speed in pixels per frame.
func (o *ScoringObject) Speed() int { return o.speed }

// State returns the lifecycle state.
func (o *ScoringObject) State() ObjectState { return o.state }
