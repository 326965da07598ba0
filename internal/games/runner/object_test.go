package runner

import (
	"testing"

	"github.com/vovakirdan/trophy-runner/internal/core"
)

type fakeSprite struct {
	w, h  int
	ready bool
}

func (s fakeSprite) ID() string { return "fake.png" }
func (s fakeSprite) Size() (int, int) {
	if !s.ready {
		return 0, 0
	}
	return s.w, s.h
}
func (s fakeSprite) Ready() bool       { return s.ready }
func (s fakeSprite) Art() []string     { return []string{"#"} }
func (s fakeSprite) Color() core.Color { return core.ColorWhite }

type point struct{ X, Y int }

type recordingSurface struct {
	images []point
}

func (s *recordingSurface) Clear(core.Rect) {}
func (s *recordingSurface) DrawImage(_ core.Sprite, x, y int) {
	s.images = append(s.images, point{X: x, Y: y})
}
func (s *recordingSurface) DrawText(string, int, int, int, core.Color, core.Align) {}

func TestObjectMove(t *testing.T) {
	o := newScoringObject(1, KindSilverTrophy, LaneLeft, 75, 60, 5, fakeSprite{50, 50, true})

	if o.State() != StateSpawned {
		t.Fatalf("initial state = %v", o.State())
	}
	o.Move()
	o.Move()
	if o.Y() != 70 {
		t.Errorf("y = %d, want 70", o.Y())
	}
	if o.X() != 75 || o.Lane() != LaneLeft {
		t.Errorf("object left its lane: x=%d lane=%v", o.X(), o.Lane())
	}
	if o.State() != StateActive {
		t.Errorf("state = %v, want active", o.State())
	}
}

func TestObjectRemovedIsFrozen(t *testing.T) {
	o := newScoringObject(1, KindGoldTrophy, LaneMiddle, 150, 60, 5, fakeSprite{50, 50, true})
	o.Move()

	if !o.remove(StateExited) {
		t.Fatal("first remove refused")
	}
	if o.remove(StateCollected) {
		t.Error("second remove accepted")
	}
	if o.State() != StateExited {
		t.Errorf("state = %v, want exited", o.State())
	}

	o.Move()
	if o.Y() != 65 {
		t.Errorf("removed object moved to %d", o.Y())
	}
}

func TestObjectBottomCollision(t *testing.T) {
	tests := []struct {
		y    int
		want bool
	}{
		{700, false},
		{749, false},
		{750, false}, // Bottom edge exactly on the boundary
		{751, true},
		{900, true},
	}

	for _, tt := range tests {
		o := newScoringObject(1, KindRedCross, LaneRight, 225, tt.y, 5, fakeSprite{50, 50, true})
		if got := o.CollidesWithPlayfieldBottom(800); got != tt.want {
			t.Errorf("y=%d: CollidesWithPlayfieldBottom = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestObjectPoints(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindGoldTrophy, 10},
		{KindSilverTrophy, 5},
		{KindRedCross, -5},
		{KindLightningBolt, -10},
	}

	for _, tt := range tests {
		o := newScoringObject(1, tt.kind, LaneLeft, 0, 0, 5, fakeSprite{})
		if got := o.Points(); got != tt.want {
			t.Errorf("%v points = %d, want %d", tt.kind, got, tt.want)
		}
		wantClass := ClassReward
		if tt.want < 0 {
			wantClass = ClassPenalty
		}
		if c := tt.kind.Variant().Class; c != wantClass {
			t.Errorf("%v class = %v, want %v", tt.kind, c, wantClass)
		}
	}
}

func TestObjectBoundingBoxCentered(t *testing.T) {
	o := newScoringObject(1, KindGoldTrophy, LaneMiddle, 150, 60, 5, fakeSprite{50, 40, true})

	want := core.Rect{X: 125, Y: 60, W: 50, H: 40}
	if got := o.BoundingBox(); got != want {
		t.Errorf("BoundingBox() = %+v, want %+v", got, want)
	}
}

func TestObjectDraw(t *testing.T) {
	ready := newScoringObject(1, KindGoldTrophy, LaneMiddle, 150, 60, 5, fakeSprite{50, 50, true})
	pending := newScoringObject(2, KindGoldTrophy, LaneMiddle, 150, 60, 5, fakeSprite{50, 50, false})

	s := &recordingSurface{}
	ready.Draw(s)
	pending.Draw(s)

	if len(s.images) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(s.images))
	}
	if s.images[0] != (point{X: 125, Y: 60}) {
		t.Errorf("drawn at %+v, want (125, 60)", s.images[0])
	}
	if !pending.BoundingBox().Empty() {
		t.Error("unready sprite has a non-empty box")
	}
}
