package runner

import (
	"testing"

	"github.com/vovakirdan/trophy-runner/internal/core"
)

func TestAutoPilotChoosesLane(t *testing.T) {
	tests := []struct {
		name    string
		objects func(g *Game) []*ScoringObject
		want    core.Action
	}{
		{
			name:    "empty field stays",
			objects: func(g *Game) []*ScoringObject { return nil },
			want:    core.ActionMiddle,
		},
		{
			name: "chases reward",
			objects: func(g *Game) []*ScoringObject {
				return []*ScoringObject{goldAt(g, 1, LaneRight, 400)}
			},
			want: core.ActionRight,
		},
		{
			name: "dodges penalty",
			objects: func(g *Game) []*ScoringObject {
				return []*ScoringObject{
					objectAt(g, 1, KindLightningBolt, LaneMiddle, 400),
					objectAt(g, 2, KindRedCross, LaneLeft, 400),
				}
			},
			want: core.ActionRight,
		},
		{
			name: "nearest object decides",
			objects: func(g *Game) []*ScoringObject {
				return []*ScoringObject{
					objectAt(g, 1, KindRedCross, LaneLeft, 500),
					goldAt(g, 2, LaneLeft, 200),
					objectAt(g, 3, KindSilverTrophy, LaneMiddle, 300),
				}
			},
			want: core.ActionMiddle,
		},
		{
			name: "ignores objects below the player",
			objects: func(g *Game) []*ScoringObject {
				return []*ScoringObject{goldAt(g, 1, LaneLeft, 760)}
			},
			want: core.ActionMiddle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			g.objects = tt.objects(g)

			in := NewAutoPilot(g).Next()
			if got := in.LaneAction(); got != tt.want {
				t.Errorf("LaneAction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAutoPilotAvoidsPenalties(t *testing.T) {
	g := newTestGame(t, 8)
	pilot := NewAutoPilot(g)

	for i := 0; i < 5000; i++ {
		g.Step(pilot.Next())
		for _, e := range g.Events() {
			if e.Kind == EventCollected && e.Points < 0 {
				t.Fatalf("frame %d: collected %v", e.Frame, e.Variant)
			}
		}
	}
	if g.Stats().Total().Collected == 0 {
		t.Error("autopilot collected nothing")
	}
	if g.Score() < 0 {
		t.Errorf("score = %d", g.Score())
	}
}

func objectAt(g *Game, id int, kind Kind, lane Lane, y int) *ScoringObject {
	return newScoringObject(id, kind, lane, g.field.LaneX(lane), y, g.cfg.Objects.Speed, g.catalog.Image(kind.Variant().Sprite))
}
