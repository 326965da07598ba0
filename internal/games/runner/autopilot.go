package runner

import "github.com/vovakirdan/trophy-runner/internal/core"

// AutoPilot produces lane input for headless runs. Each frame it rates every
// lane by the nearest object still above the player and heads for the best
// one: rewards attract, penalties repel, empty lanes are neutral.
type AutoPilot struct {
	game *Game
}

// NewAutoPilot creates an input source steering the given game's player.
func NewAutoPilot(g *Game) *AutoPilot {
	return &AutoPilot{game: g}
}

// Next returns the input for the coming frame.
func (a *AutoPilot) Next() core.InputFrame {
	in := core.NewInputFrame()
	switch a.choose() {
	case LaneLeft:
		in.Set(core.ActionLeft)
	case LaneMiddle:
		in.Set(core.ActionMiddle)
	case LaneRight:
		in.Set(core.ActionRight)
	}
	return in
}

func (a *AutoPilot) choose() Lane {
	playerBottom := a.game.player.BoundingBox().Bottom()

	var (
		value   [laneCount]int
		nearest [laneCount]int
		seen    [laneCount]bool
	)
	for _, obj := range a.game.objects {
		if obj.y >= playerBottom {
			continue // Already below the player
		}
		if !seen[obj.lane] || obj.y > nearest[obj.lane] {
			seen[obj.lane] = true
			nearest[obj.lane] = obj.y
			value[obj.lane] = obj.points
		}
	}

	current := LaneMiddle
	if steer, ok := a.game.player.(LaneSteerer); ok {
		current = steer.Lane()
	}

	best := current
	for l := LaneLeft; l < laneCount; l++ {
		if value[l] > value[best] {
			best = l
		}
	}
	return best
}
