// Package frame drives a game one frame at a time through an injected
// scheduler. The host owns real timing (display refresh, tea.Tick); tests and
// headless runs use ManualScheduler to step frames synthetically.
package frame

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trophy-runner/internal/core"
)

// Scheduler runs a callback on the next frame.
// At most one callback is pending; requesting again replaces it.
type Scheduler interface {
	RequestFrame(fn func())
}

// Stepper is the simulation advanced once per frame.
type Stepper interface {
	Step(in core.InputFrame) core.StepResult
}

// InputSource supplies the input collected since the previous frame.
type InputSource func() core.InputFrame

// Presenter receives the state after each step. Hosts that render on their
// own schedule can pass nil.
type Presenter func(core.StepResult)

// Loop advances a Stepper once per scheduled frame and reschedules itself.
// The step closure is created once so every request hands the scheduler the
// same callback bound to this Loop.
type Loop struct {
	game    Stepper
	sched   Scheduler
	input   InputSource
	present Presenter
	logger  *log.Logger

	frames int
	last   core.StepResult
	step   func()
}

// NewLoop creates a loop. input and present may be nil.
func NewLoop(game Stepper, sched Scheduler, input InputSource, present Presenter, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	l := &Loop{
		game:    game,
		sched:   sched,
		input:   input,
		present: present,
		logger:  logger,
	}
	l.step = l.run
	return l
}

// Start requests the first frame. The loop then keeps itself scheduled.
func (l *Loop) Start() {
	l.logger.Info("start animation")
	l.sched.RequestFrame(l.step)
}

// run is the per-frame callback. A panic raised by the game propagates to
// the scheduler before the next frame is requested, which halts the loop.
func (l *Loop) run() {
	in := core.NewInputFrame()
	if l.input != nil {
		in = l.input()
	}

	l.last = l.game.Step(in)
	l.frames++

	if l.present != nil {
		l.present(l.last)
	}

	l.sched.RequestFrame(l.step)
}

// Frames returns how many frames the loop has completed.
func (l *Loop) Frames() int {
	return l.frames
}

// Last returns the result of the most recent frame.
func (l *Loop) Last() core.StepResult {
	return l.last
}
