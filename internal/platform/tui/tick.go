// Package tui provides the Bubble Tea host for the runner.
// It owns the terminal, maps keys to actions, and turns tea.Tick messages
// into frames for the injected frame scheduler.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/trophy-runner/internal/frame"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// TickScheduler is a frame.Scheduler driven by tea.Tick.
// A requested callback runs on the next TickMsg; ticks are only requested
// while a callback is pending, so a halted loop stops the ticking too.
type TickScheduler struct {
	frame.ManualScheduler
	rate int
}

// NewTickScheduler creates a scheduler ticking at rate frames per second.
func NewTickScheduler(rate int) *TickScheduler {
	return &TickScheduler{rate: rate}
}

// Next returns the command delivering the next frame, or nil when idle.
func (s *TickScheduler) Next() tea.Cmd {
	if !s.Pending() {
		return nil
	}
	return tickCmd(s.rate)
}

// OnTick runs the pending frame and returns the command for the one after.
func (s *TickScheduler) OnTick() tea.Cmd {
	s.Fire()
	return s.Next()
}
