package commands

import (
	"context"
	"fmt"

	"roadmap/internal/application"
	"roadmap/internal/domain"
)

// ToggleTimerResult contains the result of starting or stopping the timer
type ToggleTimerResult struct {
	Event   application.TimerEvent
	Message string
}

// ToggleTimerCommand starts the timer on a topic, or stops it if it already runs there
type ToggleTimerCommand struct {
	timer Timer
	At    domain.Coordinate
}

// NewToggleTimerCommand creates a new ToggleTimerCommand
func NewToggleTimerCommand(timer Timer, at domain.Coordinate) *ToggleTimerCommand {
	return &ToggleTimerCommand{timer: timer, At: at}
}

// Execute runs the toggle
func (c *ToggleTimerCommand) Execute(ctx context.Context) (*ToggleTimerResult, error) {
	ev, err := c.timer.Toggle(ctx, c.At)
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Timer started: %s", ev.Title)
	if ev.Kind == application.TimerStopped {
		msg = fmt.Sprintf("Timer stopped: %s", ev.Title)
	}
	return &ToggleTimerResult{Event: ev, Message: msg}, nil
}
