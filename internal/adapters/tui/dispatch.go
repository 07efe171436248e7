package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// RunMsg carries a callback to run on the update loop
type RunMsg struct {
	Fn func()
}

// Dispatcher hands scheduler callbacks to a running program so timer ticks
// mutate the catalog on the same goroutine as key presses
type Dispatcher struct {
	mu      sync.Mutex
	program *tea.Program
}

// Attach sets the program callbacks are sent to
func (d *Dispatcher) Attach(p *tea.Program) {
	d.mu.Lock()
	d.program = p
	d.mu.Unlock()
}

// Dispatch sends fn to the program, or runs it directly when none is attached
func (d *Dispatcher) Dispatch(fn func()) {
	d.mu.Lock()
	p := d.program
	d.mu.Unlock()

	if p == nil {
		fn()
		return
	}
	p.Send(RunMsg{Fn: fn})
}
