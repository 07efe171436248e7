// Package notify delivers user notifications.
package notify

import (
	"log/slog"
	"sync"

	"roadmap/internal/ports"
)

// Logger writes notifications to a structured logger
type Logger struct {
	logger *slog.Logger
}

// NewLogger creates a notifier backed by logger
func NewLogger(logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{logger: logger}
}

func (l *Logger) Notify(n ports.Notification) {
	if n.Level == ports.LevelError {
		l.logger.Error(n.Title, "description", n.Description)
		return
	}
	l.logger.Info(n.Title, "description", n.Description)
}

// Queue buffers notifications until a surface drains them
type Queue struct {
	mu    sync.Mutex
	items []ports.Notification
	next  ports.Notifier
}

// NewQueue creates a queue. Every notification is also forwarded to next, if set.
func NewQueue(next ports.Notifier) *Queue {
	return &Queue{next: next}
}

func (q *Queue) Notify(n ports.Notification) {
	q.mu.Lock()
	q.items = append(q.items, n)
	q.mu.Unlock()

	if q.next != nil {
		q.next.Notify(n)
	}
}

// Drain returns and clears the buffered notifications
func (q *Queue) Drain() []ports.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}

// Multi fans a notification out to several notifiers
type Multi []ports.Notifier

func (m Multi) Notify(n ports.Notification) {
	for _, target := range m {
		if target != nil {
			target.Notify(n)
		}
	}
}
