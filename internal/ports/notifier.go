package ports

// Level is the severity of a notification
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// Notification is a short user-visible message
type Notification struct {
	Title       string
	Description string
	Level       Level
}

// Notifier delivers notifications to whatever surface is attached
type Notifier interface {
	Notify(n Notification)
}
