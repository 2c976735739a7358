// Package notify carries transient user-facing messages (toasts).
package notify

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
)

// DefaultDuration is how long a toast stays visible unless overridden.
const DefaultDuration = 4 * time.Second

// Level is the tone of a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a short message with an optional detail line.
type Notification struct {
	Level       Level
	Title       string
	Description string
	Duration    time.Duration
}

// Info, Success and Error build notifications with the default duration.
func Info(title, description string) Notification {
	return Notification{Level: LevelInfo, Title: title, Description: description, Duration: DefaultDuration}
}

func Success(title, description string) Notification {
	return Notification{Level: LevelSuccess, Title: title, Description: description, Duration: DefaultDuration}
}

func Error(title, description string) Notification {
	return Notification{Level: LevelError, Title: title, Description: description, Duration: DefaultDuration}
}

// Sink receives notifications.
type Sink interface {
	Notify(n Notification)
}

// LogSink records notifications in the application log.
type LogSink struct {
	Log zerolog.Logger
}

func (s LogSink) Notify(n Notification) {
	ev := s.Log.Info()
	if n.Level == LevelError {
		ev = s.Log.Warn()
	}
	ev.Str("tone", n.Level.String()).
		Str("title", n.Title).
		Str("description", n.Description).
		Msg("notification")
}

// Msg asks the app host to show a notification.
type Msg struct {
	Notification Notification
}

// Cmd wraps a notification as a command for the app host.
func Cmd(n Notification) tea.Cmd {
	return func() tea.Msg { return Msg{Notification: n} }
}
