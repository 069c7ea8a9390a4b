package notify

import (
	"time"

	"github.com/google/uuid"
)

// Level classifies a notification for UI presentation.
type Level string

const (
	LevelError   Level = "error"
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
)

// Notification is a single user-visible message emitted by the SDK.
// IDs are unique but carry no ordering guarantee beyond CreatedAt.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// New creates a notification with a generated ID and current timestamp.
func New(level Level, message string) Notification {
	return Notification{
		ID:        uuid.New(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}
}
