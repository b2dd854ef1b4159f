package models

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Role      string    `json:"role" db:"role"`
	Content   string    `json:"content" db:"content"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// RoleCounts is the per-role aggregate behind the stats endpoint.
type RoleCounts struct {
	User      int64 `json:"user_messages"`
	Assistant int64 `json:"assistant_messages"`
}

func (rc RoleCounts) Total() int64 {
	return rc.User + rc.Assistant
}
