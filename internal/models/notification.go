package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const NotificationTypeFork = "fork"

type Notification struct {
	ID        int64           `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Type      string          `json:"type" example:"fork"`
	Title     string          `json:"title" example:"Project Forked"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data" swaggertype:"object"`
	ReadAt    *time.Time      `json:"read_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
