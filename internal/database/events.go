package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxEventPage bounds how many journal entries one read returns.
const MaxEventPage = 100

// journalEntry is what gets stored and pushed for a mutation.
type journalEntry struct {
	EventType string      `json:"event_type"`
	Payload   interface{} `json:"payload"`
}

// LogEvent journals a mutation for the user and pushes it to the publisher
// once stored.
func (s *Store) LogEvent(ctx context.Context, userID uuid.UUID, eventType string, payload interface{}) error {
	entry, err := json.Marshal(journalEntry{EventType: eventType, Payload: payload})
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", eventType, err)
	}

	if _, err := s.pool.Exec(ctx,
		`INSERT INTO event_journal (user_id, event_type, payload) VALUES ($1, $2, $3)`,
		userID, eventType, entry,
	); err != nil {
		return fmt.Errorf("failed to journal %s event: %w", eventType, err)
	}

	if s.events != nil {
		s.events.PublishEvent(userID, entry)
	}
	return nil
}

type Event struct {
	ID        int64           `json:"id"`
	EventType string          `json:"event_type"`
	EventTime time.Time       `json:"event_time"`
	Payload   json.RawMessage `json:"payload" swaggertype:"object"`
}

// GetEventsSince returns the user's journal entries after sinceID, oldest
// first. limit is clamped to 1..MaxEventPage.
func (q *Queries) GetEventsSince(ctx context.Context, userID uuid.UUID, sinceID int64, limit int) ([]Event, error) {
	if limit <= 0 || limit > MaxEventPage {
		limit = MaxEventPage
	}

	rows, err := q.db.Query(ctx, `
		SELECT id, event_type, event_time, payload
		FROM event_journal
		WHERE user_id = $1 AND id > $2
		ORDER BY id
		LIMIT $3
	`, userID, sinceID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.EventType, &e.EventTime, &e.Payload); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
