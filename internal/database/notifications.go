package database

import (
	"context"
	"encoding/json"
	"fmt"
	"svg-vault/internal/models"

	"github.com/google/uuid"
)

type CreateNotificationParams struct {
	UserID  uuid.UUID
	Type    string
	Title   string
	Message string
	Data    interface{}
}

func (q *Queries) CreateNotification(ctx context.Context, arg CreateNotificationParams) (*models.Notification, error) {
	data := []byte("{}")
	if arg.Data != nil {
		var err error
		data, err = json.Marshal(arg.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal notification data: %w", err)
		}
	}

	query := `
		INSERT INTO notifications (user_id, type, title, message, data, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, user_id, type, title, message, data, read_at, created_at
	`
	var n models.Notification
	err := q.db.QueryRow(ctx, query, arg.UserID, arg.Type, arg.Title, arg.Message, data).Scan(
		&n.ID,
		&n.UserID,
		&n.Type,
		&n.Title,
		&n.Message,
		&n.Data,
		&n.ReadAt,
		&n.CreatedAt,
	)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (q *Queries) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]models.Notification, error) {
	query := `
		SELECT id, user_id, type, title, message, data, read_at, created_at
		FROM notifications
		WHERE user_id = $1 AND (NOT $2 OR read_at IS NULL)
		ORDER BY created_at DESC, id DESC
		LIMIT $3
	`
	rows, err := q.db.Query(ctx, query, userID, unreadOnly, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Type,
			&n.Title,
			&n.Message,
			&n.Data,
			&n.ReadAt,
			&n.CreatedAt,
		); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkNotificationRead is idempotent: an already read notification keeps its read_at.
func (q *Queries) MarkNotificationRead(ctx context.Context, id int64, userID uuid.UUID) error {
	query := `
		UPDATE notifications
		SET read_at = COALESCE(read_at, NOW())
		WHERE id = $1 AND user_id = $2
	`
	res, err := q.db.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
