package database

import (
	"context"
	"svg-vault/internal/models"
	"time"

	"github.com/google/uuid"
)

// GetUsageTotals aggregates a user's projects and SVGs in a single round trip.
func (q *Queries) GetUsageTotals(ctx context.Context, userID uuid.UUID) (*models.UsageTotals, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM projects WHERE user_id = $1),
			COUNT(s.id),
			COALESCE(SUM(s.views), 0)::BIGINT,
			COALESCE(SUM(s.downloads), 0)::BIGINT,
			COUNT(s.id) FILTER (WHERE s.favorited),
			COALESCE(SUM(s.file_size), 0)::BIGINT
		FROM svgs s
		WHERE s.user_id = $1
	`
	var t models.UsageTotals
	err := q.db.QueryRow(ctx, query, userID).Scan(
		&t.Projects,
		&t.SVGs,
		&t.Views,
		&t.Downloads,
		&t.Favorites,
		&t.StorageBytes,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CountUploads counts the user's SVGs created in [from, to).
func (q *Queries) CountUploads(ctx context.Context, userID uuid.UUID, from, to time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM svgs
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
	`
	var n int64
	err := q.db.QueryRow(ctx, query, userID, from, to).Scan(&n)
	return n, err
}
