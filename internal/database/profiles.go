package database

import (
	"context"
	"errors"
	"svg-vault/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (q *Queries) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	query := `SELECT user_id, display_name, avatar_url, updated_at FROM profiles WHERE user_id = $1`

	var p models.Profile
	err := q.db.QueryRow(ctx, query, userID).Scan(&p.UserID, &p.DisplayName, &p.AvatarURL, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

type UpsertProfileParams struct {
	UserID      uuid.UUID
	DisplayName *string
	AvatarURL   *string
}

// UpsertProfile creates the profile row or updates the fields that are set.
// Nil fields keep their stored value.
func (q *Queries) UpsertProfile(ctx context.Context, arg UpsertProfileParams) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (user_id, display_name, avatar_url, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET display_name = COALESCE(EXCLUDED.display_name, profiles.display_name),
			avatar_url = COALESCE(EXCLUDED.avatar_url, profiles.avatar_url),
			updated_at = NOW()
		RETURNING user_id, display_name, avatar_url, updated_at
	`
	var p models.Profile
	err := q.db.QueryRow(ctx, query, arg.UserID, arg.DisplayName, arg.AvatarURL).Scan(
		&p.UserID, &p.DisplayName, &p.AvatarURL, &p.UpdatedAt,
	)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (q *Queries) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	_, err := q.db.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	return err
}
