package database

import (
	"context"
	"errors"
	"svg-vault/internal/models"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, email_confirmed_at, created_at, last_sign_in_at`

func scanUser(row scanner) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.EmailConfirmedAt,
		&user.CreatedAt,
		&user.LastSignInAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(q.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (q *Queries) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(q.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// CreateUser registers a user whose email has just been confirmed by a one-time code.
func (q *Queries) CreateUser(ctx context.Context, email string) (*models.User, error) {
	query := `
		INSERT INTO users (id, email, email_confirmed_at, created_at)
		VALUES ($1, $2, $3, $3)
		RETURNING ` + userColumns

	now := time.Now()
	user, err := scanUser(q.db.QueryRow(ctx, query, uuid.New(), email, now))
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (q *Queries) TouchLastSignIn(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		UPDATE users
		SET last_sign_in_at = $2,
			email_confirmed_at = COALESCE(email_confirmed_at, $2)
		WHERE id = $1
		RETURNING ` + userColumns

	user, err := scanUser(q.db.QueryRow(ctx, query, id, time.Now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (q *Queries) DeleteUserRow(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := q.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
