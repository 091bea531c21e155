package database

import (
	"context"
	"errors"
	"svg-vault/internal/models"
	"time"

	"github.com/jackc/pgx/v5"
)

// UpsertOTPChallenge replaces any pending code for the email.
func (q *Queries) UpsertOTPChallenge(ctx context.Context, email, codeHash string, expiresAt time.Time) error {
	query := `
		INSERT INTO otp_challenges (email, code_hash, attempts, expires_at, created_at)
		VALUES ($1, $2, 0, $3, NOW())
		ON CONFLICT (email) DO UPDATE
		SET code_hash = EXCLUDED.code_hash,
			attempts = 0,
			expires_at = EXCLUDED.expires_at,
			created_at = EXCLUDED.created_at
	`
	_, err := q.db.Exec(ctx, query, email, codeHash, expiresAt)
	return err
}

func (q *Queries) GetOTPChallenge(ctx context.Context, email string) (*models.OTPChallenge, error) {
	query := `
		SELECT email, code_hash, attempts, expires_at, created_at
		FROM otp_challenges
		WHERE email = $1
	`
	var c models.OTPChallenge
	err := q.db.QueryRow(ctx, query, email).Scan(
		&c.Email,
		&c.CodeHash,
		&c.Attempts,
		&c.ExpiresAt,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// ClaimOTPAttempt counts one verification attempt against the email's
// pending code and returns its hash. ok is false when there is no live
// challenge left to try: none was issued, it expired, or its attempts are used up.
func (q *Queries) ClaimOTPAttempt(ctx context.Context, email string, maxAttempts int) (codeHash string, ok bool, err error) {
	query := `
		UPDATE otp_challenges
		SET attempts = attempts + 1
		WHERE email = $1 AND attempts < $2 AND expires_at > NOW()
		RETURNING code_hash
	`
	err = q.db.QueryRow(ctx, query, email, maxAttempts).Scan(&codeHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return codeHash, true, nil
}

// ConsumeOTPChallenge deletes the challenge only if it still holds codeHash.
// It reports false when another request consumed or replaced it first.
func (q *Queries) ConsumeOTPChallenge(ctx context.Context, email, codeHash string) (bool, error) {
	tag, err := q.db.Exec(ctx, `DELETE FROM otp_challenges WHERE email = $1 AND code_hash = $2`, email, codeHash)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteExpiredOTPChallenge drops the email's challenge once it has expired.
// Exhausted challenges stay until the next code replaces them, since a
// request holding the last attempt may still be consuming it.
func (q *Queries) DeleteExpiredOTPChallenge(ctx context.Context, email string) error {
	_, err := q.db.Exec(ctx, `DELETE FROM otp_challenges WHERE email = $1 AND expires_at <= NOW()`, email)
	return err
}
