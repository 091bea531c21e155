package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"svg-vault/internal/database"
	"svg-vault/internal/models"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

var (
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrInvalidCode         = errors.New("token has expired or is invalid")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// CodeSender delivers one-time codes to an email address.
type CodeSender interface {
	SendCode(ctx context.Context, to, code string, ttl time.Duration) error
}

// BlobReleaser removes storage objects no database row references any more.
type BlobReleaser interface {
	Release(ctx context.Context, paths []string)
}

type Options struct {
	Secret          string
	AccessTTL       time.Duration
	RefreshTTL      time.Duration
	CodeTTL         time.Duration
	MaxCodeAttempts int
}

// Provider owns sign-in by one-time code, token issuance and sign-out.
type Provider struct {
	store         *database.Store
	sender        CodeSender
	opts          Options
	logger        *slog.Logger
	refreshTokens func() string
}

func NewProvider(store *database.Store, sender CodeSender, opts Options, logger *slog.Logger) (*Provider, error) {
	generateID, err := nanoid.Standard(40)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token generator: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		store:         store,
		sender:        sender,
		opts:          opts,
		logger:        logger,
		refreshTokens: generateID,
	}, nil
}

// Client describes where a session was opened from.
type Client struct {
	UserAgent string
	IP        string
}

type Session struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// SignIn replaces any pending code for email with a fresh one and mails it.
// No user or session is created until the code is verified.
func (p *Provider) SignIn(ctx context.Context, email string) error {
	email, err := NormalizeEmail(email)
	if err != nil {
		return err
	}

	code := GenerateCode()
	hash, err := HashCode(code)
	if err != nil {
		return fmt.Errorf("failed to hash code: %w", err)
	}

	if err := p.store.UpsertOTPChallenge(ctx, email, hash, time.Now().Add(p.opts.CodeTTL)); err != nil {
		return fmt.Errorf("failed to store code: %w", err)
	}

	if err := p.sender.SendCode(ctx, email, code, p.opts.CodeTTL); err != nil {
		return fmt.Errorf("failed to send code: %w", err)
	}

	p.logger.Info("one-time code sent", "email", email)
	return nil
}

// VerifyOTP exchanges a valid code for a session, creating the user on first sign-in.
func (p *Provider) VerifyOTP(ctx context.Context, email, code string, client Client) (*Session, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if !IsCodeShaped(code) {
		return nil, ErrInvalidCode
	}

	codeHash, ok, err := p.store.ClaimOTPAttempt(ctx, email, p.opts.MaxCodeAttempts)
	if err != nil {
		return nil, err
	}
	if !ok {
		if err := p.store.DeleteExpiredOTPChallenge(ctx, email); err != nil {
			p.logger.Warn("failed to drop spent code", "email", email, "error", err)
		}
		return nil, ErrInvalidCode
	}
	if !CheckCode(code, codeHash) {
		return nil, ErrInvalidCode
	}

	var session *Session
	err = p.store.ExecTx(ctx, func(q *database.Queries) error {
		consumed, err := q.ConsumeOTPChallenge(ctx, email, codeHash)
		if err != nil {
			return err
		}
		if !consumed {
			return ErrInvalidCode
		}

		user, err := q.GetUserByEmail(ctx, email)
		if err != nil {
			return err
		}
		if user == nil {
			user, err = q.CreateUser(ctx, email)
			if err != nil {
				return err
			}
			p.logger.Info("user created", "user_id", user.ID)
		}

		user, err = q.TouchLastSignIn(ctx, user.ID)
		if err != nil {
			return err
		}

		session, err = p.openSession(ctx, q, user, client)
		return err
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

// Refresh rotates a refresh token: the old session is removed and a new one issued.
func (p *Provider) Refresh(ctx context.Context, refreshToken string, client Client) (*Session, error) {
	var session *Session
	err := p.store.ExecTx(ctx, func(q *database.Queries) error {
		user, err := q.GetUserByRefreshToken(ctx, refreshToken)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrInvalidRefreshToken
		}

		if err := q.DeleteSessionByRefreshToken(ctx, refreshToken); err != nil {
			return err
		}

		session, err = p.openSession(ctx, q, user, client)
		return err
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (p *Provider) openSession(ctx context.Context, q *database.Queries, user *models.User, client Client) (*Session, error) {
	accessToken, err := GenerateJWT(user, p.opts.Secret, p.opts.AccessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken := p.refreshTokens()
	expiresAt := time.Now().Add(p.opts.RefreshTTL)

	err = q.CreateSession(ctx, database.CreateSessionParams{
		ID:           uuid.New(),
		UserID:       user.ID,
		RefreshToken: refreshToken,
		UserAgent:    client.UserAgent,
		ClientIP:     client.IP,
		ExpiresAt:    expiresAt,
	})
	if err != nil {
		return nil, err
	}

	return &Session{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// SignOut ends every session of the identity. Failures are logged only.
func (p *Provider) SignOut(ctx context.Context, id Identity) {
	if !id.Authenticated() {
		return
	}
	if err := p.store.DeleteAllSessionsForUser(ctx, id.UserID); err != nil {
		p.logger.Warn("sign out failed", "user_id", id.UserID, "error", err)
	}
}

// DeleteAccount removes the profile, the user with everything they own, and
// the blobs nobody else references, then signs out.
func (p *Provider) DeleteAccount(ctx context.Context, id Identity, blobs BlobReleaser) error {
	if !id.Authenticated() {
		return database.ErrUserNotFound
	}

	if err := p.store.DeleteProfile(ctx, id.UserID); err != nil {
		p.logger.Warn("failed to delete profile", "user_id", id.UserID, "error", err)
	}

	orphans, err := p.store.DeleteAccount(ctx, id.UserID)
	if err != nil {
		return err
	}

	if blobs != nil {
		blobs.Release(ctx, orphans)
	}

	p.SignOut(ctx, id)
	p.logger.Info("account deleted", "user_id", id.UserID, "released_blobs", len(orphans))
	return nil
}

// Resolve turns a bearer token into an identity. A store failure leaves the
// identity unresolved rather than anonymous.
func (p *Provider) Resolve(ctx context.Context, bearerToken string) Identity {
	if bearerToken == "" {
		return Identity{State: StateAnonymous}
	}

	claims, err := VerifyJWT(bearerToken, p.opts.Secret)
	if err != nil {
		return Identity{State: StateAnonymous}
	}

	user, err := p.store.GetUserByID(ctx, claims.UserID)
	if err != nil {
		p.logger.Warn("identity lookup failed", "user_id", claims.UserID, "error", err)
		return Identity{State: StateUnresolved}
	}
	if user == nil {
		return Identity{State: StateAnonymous}
	}

	return Identity{State: StateAuthenticated, UserID: user.ID, Email: user.Email}
}
