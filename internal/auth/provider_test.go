package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type capturingSender struct {
	mu    sync.Mutex
	codes map[string]string
	err   error
}

func (s *capturingSender) SendCode(_ context.Context, to, code string, _ time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[to] = code
	return nil
}

func (s *capturingSender) last(to string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.codes[to]
}

type recordingReleaser struct {
	paths []string
}

func (r *recordingReleaser) Release(_ context.Context, paths []string) {
	r.paths = append(r.paths, paths...)
}

func newTestProvider(t *testing.T) (*Provider, *capturingSender) {
	sender := &capturingSender{codes: map[string]string{}}
	p, err := NewProvider(testStore, sender, Options{
		Secret:          "provider-test-secret",
		AccessTTL:       time.Hour,
		RefreshTTL:      24 * time.Hour,
		CodeTTL:         10 * time.Minute,
		MaxCodeAttempts: 5,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return p, sender
}

func wrongCode(code string) string {
	if code == "000000" {
		return "111111"
	}
	return "000000"
}

func TestSignInAndVerify(t *testing.T) {
	ctx := context.Background()
	p, sender := newTestProvider(t)

	require.NoError(t, p.SignIn(ctx, " Alice.Provider@Example.com "))
	code := sender.last("alice.provider@example.com")
	require.Len(t, code, CodeLength)

	user, err := testStore.GetUserByEmail(ctx, "alice.provider@example.com")
	require.NoError(t, err)
	require.Nil(t, user, "requesting a code does not create the user")

	session, err := p.VerifyOTP(ctx, "alice.provider@example.com", code, Client{UserAgent: "test", IP: "127.0.0.1"})
	require.NoError(t, err)
	require.NotEmpty(t, session.AccessToken)
	require.NotEmpty(t, session.RefreshToken)
	require.Equal(t, "alice.provider@example.com", session.User.Email)
	require.NotNil(t, session.User.EmailConfirmedAt)
	require.NotNil(t, session.User.LastSignInAt)

	_, err = p.VerifyOTP(ctx, "alice.provider@example.com", code, Client{})
	require.ErrorIs(t, err, ErrInvalidCode, "codes are single use")

	id := p.Resolve(ctx, session.AccessToken)
	require.Equal(t, StateAuthenticated, id.State)
	require.Equal(t, session.User.ID, id.UserID)

	require.NoError(t, p.SignIn(ctx, "alice.provider@example.com"))
	again, err := p.VerifyOTP(ctx, "alice.provider@example.com", sender.last("alice.provider@example.com"), Client{})
	require.NoError(t, err)
	require.Equal(t, session.User.ID, again.User.ID, "second sign-in reuses the user")
}

func TestSignInRejectsBadEmail(t *testing.T) {
	p, _ := newTestProvider(t)
	require.ErrorIs(t, p.SignIn(context.Background(), "not-an-email"), ErrInvalidEmail)
}

func TestSignInSurfacesMailFailure(t *testing.T) {
	p, sender := newTestProvider(t)
	sender.err = errors.New("smtp down")
	err := p.SignIn(context.Background(), "mailfail@example.com")
	require.Error(t, err)
	require.Contains(t, err.Error(), "smtp down")
}

func TestVerifyWrongCodeLocksAfterMaxAttempts(t *testing.T) {
	ctx := context.Background()
	p, sender := newTestProvider(t)
	email := "locked@example.com"

	require.NoError(t, p.SignIn(ctx, email))
	code := sender.last(email)

	for i := 0; i < 5; i++ {
		_, err := p.VerifyOTP(ctx, email, wrongCode(code), Client{})
		require.ErrorIs(t, err, ErrInvalidCode)
	}

	_, err := p.VerifyOTP(ctx, email, code, Client{})
	require.ErrorIs(t, err, ErrInvalidCode, "the right code is refused once attempts are exhausted")
}

func TestVerifyConcurrentWrongCodesRespectAttemptLimit(t *testing.T) {
	ctx := context.Background()
	p, sender := newTestProvider(t)
	email := "guessing@example.com"

	require.NoError(t, p.SignIn(ctx, email))
	code := sender.last(email)

	errs := make(chan error, 20)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.VerifyOTP(ctx, email, wrongCode(code), Client{})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.ErrorIs(t, err, ErrInvalidCode)
	}

	challenge, err := testStore.GetOTPChallenge(ctx, email)
	require.NoError(t, err)
	require.NotNil(t, challenge)
	require.Equal(t, 5, challenge.Attempts)

	_, err = p.VerifyOTP(ctx, email, code, Client{})
	require.ErrorIs(t, err, ErrInvalidCode)
}

func TestVerifyConcurrentRightCodeOpensOneSession(t *testing.T) {
	ctx := context.Background()
	p, sender := newTestProvider(t)
	email := "racing@example.com"

	require.NoError(t, p.SignIn(ctx, email))
	code := sender.last(email)

	errs := make(chan error, 10)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.VerifyOTP(ctx, email, code, Client{})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	sessions := 0
	for err := range errs {
		if err == nil {
			sessions++
			continue
		}
		require.ErrorIs(t, err, ErrInvalidCode)
	}
	require.Equal(t, 1, sessions, "a code signs in once")
}

func TestVerifyExpiredCode(t *testing.T) {
	ctx := context.Background()
	p, _ := newTestProvider(t)
	email := "expired@example.com"

	hash, err := HashCode("123456")
	require.NoError(t, err)
	require.NoError(t, testStore.UpsertOTPChallenge(ctx, email, hash, time.Now().Add(-time.Minute)))

	_, err = p.VerifyOTP(ctx, email, "123456", Client{})
	require.ErrorIs(t, err, ErrInvalidCode)
}

func TestRefreshRotatesToken(t *testing.T) {
	ctx := context.Background()
	p, sender := newTestProvider(t)
	email := "refresh@example.com"

	require.NoError(t, p.SignIn(ctx, email))
	session, err := p.VerifyOTP(ctx, email, sender.last(email), Client{})
	require.NoError(t, err)

	rotated, err := p.Refresh(ctx, session.RefreshToken, Client{})
	require.NoError(t, err)
	require.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

	_, err = p.Refresh(ctx, session.RefreshToken, Client{})
	require.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestResolveStates(t *testing.T) {
	ctx := context.Background()
	p, _ := newTestProvider(t)

	require.Equal(t, StateAnonymous, p.Resolve(ctx, "").State)
	require.Equal(t, StateAnonymous, p.Resolve(ctx, "garbage").State)
}

func TestSignOutAndDeleteAccount(t *testing.T) {
	ctx := context.Background()
	p, sender := newTestProvider(t)
	email := "delete.me@example.com"

	require.NoError(t, p.SignIn(ctx, email))
	session, err := p.VerifyOTP(ctx, email, sender.last(email), Client{})
	require.NoError(t, err)
	id := p.Resolve(ctx, session.AccessToken)

	p.SignOut(ctx, id)
	sessions, err := testStore.ListSessionsForUser(ctx, id.UserID)
	require.NoError(t, err)
	require.Empty(t, sessions)

	releaser := &recordingReleaser{}
	require.NoError(t, p.DeleteAccount(ctx, id, releaser))

	user, err := testStore.GetUserByID(ctx, id.UserID)
	require.NoError(t, err)
	require.Nil(t, user)

	require.Equal(t, StateAnonymous, p.Resolve(ctx, session.AccessToken).State, "tokens of a deleted user resolve to anonymous")
}
