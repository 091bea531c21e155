package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"svg-vault/internal/auth"
	"svg-vault/internal/database"
	"svg-vault/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func TestProtectedRoutesRedirectAnonymousCallers(t *testing.T) {
	for _, token := range []string{"", "not-a-jwt"} {
		rr := doRequest(t, "GET", "/api/v1/shell", token, nil, "")
		require.Equal(t, http.StatusUnauthorized, rr.Code)
		require.Equal(t, auth.SignInPath, decode[RedirectResponse](t, rr).Redirect)
	}
}

func TestDeletedUserIsAnonymous(t *testing.T) {
	ghost := &models.User{ID: uuid.New(), Email: "ghost@example.com"}
	token, err := auth.GenerateJWT(ghost, testSecret, time.Hour)
	require.NoError(t, err)

	rr := doRequest(t, "GET", "/api/v1/me", token, nil, "")
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUnresolvedIdentityAnswersLoading(t *testing.T) {
	pool, err := pgxpool.New(context.Background(), testConnStr)
	require.NoError(t, err)
	pool.Close()

	store := database.NewStore(pool, nil)
	srv := NewServer(Deps{
		Config:   testConfig,
		Store:    store,
		Provider: newTestProvider(store, testSender),
		Buckets:  testServer.buckets,
		Hub:      testServer.hub,
		Logger:   testLogger,
	})

	token, err := auth.GenerateJWT(&models.User{ID: uuid.New(), Email: "x@example.com"}, testSecret, time.Hour)
	require.NoError(t, err)

	rr := doRequestTo(t, srv.Routes(), "GET", "/api/v1/dashboard", token)
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	require.Equal(t, "loading", decode[LoadingResponse](t, rr).Status)
}

func TestSignInFlow(t *testing.T) {
	email := uniqueEmail()

	rr := doJSON(t, "POST", "/api/v1/auth/otp", "", SignInRequest{Email: "not an email"})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, "POST", "/api/v1/auth/otp", "", SignInRequest{Email: email})
	require.Equal(t, http.StatusOK, rr.Code)
	code := testSender.last(email)

	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}
	rr = doJSON(t, "POST", "/api/v1/auth/verify", "", VerifyOTPRequest{Email: email, Token: wrong})
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, "Token has expired or is invalid", decode[ErrorResponse](t, rr).Error)

	rr = doJSON(t, "POST", "/api/v1/auth/verify", "", VerifyOTPRequest{Email: email, Token: code})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	session := decode[TokenResponse](t, rr)
	require.NotEmpty(t, session.AccessToken)
	require.NotEmpty(t, session.RefreshToken)
	require.Equal(t, email, session.User.Email)

	rr = doJSON(t, "POST", "/api/v1/auth/verify", "", VerifyOTPRequest{Email: email, Token: code})
	require.Equal(t, http.StatusUnauthorized, rr.Code, "a code works only once")

	rr = doRequest(t, "GET", "/api/v1/me", session.AccessToken, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, email, decode[models.User](t, rr).Email)

	rr = doJSON(t, "POST", "/api/v1/auth/refresh", "", RefreshTokenRequest{RefreshToken: session.RefreshToken})
	require.Equal(t, http.StatusOK, rr.Code)
	rotated := decode[TokenResponse](t, rr)
	require.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

	rr = doJSON(t, "POST", "/api/v1/auth/refresh", "", RefreshTokenRequest{RefreshToken: session.RefreshToken})
	require.Equal(t, http.StatusUnauthorized, rr.Code, "the old refresh token is spent")

	rr = doRequest(t, "POST", "/api/v1/auth/signout", rotated.AccessToken, nil, "")
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doJSON(t, "POST", "/api/v1/auth/refresh", "", RefreshTokenRequest{RefreshToken: rotated.RefreshToken})
	require.Equal(t, http.StatusUnauthorized, rr.Code, "sign out ends every session")
}

func TestSessions(t *testing.T) {
	email := uniqueEmail()
	first := signIn(t, email)
	signIn(t, email)

	rr := doRequest(t, "GET", "/api/v1/sessions", first.AccessToken, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	sessions := decode[[]models.Session](t, rr)
	require.Len(t, sessions, 2)

	rr = doRequest(t, "DELETE", "/api/v1/sessions/"+sessions[0].ID.String(), first.AccessToken, nil, "")
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doRequest(t, "DELETE", "/api/v1/sessions/"+sessions[0].ID.String(), first.AccessToken, nil, "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(t, "DELETE", "/api/v1/sessions/not-a-uuid", first.AccessToken, nil, "")
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, "POST", "/api/v1/sessions/terminate_all", first.AccessToken, nil, "")
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doRequest(t, "GET", "/api/v1/sessions", first.AccessToken, nil, "")
	require.Empty(t, decode[[]models.Session](t, rr))
}
