package api

import (
	"errors"
	"net/http"
	"time"

	"svg-vault/internal/auth"
	"svg-vault/internal/models"
)

type SignInRequest struct {
	Email string `json:"email" example:"alice@example.com"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" example:"alice@example.com"`
	Token string `json:"token" example:"123456"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" example:"V1StGXR8_Z5jdHi6B-myT78q_Z5jdHi6B-myT78q"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Check your email for the login code"`
}

type TokenResponse struct {
	AccessToken  string       `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string       `json:"refresh_token" example:"V1StGXR8_Z5jdHi6B-myT78q_Z5jdHi6B-myT78q"`
	ExpiresAt    time.Time    `json:"expires_at"`
	User         *models.User `json:"user"`
}

func clientOf(r *http.Request) auth.Client {
	return auth.Client{UserAgent: r.UserAgent(), IP: r.RemoteAddr}
}

func tokenResponse(session *auth.Session) TokenResponse {
	return TokenResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresAt:    session.ExpiresAt,
		User:         session.User,
	}
}

// @Summary      Request a sign-in code
// @Description  Mails a 6-digit one-time code to the address. No account or session is created yet.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      SignInRequest  true  "Email address"
// @Success      200      {object}  MessageResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /auth/otp [post]
func (s *Server) SignInHandler(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.provider.SignIn(r.Context(), req.Email); err != nil {
		if errors.Is(err, auth.ErrInvalidEmail) {
			writeError(w, http.StatusBadRequest, "Please enter a valid email address")
			return
		}
		s.logger.Error("sign in failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to send login code")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Check your email for the login code"})
}

// @Summary      Verify a sign-in code
// @Description  Exchanges a valid one-time code for an access token and a refresh token. The account is created on first verification.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      VerifyOTPRequest  true  "Email and code"
// @Success      200      {object}  TokenResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /auth/verify [post]
func (s *Server) VerifyOTPHandler(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := s.provider.VerifyOTP(r.Context(), req.Email, req.Token, clientOf(r))
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidEmail):
			writeError(w, http.StatusBadRequest, "Please enter a valid email address")
		case errors.Is(err, auth.ErrInvalidCode):
			writeError(w, http.StatusUnauthorized, "Token has expired or is invalid")
		default:
			s.logger.Error("otp verification failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to verify login code")
		}
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse(session))
}

// @Summary      Refresh access token
// @Description  Provides a new short-lived access token and a new refresh token in exchange for a valid, non-expired refresh token. Implements refresh token rotation.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RefreshTokenRequest  true  "Refresh Token"
// @Success      200      {object}  TokenResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /auth/refresh [post]
func (s *Server) RefreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.RefreshToken == "" {
		writeError(w, http.StatusBadRequest, "Refresh token is required")
		return
	}

	session, err := s.provider.Refresh(r.Context(), req.RefreshToken, clientOf(r))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidRefreshToken) {
			writeError(w, http.StatusUnauthorized, "Invalid or expired refresh token")
			return
		}
		s.logger.Error("refresh token rotation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to refresh token")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse(session))
}

// @Summary      Sign out
// @Description  Ends every session of the current user. Always succeeds.
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Router       /auth/signout [post]
func (s *Server) SignOutHandler(w http.ResponseWriter, r *http.Request) {
	s.provider.SignOut(r.Context(), currentIdentity(r))
	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.User
// @Failure      401  {object}  RedirectResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /me [get]
func (s *Server) GetCurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	user, err := s.store.GetUserByID(r.Context(), id.UserID)
	if err != nil {
		s.logger.Error("failed to load user", "user_id", id.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load user")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
