package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"svg-vault/internal/cache"
	"svg-vault/internal/database"
	"svg-vault/internal/format"
	"svg-vault/internal/models"
	"svg-vault/internal/storage"
	"svg-vault/internal/upload"

	"github.com/go-chi/chi/v5"
)

const maxDisplayNameLength = 100

type ProfileResponse struct {
	Email       string  `json:"email" example:"alice@example.com"`
	DisplayName *string `json:"display_name,omitempty" example:"Alice"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" example:"Alice"`
}

type SettingsResponse struct {
	Email        string  `json:"email" example:"alice@example.com"`
	DisplayName  *string `json:"display_name,omitempty"`
	StorageBytes int64   `json:"storage_bytes"`
	StorageUsed  string  `json:"storage_used" example:"1.2 MB"`
	Projects     int64   `json:"projects"`
	SVGs         int64   `json:"svgs"`
}

func profileResponse(email string, p *models.Profile) ProfileResponse {
	resp := ProfileResponse{Email: email}
	if p != nil {
		resp.DisplayName = p.DisplayName
		resp.AvatarURL = p.AvatarURL
	}
	return resp
}

// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ProfileResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /profile [get]
func (s *Server) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	profile, err := s.store.GetProfile(r.Context(), id.UserID)
	if err != nil {
		s.writeStoreError(w, err, "Failed to load profile")
		return
	}

	writeJSON(w, http.StatusOK, profileResponse(id.Email, profile))
}

// @Summary      Update display name
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      UpdateProfileRequest  true  "Display name"
// @Success      200      {object}  ProfileResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /profile [put]
func (s *Server) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	var req UpdateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	name := strings.TrimSpace(req.DisplayName)
	if utf8.RuneCountInString(name) > maxDisplayNameLength {
		writeError(w, http.StatusBadRequest, "Display name is too long")
		return
	}

	profile, err := s.store.UpsertProfile(r.Context(), database.UpsertProfileParams{
		UserID:      id.UserID,
		DisplayName: &name,
	})
	if err != nil {
		s.writeStoreError(w, err, "Failed to update profile")
		return
	}

	s.afterMutation(r.Context(), cache.MutationUpdateProfile, profile, id.UserID)
	writeJSON(w, http.StatusOK, profileResponse(id.Email, profile))
}

// sniffLen is how many bytes http.DetectContentType looks at.
const sniffLen = 512

// @Summary      Upload avatar
// @Description  Stores a PNG, JPEG, GIF or WebP image in the public avatars bucket, records its URL on the profile and releases the previous avatar.
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar  formData  file  true  "Image file"
// @Success      200     {object}  ProfileResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /profile/avatar [post]
func (s *Server) UploadAvatarHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)
	maxBytes := s.config.Upload.MaxAvatarBytes

	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartMemory)
	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Please choose an image to upload")
		return
	}
	defer file.Close()

	if header.Size > maxBytes {
		writeError(w, http.StatusBadRequest, "Image must be "+format.Bytes(maxBytes)+" or smaller")
		return
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		writeError(w, http.StatusBadRequest, "Please upload a PNG, JPEG, GIF or WebP image")
		return
	}
	contentType, ext, ok := upload.DetectAvatar(head[:n])
	if !ok {
		writeError(w, http.StatusBadRequest, "Please upload a PNG, JPEG, GIF or WebP image")
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		s.logger.Error("failed to rewind avatar upload", "user_id", id.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to upload avatar")
		return
	}

	previous, err := s.store.GetProfile(r.Context(), id.UserID)
	if err != nil {
		s.writeStoreError(w, err, "Failed to update profile")
		return
	}

	objectPath := upload.AvatarPath(id.UserID, ext, time.Now())
	if err := s.buckets.Avatars.Save(r.Context(), objectPath, io.LimitReader(file, maxBytes), header.Size, contentType); err != nil {
		s.logger.Error("failed to store avatar", "user_id", id.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to upload avatar")
		return
	}

	url := s.buckets.Avatars.PublicURL(objectPath)
	profile, err := s.store.UpsertProfile(r.Context(), database.UpsertProfileParams{
		UserID:    id.UserID,
		AvatarURL: &url,
	})
	if err != nil {
		s.releaseAvatar(r.Context(), objectPath)
		s.writeStoreError(w, err, "Failed to update profile")
		return
	}

	if previous != nil && previous.AvatarURL != nil {
		if old, ok := storage.ObjectPathOf(s.buckets.Avatars, *previous.AvatarURL); ok && old != objectPath {
			s.releaseAvatar(r.Context(), old)
		}
	}

	s.afterMutation(r.Context(), cache.MutationUpdateProfile, profile, id.UserID)
	writeJSON(w, http.StatusOK, profileResponse(id.Email, profile))
}

func (s *Server) releaseAvatar(ctx context.Context, objectPath string) {
	if err := s.buckets.Avatars.Delete(ctx, objectPath); err != nil {
		s.logger.Warn("failed to delete avatar", "path", objectPath, "error", err)
	}
}

// @Summary      Account settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  SettingsResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /settings [get]
func (s *Server) GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	profile, err := s.store.GetProfile(r.Context(), id.UserID)
	if err != nil {
		s.writeStoreError(w, err, "Failed to load settings")
		return
	}
	totals, err := s.store.GetUsageTotals(r.Context(), id.UserID)
	if err != nil {
		s.writeStoreError(w, err, "Failed to load settings")
		return
	}

	resp := SettingsResponse{
		Email:        id.Email,
		StorageBytes: totals.StorageBytes,
		StorageUsed:  format.Bytes(totals.StorageBytes),
		Projects:     totals.Projects,
		SVGs:         totals.SVGs,
	}
	if profile != nil {
		resp.DisplayName = profile.DisplayName
	}

	writeJSON(w, http.StatusOK, resp)
}

// @Summary      Delete account
// @Description  Deletes the profile, the user and everything they own, then signs out everywhere.
// @Tags         settings
// @Security     BearerAuth
// @Success      204
// @Failure      500  {object}  ErrorResponse
// @Router       /account [delete]
func (s *Server) DeleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	if err := s.provider.DeleteAccount(r.Context(), id, s.janitor); err != nil {
		s.writeStoreError(w, err, "Failed to delete account")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ServeFileHandler serves raster objects of the public avatars bucket. SVG
// files are private and only leave through the download and content endpoints.
func (s *Server) ServeFileHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "bucket") != s.config.Storage.Buckets.Avatars {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	objectPath := chi.URLParam(r, "*")
	contentType := upload.AvatarContentType(objectPath)
	if contentType == "" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	blob, err := s.buckets.Avatars.Get(r.Context(), objectPath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidPath) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		s.logger.Error("failed to read avatar", "path", objectPath, "error", err)
		writeError(w, http.StatusBadGateway, "Failed to load file")
		return
	}
	defer blob.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Security-Policy", "default-src 'none'; sandbox")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	io.Copy(w, blob)
}
