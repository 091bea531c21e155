package models

import (
	"time"

	"github.com/google/uuid"
)

type SVG struct {
	ID          string    `json:"id" example:"Uakgb_J5m9g-0JDMbcJqL"`
	UserID      uuid.UUID `json:"user_id"`
	ProjectID   string    `json:"project_id"`
	Name        string    `json:"name" example:"arrow.svg"`
	Description *string   `json:"description,omitempty"`
	FilePath    string    `json:"file_path"`
	FileSize    int64     `json:"file_size"`
	Tags        []string  `json:"tags"`
	Views       int64     `json:"views"`
	Downloads   int64     `json:"downloads"`
	Favorited   bool      `json:"favorited"`
	CreatedAt   time.Time `json:"created_at"`
}

// SVGListing is an SVG joined with the project and owner data list views show.
type SVGListing struct {
	SVG
	ProjectName      string  `json:"project_name"`
	ProjectColor     string  `json:"project_color"`
	ProjectIsPublic  bool    `json:"project_is_public"`
	OwnerDisplayName *string `json:"owner_display_name,omitempty"`
}
