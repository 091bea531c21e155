package models

import (
	"time"

	"github.com/google/uuid"
)

const DefaultProjectColor = "bg-blue-500"

// ProjectColors is the palette a project color tag must come from.
var ProjectColors = []string{
	"bg-blue-500",
	"bg-green-500",
	"bg-purple-500",
	"bg-red-500",
	"bg-orange-500",
	"bg-pink-500",
	"bg-yellow-500",
	"bg-gray-500",
}

func IsProjectColor(color string) bool {
	for _, c := range ProjectColors {
		if c == color {
			return true
		}
	}
	return false
}

type Project struct {
	ID          string    `json:"id" example:"V1StGXR8_Z5jdHi6B-myT"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name" example:"Icons"`
	Description *string   `json:"description,omitempty"`
	Color       string    `json:"color" example:"bg-blue-500"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectStats are the aggregates computed over a project's SVGs.
type ProjectStats struct {
	SVGCount       int64 `json:"svg_count"`
	TotalViews     int64 `json:"total_views"`
	TotalDownloads int64 `json:"total_downloads"`
	TotalFavorites int64 `json:"total_favorites"`
	TotalSize      int64 `json:"total_size"`
}

type ProjectWithStats struct {
	Project
	ProjectStats
	OwnerDisplayName *string `json:"owner_display_name,omitempty"`
	OwnerAvatarURL   *string `json:"owner_avatar_url,omitempty"`
}
