package api

import (
	"context"
	"net/http"
	"time"

	"svg-vault/internal/cache"
	"svg-vault/internal/database"
	"svg-vault/internal/format"
	"svg-vault/internal/models"

	"github.com/google/uuid"
)

type NavEntry struct {
	Label string `json:"label" example:"Dashboard"`
	Path  string `json:"path" example:"/"`
}

var navigation = []NavEntry{
	{Label: "Dashboard", Path: "/"},
	{Label: "Search", Path: "/search"},
	{Label: "Explore", Path: "/explore"},
	{Label: "Upload", Path: "/upload"},
	{Label: "Analytics", Path: "/analytics"},
	{Label: "Profile", Path: "/profile"},
	{Label: "Settings", Path: "/settings"},
}

type ShellProject struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	SVGCount int64  `json:"svg_count"`
}

type ShellResponse struct {
	Navigation []NavEntry     `json:"navigation"`
	Projects   []ShellProject `json:"projects"`
}

// @Summary      Application shell
// @Description  Navigation entries and the caller's projects, newest first, with SVG counts.
// @Tags         pages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ShellResponse
// @Failure      401  {object}  RedirectResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /shell [get]
func (s *Server) GetShellHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	projects, err := cache.Remember(r.Context(), s.cache, cache.KeyUserProjects, id.UserID, func() ([]ShellProject, error) {
		rows, err := s.store.ListProjects(r.Context(), database.ProjectFilter{
			OwnerID: &id.UserID,
			Sort:    database.SortRecent,
		})
		if err != nil {
			return nil, err
		}
		out := make([]ShellProject, len(rows))
		for i, p := range rows {
			out[i] = ShellProject{ID: p.ID, Name: p.Name, Color: p.Color, SVGCount: p.SVGCount}
		}
		return out, nil
	})
	if err != nil {
		s.writeStoreError(w, err, "Failed to load projects")
		return
	}

	writeJSON(w, http.StatusOK, ShellResponse{Navigation: navigation, Projects: projects})
}

type DashboardStats struct {
	Projects      int64 `json:"projects"`
	SVGs          int64 `json:"svgs"`
	RecentUploads int64 `json:"recent_uploads"`
	Favorites     int64 `json:"favorites"`
}

type RecentSVG struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ProjectID    string `json:"project_id"`
	ProjectName  string `json:"project_name"`
	ProjectColor string `json:"project_color"`
	FileSize     int64  `json:"file_size"`
	Size         string `json:"size" example:"1.5 KB"`
	Uploaded     string `json:"uploaded" example:"2 hours ago"`
}

type RecentProject struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	SVGCount int64  `json:"svg_count"`
	Updated  string `json:"updated" example:"3 days ago"`
}

type DashboardResponse struct {
	Stats          DashboardStats  `json:"stats"`
	RecentSVGs     []RecentSVG     `json:"recent_svgs"`
	RecentProjects []RecentProject `json:"recent_projects"`
}

type dashboardData struct {
	Totals         models.UsageTotals
	RecentUploads  int64
	RecentSVGs     []models.SVGListing
	RecentProjects []models.ProjectWithStats
}

func (s *Server) loadDashboard(ctx context.Context, userID uuid.UUID, now time.Time) (dashboardData, error) {
	var d dashboardData

	totals, err := s.store.GetUsageTotals(ctx, userID)
	if err != nil {
		return d, err
	}
	d.Totals = *totals

	if d.RecentUploads, err = s.store.CountUploads(ctx, userID, now.AddDate(0, 0, -7), now); err != nil {
		return d, err
	}
	if d.RecentSVGs, err = s.store.ListSVGs(ctx, database.SVGFilter{OwnerID: &userID, Sort: database.SortRecent, Limit: 5}); err != nil {
		return d, err
	}
	if d.RecentProjects, err = s.store.ListProjects(ctx, database.ProjectFilter{OwnerID: &userID, Sort: database.SortUpdated, Limit: 6}); err != nil {
		return d, err
	}
	return d, nil
}

// @Summary      Dashboard
// @Description  Totals, the five most recent uploads and the six most recently updated projects.
// @Tags         pages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  DashboardResponse
// @Failure      401  {object}  RedirectResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /dashboard [get]
func (s *Server) GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)
	now := time.Now()

	d, err := cache.Remember(r.Context(), s.cache, cache.KeyDashboard, id.UserID, func() (dashboardData, error) {
		return s.loadDashboard(r.Context(), id.UserID, now)
	})
	if err != nil {
		s.writeStoreError(w, err, "Failed to load dashboard")
		return
	}

	resp := DashboardResponse{
		Stats: DashboardStats{
			Projects:      d.Totals.Projects,
			SVGs:          d.Totals.SVGs,
			RecentUploads: d.RecentUploads,
			Favorites:     d.Totals.Favorites,
		},
		RecentSVGs:     make([]RecentSVG, len(d.RecentSVGs)),
		RecentProjects: make([]RecentProject, len(d.RecentProjects)),
	}
	for i, svg := range d.RecentSVGs {
		resp.RecentSVGs[i] = RecentSVG{
			ID:           svg.ID,
			Name:         svg.Name,
			ProjectID:    svg.ProjectID,
			ProjectName:  svg.ProjectName,
			ProjectColor: svg.ProjectColor,
			FileSize:     svg.FileSize,
			Size:         format.Bytes(svg.FileSize),
			Uploaded:     format.RelativeTime(svg.CreatedAt, now),
		}
	}
	for i, p := range d.RecentProjects {
		resp.RecentProjects[i] = RecentProject{
			ID:       p.ID,
			Name:     p.Name,
			Color:    p.Color,
			SVGCount: p.SVGCount,
			Updated:  format.RelativeTime(p.UpdatedAt, now),
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

type AnalyticsTotals struct {
	Views     int64 `json:"views"`
	Downloads int64 `json:"downloads"`
	Favorites int64 `json:"favorites"`
	Uploads   int64 `json:"uploads"`
}

type UploadTrend struct {
	Last30Days     int64   `json:"last_30_days"`
	Previous30Days int64   `json:"previous_30_days"`
	GrowthPercent  float64 `json:"growth_percent" example:"33.3"`
}

type TopSVG struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ProjectName string `json:"project_name"`
	Views       int64  `json:"views"`
	Downloads   int64  `json:"downloads"`
}

type ProjectAnalytics struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Color        string `json:"color"`
	SVGCount     int64  `json:"svg_count"`
	Views        int64  `json:"views"`
	Downloads    int64  `json:"downloads"`
	Favorites    int64  `json:"favorites"`
	StorageBytes int64  `json:"storage_bytes"`
	Storage      string `json:"storage" example:"12.4 KB"`
}

type AnalyticsResponse struct {
	Totals      AnalyticsTotals    `json:"totals"`
	Uploads     UploadTrend        `json:"uploads"`
	TopSVGs     []TopSVG           `json:"top_svgs"`
	Projects    []ProjectAnalytics `json:"projects"`
	StorageUsed string             `json:"storage_used" example:"1.2 MB"`
}

func (s *Server) loadAnalytics(ctx context.Context, userID uuid.UUID, now time.Time) (*AnalyticsResponse, error) {
	totals, err := s.store.GetUsageTotals(ctx, userID)
	if err != nil {
		return nil, err
	}
	last, err := s.store.CountUploads(ctx, userID, now.AddDate(0, 0, -30), now)
	if err != nil {
		return nil, err
	}
	previous, err := s.store.CountUploads(ctx, userID, now.AddDate(0, 0, -60), now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	top, err := s.store.ListSVGs(ctx, database.SVGFilter{OwnerID: &userID, Sort: database.SortViews, Limit: 5})
	if err != nil {
		return nil, err
	}
	projects, err := s.store.ListProjects(ctx, database.ProjectFilter{OwnerID: &userID, Sort: database.SortName})
	if err != nil {
		return nil, err
	}

	resp := &AnalyticsResponse{
		Totals: AnalyticsTotals{
			Views:     totals.Views,
			Downloads: totals.Downloads,
			Favorites: totals.Favorites,
			Uploads:   totals.SVGs,
		},
		Uploads: UploadTrend{
			Last30Days:     last,
			Previous30Days: previous,
			GrowthPercent:  format.Growth(last, previous),
		},
		TopSVGs:     make([]TopSVG, len(top)),
		Projects:    make([]ProjectAnalytics, len(projects)),
		StorageUsed: format.Bytes(totals.StorageBytes),
	}
	for i, svg := range top {
		resp.TopSVGs[i] = TopSVG{
			ID:          svg.ID,
			Name:        svg.Name,
			ProjectName: svg.ProjectName,
			Views:       svg.Views,
			Downloads:   svg.Downloads,
		}
	}
	for i, p := range projects {
		resp.Projects[i] = ProjectAnalytics{
			ID:           p.ID,
			Name:         p.Name,
			Color:        p.Color,
			SVGCount:     p.SVGCount,
			Views:        p.TotalViews,
			Downloads:    p.TotalDownloads,
			Favorites:    p.TotalFavorites,
			StorageBytes: p.TotalSize,
			Storage:      format.Bytes(p.TotalSize),
		}
	}
	return resp, nil
}

// @Summary      Usage analytics
// @Description  Totals, upload growth over the last 30 days against the 30 before, top SVGs by views and per-project statistics.
// @Tags         pages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  AnalyticsResponse
// @Failure      401  {object}  RedirectResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /analytics [get]
func (s *Server) GetAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	resp, err := cache.Remember(r.Context(), s.cache, cache.KeyAnalytics, id.UserID, func() (*AnalyticsResponse, error) {
		return s.loadAnalytics(r.Context(), id.UserID, time.Now())
	})
	if err != nil {
		s.writeStoreError(w, err, "Failed to load analytics")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
