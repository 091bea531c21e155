package api

import (
	"log/slog"
	"net/http"

	"svg-vault/internal/auth"
	"svg-vault/internal/cache"
	"svg-vault/internal/config"
	"svg-vault/internal/database"
	"svg-vault/internal/storage"
	"svg-vault/internal/upload"
	"svg-vault/internal/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	gorillaws "github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	config   *config.Config
	store    *database.Store
	provider *auth.Provider
	buckets  *storage.Buckets
	janitor  *storage.Janitor
	uploader *upload.Uploader
	cache    *cache.Cache
	hub      *websocket.Hub
	upgrader *gorillaws.Upgrader
	logger   *slog.Logger
}

// Deps are the collaborators a Server is built from.
type Deps struct {
	Config   *config.Config
	Store    *database.Store
	Provider *auth.Provider
	Buckets  *storage.Buckets
	Cache    *cache.Cache
	Hub      *websocket.Hub
	Logger   *slog.Logger
}

func NewServer(d Deps) *Server {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		config:   d.Config,
		store:    d.Store,
		provider: d.Provider,
		buckets:  d.Buckets,
		janitor:  storage.NewJanitor(d.Buckets.SVGs, logger),
		uploader: upload.NewUploader(d.Store, d.Buckets.SVGs, d.Config.Upload.MaxSVGBytes, d.Config.Upload.Concurrency, logger),
		cache:    d.Cache,
		hub:      d.Hub,
		upgrader: websocket.NewUpgrader(d.Config.HTTP.AllowedOrigins),
		logger:   logger,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.config.HTTP.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Get("/health", s.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ws", s.ServeWsHandler)
	r.Get("/files/{bucket}/*", s.ServeFileHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/otp", s.SignInHandler)
		r.Post("/auth/verify", s.VerifyOTPHandler)
		r.Post("/auth/refresh", s.RefreshTokenHandler)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)

			r.Post("/auth/signout", s.SignOutHandler)
			r.Get("/me", s.GetCurrentUserHandler)
			r.Get("/sessions", s.ListSessionsHandler)
			r.Delete("/sessions/{sessionId}", s.DeleteSessionHandler)
			r.Post("/sessions/terminate_all", s.TerminateAllSessionsHandler)

			r.Get("/shell", s.GetShellHandler)
			r.Get("/dashboard", s.GetDashboardHandler)
			r.Get("/analytics", s.GetAnalyticsHandler)
			r.Get("/search", s.SearchHandler)
			r.Get("/explore/projects", s.ExploreProjectsHandler)
			r.Get("/explore/svgs", s.ExploreSVGsHandler)

			r.Get("/projects", s.ListProjectsHandler)
			r.Post("/projects", s.CreateProjectHandler)
			r.Get("/projects/{projectId}", s.GetProjectHandler)
			r.Patch("/projects/{projectId}", s.UpdateProjectHandler)
			r.Delete("/projects/{projectId}", s.DeleteProjectHandler)
			r.Get("/projects/{projectId}/svgs", s.ListProjectSVGsHandler)
			r.Get("/projects/{projectId}/properties", s.GetProjectPropertiesHandler)
			r.Post("/projects/{projectId}/fork", s.ForkProjectHandler)

			r.Post("/uploads", s.UploadSVGsHandler)
			r.Get("/svgs/{svgId}", s.GetSVGHandler)
			r.Patch("/svgs/{svgId}", s.UpdateSVGHandler)
			r.Delete("/svgs/{svgId}", s.DeleteSVGHandler)
			r.Post("/svgs/{svgId}/favorite", s.ToggleFavoriteHandler)
			r.Get("/svgs/{svgId}/download", s.DownloadSVGHandler)
			r.Get("/svgs/{svgId}/content", s.GetSVGContentHandler)

			r.Get("/profile", s.GetProfileHandler)
			r.Put("/profile", s.UpdateProfileHandler)
			r.Post("/profile/avatar", s.UploadAvatarHandler)
			r.Get("/settings", s.GetSettingsHandler)
			r.Delete("/account", s.DeleteAccountHandler)

			r.Get("/notifications", s.ListNotificationsHandler)
			r.Post("/notifications/{notificationId}/read", s.MarkNotificationReadHandler)
			r.Get("/events", s.GetEventsHandler)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
