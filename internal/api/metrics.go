package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "svgvault_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "svgvault_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	uploadedFiles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "svgvault_uploaded_files_total",
		Help: "Uploaded SVG files by outcome.",
	}, []string{"outcome"})

	svgViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "svgvault_svg_views_total",
		Help: "SVG preview loads.",
	})

	svgDownloads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "svgvault_svg_downloads_total",
		Help: "SVG downloads.",
	})

	projectForks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "svgvault_project_forks_total",
		Help: "Projects forked.",
	})
)
