package cache

// Key names a query whose result a client (and sometimes the server) caches.
type Key string

const (
	KeyUserProjects    Key = "user-projects"
	KeyDashboard       Key = "dashboard"
	KeyAnalytics       Key = "analytics"
	KeyTopSVGs         Key = "top-svgs"
	KeyTopProjects     Key = "top-projects"
	KeyProject         Key = "project"
	KeyProjectSVGs     Key = "project-svgs"
	KeyProjectSVGStats Key = "project-svg-stats"
	KeySVGPreview      Key = "svg-preview"
	KeySearch          Key = "search"
	KeyPublicProjects  Key = "public-projects"
	KeyPublicSVGs      Key = "public-svgs"
	KeyNotifications   Key = "notifications"
	KeyProfile         Key = "profile"
	KeySettings        Key = "settings"
)

// Mutation names a write operation.
type Mutation string

const (
	MutationCreateProject    Mutation = "create-project"
	MutationUpdateProject    Mutation = "update-project"
	MutationDeleteProject    Mutation = "delete-project"
	MutationForkProject      Mutation = "fork-project"
	MutationUploadSVGs       Mutation = "upload-svgs"
	MutationUpdateSVG        Mutation = "update-svg"
	MutationDeleteSVG        Mutation = "delete-svg"
	MutationToggleFavorite   Mutation = "toggle-favorite"
	MutationViewSVG          Mutation = "view-svg"
	MutationDownloadSVG      Mutation = "download-svg"
	MutationUpdateProfile    Mutation = "update-profile"
	MutationNotify           Mutation = "notify"
	MutationReadNotification Mutation = "read-notification"
)

var projectListing = []Key{KeyUserProjects, KeyDashboard, KeyAnalytics, KeyTopProjects, KeyProject, KeyPublicProjects, KeySettings}

var svgListing = []Key{KeyUserProjects, KeyDashboard, KeyAnalytics, KeyTopSVGs, KeyTopProjects, KeyProject, KeyProjectSVGs, KeyProjectSVGStats, KeySVGPreview, KeySearch, KeyPublicProjects, KeyPublicSVGs, KeySettings}

var metrics = []Key{KeyAnalytics, KeyTopSVGs, KeyTopProjects, KeyProjectSVGStats, KeySVGPreview, KeyPublicSVGs, KeyPublicProjects}

// invalidations is the single table of which queries each mutation makes stale.
var invalidations = map[Mutation][]Key{
	MutationCreateProject:    projectListing,
	MutationUpdateProject:    join(projectListing, []Key{KeyProjectSVGs, KeySearch, KeyPublicSVGs}),
	MutationDeleteProject:    svgListing,
	MutationForkProject:      svgListing,
	MutationUploadSVGs:       svgListing,
	MutationUpdateSVG:        svgListing,
	MutationDeleteSVG:        svgListing,
	MutationToggleFavorite:   join(metrics, []Key{KeyDashboard, KeyProjectSVGs, KeySearch}),
	MutationViewSVG:          metrics,
	MutationDownloadSVG:      metrics,
	MutationUpdateProfile:    []Key{KeyProfile, KeySettings, KeyPublicProjects, KeyPublicSVGs},
	MutationNotify:           []Key{KeyNotifications},
	MutationReadNotification: []Key{KeyNotifications},
}

func join(groups ...[]Key) []Key {
	var out []Key
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// KeysFor returns the query keys a mutation invalidates.
func KeysFor(m Mutation) []Key {
	return invalidations[m]
}
