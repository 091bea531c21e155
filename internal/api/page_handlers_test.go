package api

import (
	"net/http"
	"strconv"
	"strings"
	"testing"

	"svg-vault/internal/database"
	"svg-vault/internal/models"

	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	user := signIn(t, uniqueEmail())

	rr := doRequest(t, "GET", "/api/v1/dashboard", user.AccessToken, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	empty := decode[DashboardResponse](t, rr)
	require.Equal(t, DashboardStats{}, empty.Stats)
	require.Empty(t, empty.RecentSVGs)

	projects := make([]models.Project, 7)
	for i := range projects {
		projects[i] = createProject(t, user.AccessToken, "Board "+strconv.Itoa(i), false)
	}
	var last models.SVG
	for i := 0; i < 6; i++ {
		last = uploadOne(t, user.AccessToken, projects[0].ID, "icon-"+strconv.Itoa(i)+".svg", "")
	}
	rr = doRequest(t, "POST", "/api/v1/svgs/"+last.ID+"/favorite", user.AccessToken, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, "GET", "/api/v1/dashboard", user.AccessToken, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	board := decode[DashboardResponse](t, rr)
	require.Equal(t, DashboardStats{Projects: 7, SVGs: 6, RecentUploads: 6, Favorites: 1}, board.Stats)

	require.Len(t, board.RecentSVGs, 5)
	require.Equal(t, last.ID, board.RecentSVGs[0].ID)
	require.Equal(t, "Board 0", board.RecentSVGs[0].ProjectName)
	require.Equal(t, "just now", board.RecentSVGs[0].Uploaded)
	require.True(t, strings.HasSuffix(board.RecentSVGs[0].Size, " B"))

	require.Len(t, board.RecentProjects, 6)
	require.Equal(t, projects[0].ID, board.RecentProjects[0].ID, "uploading touches the project")
	require.EqualValues(t, 6, board.RecentProjects[0].SVGCount)
}

func TestAnalytics(t *testing.T) {
	user := signIn(t, uniqueEmail())
	icons := createProject(t, user.AccessToken, "Icons", false)
	logos := createProject(t, user.AccessToken, "Logos", false)

	popular := uploadOne(t, user.AccessToken, icons.ID, "popular.svg", "")
	uploadOne(t, user.AccessToken, icons.ID, "quiet.svg", "")
	uploadOne(t, user.AccessToken, logos.ID, "brand.svg", "")

	for i := 0; i < 3; i++ {
		doRequest(t, "GET", "/api/v1/svgs/"+popular.ID, user.AccessToken, nil, "")
	}
	doRequest(t, "GET", "/api/v1/svgs/"+popular.ID+"/download", user.AccessToken, nil, "")

	// Backdate one upload into the previous 30 day window.
	_, err := testServer.store.GetPool().Exec(t.Context(),
		`UPDATE svgs SET created_at = NOW() - INTERVAL '45 days' WHERE name = 'brand.svg' AND user_id = $1`, user.User.ID)
	require.NoError(t, err)
	testServer.cache.Invalidate(t.Context(), "upload-svgs", user.User.ID)

	rr := doRequest(t, "GET", "/api/v1/analytics", user.AccessToken, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	stats := decode[AnalyticsResponse](t, rr)

	require.Equal(t, AnalyticsTotals{Views: 3, Downloads: 1, Favorites: 0, Uploads: 3}, stats.Totals)
	require.Equal(t, UploadTrend{Last30Days: 2, Previous30Days: 1, GrowthPercent: 100}, stats.Uploads)
	require.Len(t, stats.TopSVGs, 3)
	require.Equal(t, popular.ID, stats.TopSVGs[0].ID)
	require.Len(t, stats.Projects, 2)
	require.Equal(t, "Icons", stats.Projects[0].Name)
	require.EqualValues(t, 2, stats.Projects[0].SVGCount)
	require.EqualValues(t, 3, stats.Projects[0].Views)
	require.EqualValues(t, 2*len(testSVG), stats.Projects[0].StorageBytes)
	require.Equal(t, strconv.Itoa(2*len(testSVG))+" B", stats.Projects[0].Storage)
}

func TestAnalyticsIsCachedUntilInvalidated(t *testing.T) {
	user := signIn(t, uniqueEmail())
	project := createProject(t, user.AccessToken, "Cached", false)
	svg := uploadOne(t, user.AccessToken, project.ID, "c.svg", "")

	rr := doRequest(t, "GET", "/api/v1/analytics", user.AccessToken, nil, "")
	require.Zero(t, decode[AnalyticsResponse](t, rr).Totals.Views)

	// A write that bypasses the API is invisible until something invalidates.
	_, err := testServer.store.IncrementViews(t.Context(), svg.ID)
	require.NoError(t, err)
	rr = doRequest(t, "GET", "/api/v1/analytics", user.AccessToken, nil, "")
	require.Zero(t, decode[AnalyticsResponse](t, rr).Totals.Views)

	rr = doRequest(t, "GET", "/api/v1/svgs/"+svg.ID, user.AccessToken, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	rr = doRequest(t, "GET", "/api/v1/analytics", user.AccessToken, nil, "")
	require.EqualValues(t, 2, decode[AnalyticsResponse](t, rr).Totals.Views)
}

func TestNotificationsMarkRead(t *testing.T) {
	user := signIn(t, uniqueEmail())
	other := signIn(t, uniqueEmail())

	n, err := testServer.store.CreateNotification(t.Context(), database.CreateNotificationParams{
		UserID:  user.User.ID,
		Type:    models.NotificationTypeFork,
		Title:   "Project Forked",
		Message: "someone forked your project",
	})
	require.NoError(t, err)
	path := "/api/v1/notifications/" + strconv.FormatInt(n.ID, 10) + "/read"

	rr := doRequest(t, "GET", "/api/v1/notifications?unread=true", user.AccessToken, nil, "")
	require.Len(t, decode[[]models.Notification](t, rr), 1)

	rr = doRequest(t, "POST", path, other.AccessToken, nil, "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(t, "POST", path, user.AccessToken, nil, "")
	require.Equal(t, http.StatusNoContent, rr.Code)
	rr = doRequest(t, "POST", path, user.AccessToken, nil, "")
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doRequest(t, "GET", "/api/v1/notifications?unread=true", user.AccessToken, nil, "")
	require.Empty(t, decode[[]models.Notification](t, rr))

	rr = doRequest(t, "POST", "/api/v1/notifications/abc/read", user.AccessToken, nil, "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestEventsJournalMutations(t *testing.T) {
	user := signIn(t, uniqueEmail())

	rr := doRequest(t, "GET", "/api/v1/events", user.AccessToken, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Empty(t, decode[[]database.Event](t, rr))

	createProject(t, user.AccessToken, "Journaled", false)

	rr = doRequest(t, "GET", "/api/v1/events?since=0", user.AccessToken, nil, "")
	events := decode[[]database.Event](t, rr)
	require.Len(t, events, 1)
	require.Equal(t, "create-project", events[0].EventType)

	rr = doRequest(t, "GET", "/api/v1/events?since="+strconv.FormatInt(events[0].ID, 10), user.AccessToken, nil, "")
	require.Empty(t, decode[[]database.Event](t, rr))

	createProject(t, user.AccessToken, "Journaled again", false)
	rr = doRequest(t, "GET", "/api/v1/events?limit=1", user.AccessToken, nil, "")
	require.Len(t, decode[[]database.Event](t, rr), 1)

	rr = doRequest(t, "GET", "/api/v1/events?since=yesterday", user.AccessToken, nil, "")
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, "GET", "/api/v1/events?since=-1", user.AccessToken, nil, "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHealthAndNotFound(t *testing.T) {
	rr := doRequest(t, "GET", "/health", "", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, HealthResponse{Status: "ok", Database: "ok", Cache: "ok"}, decode[HealthResponse](t, rr))

	rr = doRequest(t, "GET", "/no/such/page", "", nil, "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.JSONEq(t, `{"error":"not found"}`, rr.Body.String())

	rr = doRequest(t, "GET", "/metrics", "", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "svgvault_http_requests_total")
}
