package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"svg-vault/internal/models"

	"github.com/stretchr/testify/require"
)

func TestUploadRejectsNonSVGBeforeStorage(t *testing.T) {
	user := signIn(t, uniqueEmail())
	project := createProject(t, user.AccessToken, "Uploads", false)
	userDir := filepath.Join(testConfig.Storage.Path, testConfig.Storage.Buckets.SVGs, user.User.ID.String())

	rr := uploadSVGs(t, user.AccessToken, project.ID, "", testFile{name: "photo.png", contentType: "image/png", content: "PNG"})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Please upload only SVG files.", decode[ErrorResponse](t, rr).Error)
	require.Zero(t, countBlobs(t, userDir))

	rr = doRequest(t, "GET", "/api/v1/projects/"+project.ID+"/svgs", user.AccessToken, nil, "")
	require.Empty(t, decode[[]models.SVGListing](t, rr))
}

func TestUploadMixedBatch(t *testing.T) {
	user := signIn(t, uniqueEmail())
	project := createProject(t, user.AccessToken, "Mixed", false)

	rr := uploadSVGs(t, user.AccessToken, project.ID, " ui , ui, nav ",
		testFile{name: "ok.svg", content: testSVG},
		testFile{name: "notes.txt", contentType: "text/plain", content: "hello"},
		testFile{name: "typed", contentType: "image/svg+xml", content: testSVG},
	)
	require.Equal(t, http.StatusMultiStatus, rr.Code, rr.Body.String())
	resp := decode[UploadResponse](t, rr)
	require.Equal(t, 2, resp.Uploaded)
	require.Equal(t, 1, resp.Failed)
	require.Equal(t, "notes.txt", resp.Results[1].FileName)
	require.NotEmpty(t, resp.Results[1].Error)
	require.Equal(t, []string{"ui", "nav"}, resp.Results[0].SVG.Tags)
}

func TestUploadRequiresOwnedProject(t *testing.T) {
	owner := signIn(t, uniqueEmail())
	stranger := signIn(t, uniqueEmail())
	project := createProject(t, owner.AccessToken, "Owned", true)
	svg := testFile{name: "x.svg", content: testSVG}

	rr := uploadSVGs(t, stranger.AccessToken, project.ID, "", svg)
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = uploadSVGs(t, owner.AccessToken, "", "", svg)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	body, contentType := multipartBody(t, map[string]string{"project_id": project.ID}, "files", nil)
	rr = doRequest(t, "POST", "/api/v1/uploads", owner.AccessToken, body, contentType)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPreviewCountsEveryLoad(t *testing.T) {
	user := signIn(t, uniqueEmail())
	project := createProject(t, user.AccessToken, "Counted", false)
	svg := uploadOne(t, user.AccessToken, project.ID, "count.svg", "")

	for want := int64(1); want <= 3; want++ {
		rr := doRequest(t, "GET", "/api/v1/svgs/"+svg.ID, user.AccessToken, nil, "")
		require.Equal(t, http.StatusOK, rr.Code)
		preview := decode[SVGResponse](t, rr)
		require.Equal(t, want, preview.Views)
		require.True(t, preview.IsOwner)
		require.Equal(t, "Counted", preview.ProjectName)
	}

	rr := doRequest(t, "GET", "/api/v1/projects/"+project.ID+"/svgs", user.AccessToken, nil, "")
	require.EqualValues(t, 3, decode[[]models.SVGListing](t, rr)[0].Views, "listing does not count as a view")
}

func TestPrivateSVGIsHidden(t *testing.T) {
	owner := signIn(t, uniqueEmail())
	stranger := signIn(t, uniqueEmail())
	project := createProject(t, owner.AccessToken, "Private", false)
	svg := uploadOne(t, owner.AccessToken, project.ID, "hidden.svg", "")

	for _, path := range []string{"", "/download", "/content"} {
		rr := doRequest(t, "GET", "/api/v1/svgs/"+svg.ID+path, stranger.AccessToken, nil, "")
		require.Equal(t, http.StatusNotFound, rr.Code, path)
	}
}

func TestFavoriteToggleRoundTrip(t *testing.T) {
	owner := signIn(t, uniqueEmail())
	stranger := signIn(t, uniqueEmail())
	project := createProject(t, owner.AccessToken, "Faves", true)
	svg := uploadOne(t, owner.AccessToken, project.ID, "fave.svg", "")

	toggle := func() bool {
		rr := doRequest(t, "POST", "/api/v1/svgs/"+svg.ID+"/favorite", owner.AccessToken, nil, "")
		require.Equal(t, http.StatusOK, rr.Code)
		return decode[FavoriteResponse](t, rr).Favorited
	}
	fetch := func() bool {
		rr := doRequest(t, "GET", "/api/v1/svgs/"+svg.ID, owner.AccessToken, nil, "")
		return decode[SVGResponse](t, rr).Favorited
	}

	original := fetch()
	require.Equal(t, !original, toggle())
	require.Equal(t, !original, fetch())
	require.Equal(t, original, toggle())
	require.Equal(t, original, fetch())

	rr := doRequest(t, "POST", "/api/v1/svgs/"+svg.ID+"/favorite", stranger.AccessToken, nil, "")
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDownloadServesAttachment(t *testing.T) {
	user := signIn(t, uniqueEmail())
	project := createProject(t, user.AccessToken, "Downloads", false)
	svg := uploadOne(t, user.AccessToken, project.ID, "logo.svg", "")

	rr := doRequest(t, "GET", "/api/v1/svgs/"+svg.ID+"/download", user.AccessToken, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, testSVG, rr.Body.String())
	require.Equal(t, "image/svg+xml", rr.Header().Get("Content-Type"))
	require.Equal(t, `attachment; filename=logo.svg`, rr.Header().Get("Content-Disposition"))
	require.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	require.Contains(t, rr.Header().Get("Content-Security-Policy"), "sandbox")

	rr = doRequest(t, "GET", "/api/v1/svgs/"+svg.ID, user.AccessToken, nil, "")
	require.EqualValues(t, 1, decode[SVGResponse](t, rr).Downloads)

	require.NoError(t, os.Remove(svgBlobPath(svg.FilePath)))
	rr = doRequest(t, "GET", "/api/v1/svgs/"+svg.ID+"/download", user.AccessToken, nil, "")
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestContentIsSanitized(t *testing.T) {
	user := signIn(t, uniqueEmail())
	project := createProject(t, user.AccessToken, "Unsafe", false)

	hostile := `<svg xmlns="http://www.w3.org/2000/svg" onload="alert(1)"><script>alert(2)</script><circle r="4" onclick="steal()"/></svg>`
	rr := uploadSVGs(t, user.AccessToken, project.ID, "", testFile{name: "evil.svg", content: hostile})
	require.Equal(t, http.StatusCreated, rr.Code)
	svg := decode[UploadResponse](t, rr).Results[0].SVG

	rr = doRequest(t, "GET", "/api/v1/svgs/"+svg.ID+"/content", user.AccessToken, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	markup := decode[SVGContentResponse](t, rr).Markup
	require.Contains(t, markup, "<circle")
	for _, bad := range []string{"script", "onload", "onclick", "alert"} {
		require.NotContains(t, markup, bad)
	}

	require.NoError(t, os.Remove(svgBlobPath(svg.FilePath)))
	rr = doRequest(t, "GET", "/api/v1/svgs/"+svg.ID+"/content", user.AccessToken, nil, "")
	require.Equal(t, http.StatusBadGateway, rr.Code)
	require.Equal(t, "Failed to load SVG", decode[ErrorResponse](t, rr).Error)
}

func TestUpdateSVGSettings(t *testing.T) {
	owner := signIn(t, uniqueEmail())
	stranger := signIn(t, uniqueEmail())
	first := createProject(t, owner.AccessToken, "First", false)
	second := createProject(t, owner.AccessToken, "Second", false)
	foreign := createProject(t, stranger.AccessToken, "Foreign", false)
	svg := uploadOne(t, owner.AccessToken, first.ID, "move-me.svg", "")

	name := "moved.svg"
	tags := []string{" a ", "b", "a", ""}
	rr := doJSON(t, "PATCH", "/api/v1/svgs/"+svg.ID, owner.AccessToken, UpdateSVGRequest{Name: &name, ProjectID: &second.ID, Tags: &tags})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	updated := decode[models.SVG](t, rr)
	require.Equal(t, "moved.svg", updated.Name)
	require.Equal(t, second.ID, updated.ProjectID)
	require.Equal(t, []string{"a", "b"}, updated.Tags)

	rr = doJSON(t, "PATCH", "/api/v1/svgs/"+svg.ID, owner.AccessToken, UpdateSVGRequest{ProjectID: &foreign.ID})
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, "PATCH", "/api/v1/svgs/"+svg.ID, stranger.AccessToken, UpdateSVGRequest{Name: &name})
	require.Equal(t, http.StatusNotFound, rr.Code)

	empty := "  "
	rr = doJSON(t, "PATCH", "/api/v1/svgs/"+svg.ID, owner.AccessToken, UpdateSVGRequest{Name: &empty})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteSVG(t *testing.T) {
	owner := signIn(t, uniqueEmail())
	stranger := signIn(t, uniqueEmail())
	project := createProject(t, owner.AccessToken, "Trash", false)
	svg := uploadOne(t, owner.AccessToken, project.ID, "bye.svg", "")

	rr := doRequest(t, "DELETE", "/api/v1/svgs/"+svg.ID, stranger.AccessToken, nil, "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(t, "DELETE", "/api/v1/svgs/"+svg.ID, owner.AccessToken, nil, "")
	require.Equal(t, http.StatusNoContent, rr.Code)
	require.NoFileExists(t, svgBlobPath(svg.FilePath))

	rr = doRequest(t, "GET", "/api/v1/svgs/"+svg.ID, owner.AccessToken, nil, "")
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSearchAndExplore(t *testing.T) {
	owner := signIn(t, uniqueEmail())
	viewer := signIn(t, uniqueEmail())
	marker := strings.ReplaceAll(viewer.User.ID.String()[:8], "-", "")

	public := createProject(t, owner.AccessToken, "Public "+marker, true)
	private := createProject(t, owner.AccessToken, "Private "+marker, false)
	uploadOne(t, owner.AccessToken, public.ID, marker+"-home.svg", "ui,nav")
	uploadOne(t, owner.AccessToken, public.ID, marker+"-gear.svg", "ui")
	uploadOne(t, owner.AccessToken, private.ID, marker+"-lock.svg", "ui,nav")

	search := func(token, query string) []string {
		rr := doRequest(t, "GET", "/api/v1/search?"+query, token, nil, "")
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var names []string
		for _, s := range decode[[]models.SVGListing](t, rr) {
			names = append(names, s.Name)
		}
		return names
	}

	require.ElementsMatch(t, []string{marker + "-home.svg", marker + "-lock.svg"}, search(owner.AccessToken, "q="+marker+"&tags=nav,ui"))
	require.Equal(t, []string{marker + "-gear.svg", marker + "-home.svg"}, search(owner.AccessToken, "q="+strings.ToUpper(marker)+"&project="+public.ID+"&sort=name"))
	require.Empty(t, search(viewer.AccessToken, "q="+marker))
	require.Equal(t, []string{marker + "-gear.svg", marker + "-home.svg"}, search(viewer.AccessToken, "q="+marker+"&scope=public&sort=name"))

	rr := doRequest(t, "GET", "/api/v1/search?scope=everything", viewer.AccessToken, nil, "")
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(t, "GET", "/api/v1/explore/projects?q="+marker, viewer.AccessToken, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	projects := decode[[]models.ProjectWithStats](t, rr)
	require.Len(t, projects, 1)
	require.Equal(t, public.ID, projects[0].ID)
	require.EqualValues(t, 2, projects[0].SVGCount)

	rr = doRequest(t, "GET", "/api/v1/explore/svgs?q="+marker, viewer.AccessToken, nil, "")
	require.Len(t, decode[[]models.SVGListing](t, rr), 2)
}
