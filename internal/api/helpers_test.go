package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"svg-vault/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M5 12h14"/></svg>`

type testFile struct {
	name        string
	contentType string
	content     string
}

func uniqueEmail() string {
	return "user-" + uuid.NewString()[:8] + "@example.com"
}

func doRequest(t *testing.T, method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rr := httptest.NewRecorder()
	testRouter.ServeHTTP(rr, req)
	return rr
}

func doRequestTo(t *testing.T, h http.Handler, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func doJSON(t *testing.T, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}
	return doRequest(t, method, path, token, body, "application/json")
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

// signIn runs the one-time code flow and returns the session.
func signIn(t *testing.T, email string) TokenResponse {
	t.Helper()
	rr := doJSON(t, "POST", "/api/v1/auth/otp", "", SignInRequest{Email: email})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	code := testSender.last(strings.ToLower(email))
	require.Len(t, code, 6)

	rr = doJSON(t, "POST", "/api/v1/auth/verify", "", VerifyOTPRequest{Email: email, Token: code})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	return decode[TokenResponse](t, rr)
}

func createProject(t *testing.T, token, name string, public bool) models.Project {
	t.Helper()
	rr := doJSON(t, "POST", "/api/v1/projects", token, CreateProjectRequest{Name: name, IsPublic: public})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[models.Project](t, rr)
}

func multipartBody(t *testing.T, fields map[string]string, field string, files []testFile) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+f.name+`"`)
		if f.contentType != "" {
			h.Set("Content-Type", f.contentType)
		}
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = io.WriteString(part, f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func uploadSVGs(t *testing.T, token, projectID, tags string, files ...testFile) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, map[string]string{"project_id": projectID, "tags": tags}, "files", files)
	return doRequest(t, "POST", "/api/v1/uploads", token, body, contentType)
}

// uploadOne uploads a single SVG and returns the stored row.
func uploadOne(t *testing.T, token, projectID, name string, tags string) models.SVG {
	t.Helper()
	rr := uploadSVGs(t, token, projectID, tags, testFile{name: name, contentType: "image/svg+xml", content: testSVG})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	resp := decode[UploadResponse](t, rr)
	require.Len(t, resp.Results, 1)
	require.NotNil(t, resp.Results[0].SVG)
	return *resp.Results[0].SVG
}
