package api

import (
	"errors"
	"net/http"

	"svg-vault/internal/cache"
	"svg-vault/internal/database"
	"svg-vault/internal/upload"
)

const multipartMemory = 32 << 20

type UploadResponse struct {
	Uploaded int             `json:"uploaded"`
	Failed   int             `json:"failed"`
	Results  []upload.Result `json:"results"`
}

// @Summary      Upload SVG files
// @Description  Uploads one or more SVG files into a project the caller owns. Files are stored concurrently; the response lists the outcome per file.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        project_id   formData  string  true   "Target project"
// @Param        description  formData  string  false  "Description for every file"
// @Param        tags         formData  string  false  "Comma separated tags"
// @Param        files        formData  file    true   "SVG files"
// @Success      201          {object}  UploadResponse  "All files uploaded"
// @Success      207          {object}  UploadResponse  "Some files failed"
// @Failure      400          {object}  ErrorResponse
// @Failure      404          {object}  ErrorResponse
// @Failure      500          {object}  UploadResponse  "Every file failed"
// @Router       /uploads [post]
func (s *Server) UploadSVGsHandler(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	req := upload.Request{
		UserID:    id.UserID,
		ProjectID: r.FormValue("project_id"),
		Tags:      r.MultipartForm.Value["tags"],
		Files:     r.MultipartForm.File["files"],
	}
	if description := r.FormValue("description"); description != "" {
		req.Description = &description
	}

	results, err := s.uploader.Upload(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrNoFiles):
			writeError(w, http.StatusBadRequest, "Please select at least one file")
		case errors.Is(err, upload.ErrNoSVGFiles):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, database.ErrProjectNotFound) && req.ProjectID == "":
			writeError(w, http.StatusBadRequest, "Please select a project")
		default:
			s.writeStoreError(w, err, "Failed to upload files")
		}
		return
	}

	ok, failed := upload.Summarize(results)
	uploadedFiles.WithLabelValues("ok").Add(float64(ok))
	uploadedFiles.WithLabelValues("failed").Add(float64(failed))

	status := http.StatusCreated
	switch {
	case ok == 0:
		status = http.StatusInternalServerError
	case failed > 0:
		status = http.StatusMultiStatus
	}

	if ok > 0 {
		s.afterMutation(r.Context(), cache.MutationUploadSVGs, map[string]interface{}{"project_id": req.ProjectID, "count": ok}, id.UserID)
	}
	writeJSON(w, status, UploadResponse{Uploaded: ok, Failed: failed, Results: results})
}
