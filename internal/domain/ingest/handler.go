package ingest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staffcrm/internal/parser"
	"staffcrm/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// UploadResume godoc
// @Summary Upload a resume and ingest it as a candidate
// @Description Stages the file, parses it, optionally checks duplicates, persists the candidate and returns a refreshed search page.
// @Tags Resumes
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Resume document (pdf, doc, docx, rtf, odt, txt)"
// @Param candidate_id formData int false "Existing candidate to update in place"
// @Param check_duplicates formData bool false "Run the duplicate gate before persisting"
// @Param page_size formData int false "Page size for the refreshed search"
// @Success 200 {object} map[string]interface{}
// @Failure 400,413,422,500 {object} map[string]interface{}
// @Router /candidates/resume [post]
func (h *Handler) UploadResume(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "No file provided")
		return
	}

	opts := parseOptions(c)

	staged, err := h.service.Stager().Stage(fileHeader)
	if err != nil {
		writeStagingError(c, err)
		return
	}

	result, err := h.service.Ingest(c.Request.Context(), staged, opts)
	if err != nil {
		writePipelineError(c, err)
		return
	}

	writeResult(c, result)
}

// ReprocessResume godoc
// @Summary Re-save a previously staged resume
// @Description Re-runs mapping and persistence from the staged file and its sidecar. Used after duplicate resolution; the duplicate gate is skipped.
// @Tags Resumes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ReprocessRequest true "Staged file reference"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404,422,500 {object} map[string]interface{}
// @Router /candidates/resume/reprocess [post]
func (h *Handler) ReprocessResume(c *gin.Context) {
	var req ReprocessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if req.InternalFileName == "" {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "internal_file_name is required")
		return
	}

	staged, err := h.service.Stager().Lookup(req.InternalFileName, req.OriginalFileName)
	if err != nil {
		response.Error(c, http.StatusNotFound, "STAGED_FILE_MISSING", "Staged file not found")
		return
	}

	opts := Options{PageSize: req.PageSize}
	if req.CandidateID != nil && *req.CandidateID > 0 {
		opts.CandidateID = req.CandidateID
	}

	result, err := h.service.Reprocess(c.Request.Context(), staged, opts)
	if err != nil {
		writePipelineError(c, err)
		return
	}

	writeResult(c, result)
}

func parseOptions(c *gin.Context) Options {
	opts := Options{
		CheckDuplicates: c.PostForm("check_duplicates") == "true",
	}
	if v, err := strconv.Atoi(c.DefaultPostForm("page_size", "20")); err == nil && v > 0 {
		opts.PageSize = v
	} else {
		opts.PageSize = 20
	}
	if v, err := strconv.ParseInt(c.PostForm("candidate_id"), 10, 64); err == nil && v > 0 {
		opts.CandidateID = &v
	}
	return opts
}

func writeStagingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyFile):
		response.Error(c, http.StatusBadRequest, "EMPTY_FILE", err.Error())
	case errors.Is(err, ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
	case errors.Is(err, ErrInvalidFileType):
		response.Error(c, http.StatusBadRequest, "INVALID_FILE_TYPE", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "STAGING_FAILED", "Failed to stage upload")
	}
}

func writePipelineError(c *gin.Context, err error) {
	if errors.Is(err, parser.ErrParse) {
		// The staged file is preserved; the caller may retry.
		response.Error(c, http.StatusUnprocessableEntity, "PARSE_FAILED", "Resume could not be parsed")
		return
	}
	response.Error(c, http.StatusInternalServerError, "INGEST_FAILED", "Resume ingestion failed")
}

func writeResult(c *gin.Context, result *Result) {
	if result.HasDuplicates() {
		response.Success(c, http.StatusOK, gin.H{
			"duplicates":         result.Duplicates,
			"file_name":          result.FileName,
			"internal_file_name": result.InternalFileName,
			"email":              result.Email,
			"phone":              result.Phone,
		})
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"candidate_id": result.CandidateID,
		"search":       result.Search,
		"relocated":    result.Relocated,
	})
}
