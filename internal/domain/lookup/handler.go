package lookup

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staffcrm/internal/pkg/response"
	"staffcrm/internal/pkg/validator"
)

type Handler struct {
	repo Repository
	zips *ZipCache
}

func NewHandler(repo Repository, zips *ZipCache) *Handler {
	return &Handler{repo: repo, zips: zips}
}

// ListByType godoc
// @Summary List lookup codes of a type
// @Tags Lookups
// @Produce json
// @Security BearerAuth
// @Param type path string true "Code type (job_option, tax_term, requisition_status)"
// @Success 200 {object} map[string]interface{}
// @Router /lookups/codes/{type} [get]
func (h *Handler) ListByType(c *gin.Context) {
	rows, err := h.repo.ListByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list codes")
		return
	}
	response.Success(c, http.StatusOK, rows)
}

// Create godoc
// @Summary Create a lookup code (admin)
// @Tags Lookups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Router /lookups/codes [post]
func (h *Handler) Create(c *gin.Context) {
	var req Code
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", errs)
		return
	}

	req.ID = 0
	if err := h.repo.Create(c.Request.Context(), &req); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create code")
		return
	}
	response.Success(c, http.StatusCreated, req)
}

// Update godoc
// @Summary Update a lookup code (admin)
// @Tags Lookups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Code ID"
// @Success 200 {object} map[string]interface{}
// @Router /lookups/codes/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid code ID")
		return
	}

	var req Code
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	req.ID = id
	if err := h.repo.Update(c.Request.Context(), &req); err != nil {
		if err == ErrCodeNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lookup code not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update code")
		return
	}
	response.Success(c, http.StatusOK, req)
}

// Delete godoc
// @Summary Delete a lookup code (admin)
// @Tags Lookups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Code ID"
// @Success 200 {object} map[string]interface{}
// @Router /lookups/codes/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid code ID")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete code")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// RefreshZips godoc
// @Summary Reload the zip→city/state reference cache (admin)
// @Tags Lookups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /lookups/zips/refresh [post]
func (h *Handler) RefreshZips(c *gin.Context) {
	if err := h.zips.Refresh(c.Request.Context()); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to refresh zip cache")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"refreshed": true})
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	lookups := r.Group("/lookups")
	{
		lookups.POST("/codes", h.Create)
		lookups.GET("/codes/:type", h.ListByType)
		lookups.PUT("/codes/:id", h.Update)
		lookups.DELETE("/codes/:id", h.Delete)
		lookups.POST("/zips/refresh", h.RefreshZips)
	}
}
