package requisition

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"staffcrm/internal/pkg/response"
	"staffcrm/internal/pkg/validator"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Create godoc
// @Summary Create a requisition
// @Tags Requisitions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Router /requisitions [post]
func (h *Handler) Create(c *gin.Context) {
	var req Requisition
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", errs)
		return
	}

	req.ID = 0
	if req.Status == "" {
		req.Status = StatusOpen
	}
	if req.Openings <= 0 {
		req.Openings = 1
	}
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	if err := h.repo.Create(c.Request.Context(), &req); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create requisition")
		return
	}
	response.Success(c, http.StatusCreated, req)
}

// Get godoc
// @Summary Get a requisition
// @Tags Requisitions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Requisition ID"
// @Success 200 {object} map[string]interface{}
// @Router /requisitions/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid requisition ID")
		return
	}

	req, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrRequisitionNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Requisition not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load requisition")
		return
	}
	response.Success(c, http.StatusOK, req)
}

// Update godoc
// @Summary Update a requisition
// @Tags Requisitions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Requisition ID"
// @Success 200 {object} map[string]interface{}
// @Router /requisitions/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid requisition ID")
		return
	}

	existing, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrRequisitionNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Requisition not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load requisition")
		return
	}

	var req Requisition
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", errs)
		return
	}

	req.ID = id
	req.CreatedAt = existing.CreatedAt
	req.UpdatedAt = time.Now()
	if req.Status == "" {
		req.Status = existing.Status
	}

	if err := h.repo.Update(c.Request.Context(), &req); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update requisition")
		return
	}
	response.Success(c, http.StatusOK, req)
}

// Delete godoc
// @Summary Delete a requisition
// @Tags Requisitions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Requisition ID"
// @Success 200 {object} map[string]interface{}
// @Router /requisitions/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid requisition ID")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete requisition")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// List godoc
// @Summary List requisitions
// @Tags Requisitions
// @Produce json
// @Security BearerAuth
// @Param company_id query int false "Filter by company"
// @Param status query string false "Filter by status (open, on_hold, closed)"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} map[string]interface{}
// @Router /requisitions [get]
func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var companyID *int64
	if v, err := strconv.ParseInt(c.Query("company_id"), 10, 64); err == nil && v > 0 {
		companyID = &v
	}
	var status *Status
	if v := c.Query("status"); v != "" {
		s := Status(v)
		status = &s
	}

	rows, total, err := h.repo.List(c.Request.Context(), companyID, status, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list requisitions")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"requisitions": rows, "total": total})
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	requisitions := r.Group("/requisitions")
	{
		requisitions.POST("", h.Create)
		requisitions.GET("", h.List)
		requisitions.GET("/:id", h.Get)
		requisitions.PUT("/:id", h.Update)
		requisitions.DELETE("/:id", h.Delete)
	}
}
