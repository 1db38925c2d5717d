package company

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
// @Summary Create a company
// @Tags Companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Router /companies [post]
func (h *Handler) Create(c *gin.Context) {
	var req Company
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", errs)
		return
	}

	req.ID = 0
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	if err := h.repo.Create(c.Request.Context(), &req); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create company")
		return
	}
	response.Success(c, http.StatusCreated, req)
}

// Get godoc
// @Summary Get a company
// @Tags Companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} map[string]interface{}
// @Router /companies/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid company ID")
		return
	}

	company, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrCompanyNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Company not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load company")
		return
	}
	response.Success(c, http.StatusOK, company)
}

// Update godoc
// @Summary Update a company
// @Tags Companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} map[string]interface{}
// @Router /companies/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid company ID")
		return
	}

	existing, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrCompanyNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Company not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load company")
		return
	}

	var req Company
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

	if err := h.repo.Update(c.Request.Context(), &req); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update company")
		return
	}
	response.Success(c, http.StatusOK, req)
}

// Delete godoc
// @Summary Delete a company
// @Tags Companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} map[string]interface{}
// @Router /companies/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid company ID")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete company")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// List godoc
// @Summary List companies
// @Tags Companies
// @Produce json
// @Security BearerAuth
// @Param q query string false "Name filter"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} map[string]interface{}
// @Router /companies [get]
func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	rows, total, err := h.repo.List(c.Request.Context(), c.Query("q"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list companies")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"companies": rows, "total": total})
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	companies := r.Group("/companies")
	{
		companies.POST("", h.Create)
		companies.GET("", h.List)
		companies.GET("/:id", h.Get)
		companies.PUT("/:id", h.Update)
		companies.DELETE("/:id", h.Delete)
	}
}
