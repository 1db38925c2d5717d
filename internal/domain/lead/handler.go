package lead

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staffcrm/internal/pkg/response"
	"staffcrm/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Submit godoc
// @Summary Submit a new lead
// @Tags Leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SubmitLeadRequest true "Lead"
// @Success 201 {object} map[string]interface{}
// @Router /leads [post]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", errs)
		return
	}

	l, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit lead")
		return
	}
	response.Success(c, http.StatusCreated, l)
}

// Get godoc
// @Summary Get a lead
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Success 200 {object} map[string]interface{}
// @Router /leads/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	l, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrLeadNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load lead")
		return
	}
	response.Success(c, http.StatusOK, l)
}

// List godoc
// @Summary List leads
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {object} map[string]interface{}
// @Router /leads [get]
func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var status *Status
	if v := c.Query("status"); v != "" {
		s := Status(v)
		status = &s
	}

	rows, total, err := h.service.List(c.Request.Context(), status, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list leads")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"leads": rows, "total": total})
}

// UpdateStatus godoc
// @Summary Update lead status
// @Tags Leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Param request body UpdateLeadStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Router /leads/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	var req UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", errs)
		return
	}

	l, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status, req.Notes)
	if err != nil {
		switch err {
		case ErrLeadNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
		case ErrAlreadyConverted:
			response.Error(c, http.StatusConflict, "ALREADY_CONVERTED", "Lead already converted")
		case ErrInvalidStatus:
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Invalid lead status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update lead")
		}
		return
	}
	response.Success(c, http.StatusOK, l)
}

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	leads := r.Group("/leads")
	{
		leads.POST("", h.Submit)
		leads.GET("", h.List)
		leads.GET("/:id", h.Get)
		leads.PATCH("/:id/status", h.UpdateStatus)
	}
}
