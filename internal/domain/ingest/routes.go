package ingest

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	resumes := r.Group("/candidates/resume")
	{
		resumes.POST("", h.UploadResume)
		resumes.POST("/reprocess", h.ReprocessResume)
	}
}
