package candidate

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	candidates := r.Group("/candidates")
	{
		candidates.POST("", h.Create)
		candidates.GET("", h.Search)
		candidates.GET("/search", h.Search)
		candidates.GET("/:id", h.Get)
		candidates.PUT("/:id", h.Update)
		candidates.DELETE("/:id", h.Delete)
	}
}
