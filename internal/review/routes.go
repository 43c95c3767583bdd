package review

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/reviews", h.Create)
	r.GET("/reviews/:city", h.GetByCity)
	r.POST("/reviews/:id/like", h.Like)
}
