package listing

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/listings", h.Submit)
	r.POST("/saved-listings", h.Save)
	r.GET("/saved-listings", h.ListSaved)
}
