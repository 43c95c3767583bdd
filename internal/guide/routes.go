package guide

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/city-info/:city", h.CityInfo)
	r.POST("/estimate", h.Estimate)
	r.GET("/market-stats/:city", h.MarketStats)
	r.GET("/search-properties", h.SearchProperties)
}
