package guide

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentguide/internal/pkg/response"
	"rentguide/internal/pkg/validator"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// CityInfo handles GET /city-info/:city. Always 200 with all seven fields.
func (h *Handler) CityInfo(c *gin.Context) {
	info := h.svc.CityInfo(c.Request.Context(), c.Param("city"))
	c.JSON(http.StatusOK, info)
}

// Estimate handles POST /estimate.
func (h *Handler) Estimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fields := validator.Validate(&req); fields != nil {
		response.ValidationError(c, http.StatusUnprocessableEntity, "Validation failed", fields)
		return
	}

	est, err := h.svc.Estimate(req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid estimate request")
		return
	}

	c.JSON(http.StatusOK, est)
}

// MarketStats handles GET /market-stats/:city.
func (h *Handler) MarketStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.MarketStats(c.Param("city")))
}

// SearchProperties handles GET /search-properties?query=...&city=...
func (h *Handler) SearchProperties(c *gin.Context) {
	listings := h.svc.SearchProperties(c.Query("query"), c.Query("city"))
	c.JSON(http.StatusOK, listings)
}
