package review

import (
	"net/http"
	"strconv"

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

// Create handles POST /reviews. The stored row, including the generated id,
// is returned as-is.
func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fields := validator.Validate(&req); fields != nil {
		response.ValidationError(c, http.StatusUnprocessableEntity, "Validation failed", fields)
		return
	}

	rv, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		if err == ErrInvalidRequest {
			response.Error(c, http.StatusBadRequest, "Invalid review")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Could not save review")
		return
	}

	c.JSON(http.StatusOK, rv)
}

// GetByCity handles GET /reviews/:city, most-liked first.
func (h *Handler) GetByCity(c *gin.Context) {
	reviews, err := h.svc.GetByCity(c.Request.Context(), c.Param("city"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Could not load reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Like handles POST /reviews/:id/like.
func (h *Handler) Like(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid review ID")
		return
	}

	likes, err := h.svc.Like(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "Review not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Could not like review")
		return
	}

	c.JSON(http.StatusOK, LikeResponse{Likes: likes})
}
