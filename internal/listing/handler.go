package listing

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

// Submit handles POST /listings. Returns an acknowledgment with the generated
// id rather than the full row.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fields := validator.Validate(&req); fields != nil {
		response.ValidationError(c, http.StatusUnprocessableEntity, "Validation failed", fields)
		return
	}

	l, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		if err == ErrInvalidRequest {
			response.Error(c, http.StatusBadRequest, "Invalid listing")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Could not save listing")
		return
	}

	c.JSON(http.StatusOK, SubmitListingResponse{
		Status:  "success",
		Message: "Listing submitted for approval",
		ID:      l.ID,
	})
}

// Save handles POST /saved-listings.
func (h *Handler) Save(c *gin.Context) {
	var req SaveListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fields := validator.Validate(&req); fields != nil {
		response.ValidationError(c, http.StatusUnprocessableEntity, "Validation failed", fields)
		return
	}

	sv, err := h.svc.Save(c.Request.Context(), req)
	if err != nil {
		if err == ErrInvalidRequest {
			response.Error(c, http.StatusBadRequest, "Invalid saved listing")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Could not save bookmark")
		return
	}

	c.JSON(http.StatusOK, sv)
}

// ListSaved handles GET /saved-listings.
func (h *Handler) ListSaved(c *gin.Context) {
	saved, err := h.svc.ListSaved(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Could not load bookmarks")
		return
	}
	c.JSON(http.StatusOK, saved)
}
