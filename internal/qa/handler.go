package qa

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

// ListQuestions handles GET /questions, newest first.
func (h *Handler) ListQuestions(c *gin.Context) {
	questions, err := h.svc.ListQuestions(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Could not load questions")
		return
	}
	c.JSON(http.StatusOK, questions)
}

// CreateQuestion handles POST /questions.
func (h *Handler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fields := validator.Validate(&req); fields != nil {
		response.ValidationError(c, http.StatusUnprocessableEntity, "Validation failed", fields)
		return
	}

	q, err := h.svc.CreateQuestion(c.Request.Context(), req)
	if err != nil {
		if err == ErrInvalidRequest {
			response.Error(c, http.StatusBadRequest, "Invalid question")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Could not save question")
		return
	}

	c.JSON(http.StatusOK, q)
}

// ListAnswers handles GET /questions/:id/answers, oldest first.
func (h *Handler) ListAnswers(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid question ID")
		return
	}

	answers, err := h.svc.ListAnswers(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Could not load answers")
		return
	}
	c.JSON(http.StatusOK, answers)
}

// CreateAnswer handles POST /questions/:id/answers.
func (h *Handler) CreateAnswer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid question ID")
		return
	}

	var req CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fields := validator.Validate(&req); fields != nil {
		response.ValidationError(c, http.StatusUnprocessableEntity, "Validation failed", fields)
		return
	}

	a, err := h.svc.CreateAnswer(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrInvalidRequest:
			response.Error(c, http.StatusBadRequest, "Invalid answer")
		case ErrQuestionNotFound:
			response.Error(c, http.StatusNotFound, "Question not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Could not save answer")
		}
		return
	}

	c.JSON(http.StatusOK, a)
}
