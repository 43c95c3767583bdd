package qa

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/questions", h.ListQuestions)
	r.POST("/questions", h.CreateQuestion)
	r.GET("/questions/:id/answers", h.ListAnswers)
	r.POST("/questions/:id/answers", h.CreateAnswer)
}
