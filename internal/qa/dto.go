package qa

type CreateQuestionRequest struct {
	Text     string `json:"text" validate:"required"`
	UserName string `json:"user_name"`
	Upvotes  int    `json:"upvotes"`
}

type CreateAnswerRequest struct {
	// question_id in the body is ignored; the path parameter wins.
	QuestionID int64  `json:"question_id"`
	Text       string `json:"text" validate:"required"`
	UserName   string `json:"user_name"`
	IsVerified bool   `json:"is_verified"`
}
