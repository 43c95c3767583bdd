package qa

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid_request")
	ErrQuestionNotFound = errors.New("question_not_found")
)
