package qa

import (
	"context"
	"strings"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateQuestion(ctx context.Context, req CreateQuestionRequest) (*Question, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrInvalidRequest
	}

	author := strings.TrimSpace(req.UserName)
	if author == "" {
		author = DefaultQuestionAuthor
	}

	q := &Question{
		Text:     req.Text,
		UserName: author,
		Upvotes:  req.Upvotes,
	}
	if err := s.repo.CreateQuestion(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *Service) ListQuestions(ctx context.Context) ([]Question, error) {
	return s.repo.ListQuestions(ctx)
}

func (s *Service) ListAnswers(ctx context.Context, questionID int64) ([]Answer, error) {
	return s.repo.ListAnswers(ctx, questionID)
}

// CreateAnswer stores an answer under the question named by the path. The
// referenced question must exist; the question id supplied in the request
// body is always overridden.
func (s *Service) CreateAnswer(ctx context.Context, questionID int64, req CreateAnswerRequest) (*Answer, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrInvalidRequest
	}

	exists, err := s.repo.QuestionExists(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrQuestionNotFound
	}

	author := strings.TrimSpace(req.UserName)
	if author == "" {
		author = DefaultAnswerAuthor
	}

	a := &Answer{
		QuestionID: questionID,
		Text:       req.Text,
		UserName:   author,
		IsVerified: req.IsVerified,
	}
	if err := s.repo.CreateAnswer(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
