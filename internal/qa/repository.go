package qa

import (
	"context"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateQuestion(ctx context.Context, q *Question) error {
	return r.db.WithContext(ctx).Create(q).Error
}

// ListQuestions returns all questions, newest first.
func (r *Repository) ListQuestions(ctx context.Context) ([]Question, error) {
	rows := make([]Question, 0)
	tx := r.db.WithContext(ctx).Order("timestamp DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *Repository) QuestionExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Question{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) CreateAnswer(ctx context.Context, a *Answer) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// ListAnswers returns the answers of one question, oldest first. An unknown
// question id yields an empty list, not an error.
func (r *Repository) ListAnswers(ctx context.Context, questionID int64) ([]Answer, error) {
	rows := make([]Answer, 0)
	tx := r.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("timestamp ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
