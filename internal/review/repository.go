package review

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, rv *RentReview) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*RentReview, error) {
	var rv RentReview
	tx := r.db.WithContext(ctx).First(&rv, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &rv, nil
}

// GetByCity returns reviews whose city contains the given fragment,
// most-liked first. Matching is case-sensitive, as the query contract requires.
func (r *Repository) GetByCity(ctx context.Context, city string) ([]RentReview, error) {
	rows := make([]RentReview, 0)
	tx := r.db.WithContext(ctx).
		Where("city LIKE ?", "%"+city+"%").
		Order("likes DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// IncrementLikes bumps the like counter by one in a single statement so
// concurrent likes never lose an update, and returns the new count.
func (r *Repository) IncrementLikes(ctx context.Context, id int64) (int, error) {
	tx := r.db.WithContext(ctx).
		Model(&RentReview{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	rv, err := r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, gorm.ErrRecordNotFound
		}
		return 0, err
	}
	return rv.Likes, nil
}
