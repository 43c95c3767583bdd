package listing

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

func (r *Repository) Create(ctx context.Context, l *PropertyListing) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *Repository) CreateSaved(ctx context.Context, s *SavedListing) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// ListSaved returns bookmarks, newest first.
func (r *Repository) ListSaved(ctx context.Context) ([]SavedListing, error) {
	rows := make([]SavedListing, 0)
	tx := r.db.WithContext(ctx).Order("timestamp DESC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
