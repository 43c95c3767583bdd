package review

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type Service struct {
	reviews *Repository
}

func NewService(reviews *Repository) *Service {
	return &Service{reviews: reviews}
}

func (s *Service) Create(ctx context.Context, req CreateReviewRequest) (*RentReview, error) {
	if strings.TrimSpace(req.City) == "" || strings.TrimSpace(req.ReviewText) == "" {
		return nil, ErrInvalidRequest
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}

	rv := &RentReview{
		City:       req.City,
		ReviewText: req.ReviewText,
		Rating:     req.Rating,
		Likes:      req.Likes,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) GetByCity(ctx context.Context, city string) ([]RentReview, error) {
	return s.reviews.GetByCity(ctx, city)
}

// Like increments the like counter of one review and returns the new count.
func (s *Service) Like(ctx context.Context, id int64) (int, error) {
	likes, err := s.reviews.IncrementLikes(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return likes, nil
}
