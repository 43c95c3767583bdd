package listing

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

// Submit stores an owner-submitted listing with status Pending.
func (s *Service) Submit(ctx context.Context, req SubmitListingRequest) (*PropertyListing, error) {
	if strings.TrimSpace(req.OwnerName) == "" || strings.TrimSpace(req.Contact) == "" ||
		strings.TrimSpace(req.City) == "" || strings.TrimSpace(req.Area) == "" {
		return nil, ErrInvalidRequest
	}

	switch PropertyType(req.Type) {
	case TypeFlat, TypePG, TypeHouse:
	default:
		return nil, ErrInvalidRequest
	}

	l := &PropertyListing{
		OwnerName:   req.OwnerName,
		Contact:     req.Contact,
		Type:        PropertyType(req.Type),
		City:        req.City,
		Area:        req.Area,
		Description: req.Description,
		Status:      StatusPending,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Save bookmarks a listing snapshot. Blank fields fall back to the same
// placeholders the table defaults use, so legacy clients that send only the
// listing id still produce a readable row.
func (s *Service) Save(ctx context.Context, req SaveListingRequest) (*SavedListing, error) {
	if strings.TrimSpace(req.ListingID) == "" {
		return nil, ErrInvalidRequest
	}

	sv := &SavedListing{
		ListingID: req.ListingID,
		Name:      fallback(req.Name, "Unknown Property"),
		Price:     req.Price,
		Area:      fallback(req.Area, "Unknown Area"),
		City:      fallback(req.City, "Unknown City"),
		Image:     req.Image,
		Type:      fallback(req.Type, "Flat"),
	}
	if err := s.repo.CreateSaved(ctx, sv); err != nil {
		return nil, err
	}
	return sv, nil
}

func (s *Service) ListSaved(ctx context.Context) ([]SavedListing, error) {
	return s.repo.ListSaved(ctx)
}

func fallback(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
