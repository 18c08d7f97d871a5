package catalog

import (
	"context"
	"strings"

	"tableside/internal/domain"
	apperrors "tableside/internal/errors"
)

type catalogService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &catalogService{repo: repo}
}

func (s *catalogService) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.List(ctx)
}

func (s *catalogService) CreateMenuItem(ctx context.Context, name string, price, stock int) (*domain.MenuItem, error) {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(name) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}
	if price < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be non-negative",
		})
	}
	if stock < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "stock",
			Message: "stock must be non-negative",
		})
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("validation failed", details...)
	}

	item := domain.MenuItem{
		Name:  name,
		Price: price,
		Stock: stock,
	}

	id, err := s.repo.Insert(ctx, item)
	if err != nil {
		return nil, err
	}

	item.ID = id
	return &item, nil
}

func (s *catalogService) DeleteMenuItem(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
