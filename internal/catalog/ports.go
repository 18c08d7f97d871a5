package catalog

import (
	"context"

	"tableside/internal/domain"
)

type Service interface {
	ListMenu(ctx context.Context) ([]domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, name string, price, stock int) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id int64) error
}

type Repository interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	Insert(ctx context.Context, item domain.MenuItem) (int64, error)
	Delete(ctx context.Context, id int64) error
}
