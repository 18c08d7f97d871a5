package order

import (
	"context"

	"tableside/internal/domain"
)

type Service interface {
	PlaceOrder(ctx context.Context, tableNumber string, cart domain.Cart) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

type Repository interface {
	Insert(ctx context.Context, order domain.Order) (int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	ListDescending(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}
