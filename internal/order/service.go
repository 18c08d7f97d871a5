package order

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tableside/internal/domain"
	apperrors "tableside/internal/errors"
	"tableside/internal/notify"
)

type orderService struct {
	repo      Repository
	publisher notify.Publisher
	logger    *zap.Logger
}

func NewService(repo Repository, publisher notify.Publisher, logger *zap.Logger) Service {
	return &orderService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// PlaceOrder prices the cart, persists the order snapshot and broadcasts a
// new_order event. The event goes out only after the insert succeeded, at
// most once; a publish failure never fails the placement.
func (s *orderService) PlaceOrder(ctx context.Context, tableNumber string, cart domain.Cart) (int64, error) {
	if err := validateCart(tableNumber, cart); err != nil {
		return 0, err
	}

	order := domain.Order{
		TableNumber: tableNumber,
		Items:       cart,
		TotalPrice:  cart.Total(),
		Status:      domain.OrderStatusReceived,
	}

	id, err := s.repo.Insert(ctx, order)
	if err != nil {
		return 0, err
	}

	s.logger.Info("order placed",
		zap.Int64("orderId", id),
		zap.String("tableNumber", tableNumber),
		zap.Int("totalPrice", order.TotalPrice),
	)

	s.publish(ctx, notify.Event{
		Name: notify.EventNewOrder,
		Payload: notify.NewOrderPayload{
			OrderID:     id,
			TableNumber: tableNumber,
		},
	})

	return id, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !domain.IsValidOrderStatus(status) {
		return apperrors.NewValidationError(
			fmt.Sprintf("unrecognized status %q", status),
			apperrors.ValidationDetail{
				Field:   "status",
				Message: "status must be one of RECEIVED, PREPARING, COMPLETED",
			},
		)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.logger.Info("order status updated", zap.Int64("orderId", id), zap.String("status", status))

	s.publish(ctx, notify.Event{
		Name: notify.EventStatusUpdate,
		Payload: notify.StatusUpdatePayload{
			OrderID: id,
			Status:  status,
		},
	})

	return nil
}

func (s *orderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *orderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListDescending(ctx)
}

func (s *orderService) publish(ctx context.Context, event notify.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", zap.String("event", event.Name), zap.Error(err))
	}
}

func validateCart(tableNumber string, cart domain.Cart) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(tableNumber) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "table_number",
			Message: "table_number is required",
		})
	}

	if len(cart) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "cart",
			Message: "cart must not be empty",
		})
	}

	for key, line := range cart {
		if line.Price < 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "cart." + key + ".price",
				Message: "price must be non-negative",
			})
		}
		if line.Quantity < 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "cart." + key + ".quantity",
				Message: "quantity must be non-negative",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}
