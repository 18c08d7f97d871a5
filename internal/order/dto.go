package order

import "tableside/internal/domain"

type CreateOrderRequest struct {
	TableNumber string      `json:"table_number"`
	Cart        domain.Cart `json:"cart"`
}

type CreateOrderResponse struct {
	Success bool `json:"success"`
}

type OrderSummaryDTO struct {
	ID          int64  `json:"id"`
	TableNumber string `json:"table_number"`
	Status      string `json:"status"`
}

type ListOrdersResponse struct {
	Orders []OrderSummaryDTO `json:"orders"`
}

type OrderDetailDTO struct {
	ID          int64       `json:"id"`
	TableNumber string      `json:"table_number"`
	Items       domain.Cart `json:"items"`
	TotalPrice  int         `json:"total_price"`
	Status      string      `json:"status"`
}
