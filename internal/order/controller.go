package order

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "tableside/internal/errors"
)

type Controller struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON with integer price and quantity",
		})
		return
	}

	if _, err := c.service.PlaceOrder(r.Context(), req.TableNumber, req.Cart); err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, CreateOrderResponse{Success: true})
}

func (c *Controller) HandleGetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.service.ListOrders(r.Context())
	if err != nil {
		c.logger.Error("listing orders failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	summaries := make([]OrderSummaryDTO, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, OrderSummaryDTO{
			ID:          o.ID,
			TableNumber: o.TableNumber,
			Status:      o.Status,
		})
	}

	c.writeJSON(w, http.StatusOK, ListOrdersResponse{Orders: summaries})
}

func (c *Controller) HandleOrderDetail(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.orderIDFromPath(w, r, logger)
	if !ok {
		return
	}

	order, err := c.service.GetOrder(r.Context(), id)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, OrderDetailDTO{
		ID:          order.ID,
		TableNumber: order.TableNumber,
		Items:       order.Items,
		TotalPrice:  order.TotalPrice,
		Status:      order.Status,
	})
}

func (c *Controller) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.orderIDFromPath(w, r, logger)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		logger.Warn("invalid form body", zap.Error(err))
		c.writeValidationError(w, "invalid form body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be a valid form",
		})
		return
	}

	status := r.PostFormValue("status")

	if err := c.service.UpdateStatus(r.Context(), id, status); err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (c *Controller) orderIDFromPath(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		logger.Warn("invalid order id in path", zap.Error(err))
		c.writeValidationError(w, "invalid id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

func (c *Controller) handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": err.Error(),
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
