package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableside/internal/domain"
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

func (c *Controller) HandleListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := c.service.ListMenu(r.Context())
	if err != nil {
		c.logger.Error("listing menu failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	dtos := make([]MenuItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, MenuItemDTO{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price,
			Stock: item.Stock,
		})
	}

	c.writeJSON(w, http.StatusOK, MenuResponse{MenuItems: dtos})
}

func (c *Controller) HandleCreateMenuItem(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	if err := r.ParseForm(); err != nil {
		logger.Warn("invalid form body", zap.Error(err))
		c.writeValidationError(w, "invalid form body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be a valid form",
		})
		return
	}

	name := r.PostFormValue("name")

	price, err := strconv.Atoi(r.PostFormValue("price"))
	if err != nil {
		c.writeValidationError(w, "invalid price", apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be an integer",
		})
		return
	}

	stock := domain.DefaultStock
	if raw := r.PostFormValue("stock"); raw != "" {
		stock, err = strconv.Atoi(raw)
		if err != nil {
			c.writeValidationError(w, "invalid stock", apperrors.ValidationDetail{
				Field:   "stock",
				Message: "stock must be an integer",
			})
			return
		}
	}

	item, err := c.service.CreateMenuItem(r.Context(), name, price, stock)
	if err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	logger.Info("menu item created", zap.Int64("menuItemId", item.ID), zap.String("name", item.Name))

	c.writeJSON(w, http.StatusCreated, MenuItemDTO{
		ID:    item.ID,
		Name:  item.Name,
		Price: item.Price,
		Stock: item.Stock,
	})
}

func (c *Controller) HandleDeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		logger.Warn("invalid id in path", zap.Error(err))
		c.writeValidationError(w, "invalid id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
		return
	}

	if err := c.service.DeleteMenuItem(r.Context(), id); err != nil {
		c.handleServiceError(w, err, logger)
		return
	}

	logger.Info("menu item deleted", zap.Int64("menuItemId", id))

	c.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
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
