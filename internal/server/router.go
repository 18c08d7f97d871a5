package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"tableside/internal/catalog"
	"tableside/internal/order"
)

func NewRouter(catalogCtrl *catalog.Controller, orderCtrl *order.Controller, events *EventsHandler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	// Customer surface.
	r.Get("/menu", catalogCtrl.HandleListMenu)
	r.Post("/create_order", orderCtrl.HandleCreateOrder)
	r.Get("/get_orders", orderCtrl.HandleGetOrders)

	// Admin surface.
	r.Route("/admin", func(r chi.Router) {
		r.Get("/orders/{id}", orderCtrl.HandleOrderDetail)
		r.Post("/orders/{id}", orderCtrl.HandleUpdateStatus)
		r.Get("/menu", catalogCtrl.HandleListMenu)
		r.Post("/menu/create", catalogCtrl.HandleCreateMenuItem)
		r.Get("/menu/delete/{id}", catalogCtrl.HandleDeleteMenuItem)
		r.Get("/events", events.HandleEvents)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
