package order

import (
	"database/sql"

	"go.uber.org/zap"

	"tableside/internal/notify"
	"tableside/internal/order/repository"
)

func NewModule(db *sql.DB, publisher notify.Publisher, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLOrderRepository(db)
	svc := NewService(repo, publisher, logger)
	return NewController(svc, logger)
}
