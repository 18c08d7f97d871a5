package catalog

import (
	"database/sql"

	"go.uber.org/zap"

	"tableside/internal/catalog/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLMenuRepository(db)
	svc := NewService(repo)
	return NewController(svc, logger)
}
