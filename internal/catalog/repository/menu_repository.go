package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tableside/internal/domain"
	"tableside/internal/errors"
)

type MySQLMenuRepository struct {
	db *sql.DB
}

func NewMySQLMenuRepository(db *sql.DB) *MySQLMenuRepository {
	return &MySQLMenuRepository{db: db}
}

func (r *MySQLMenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	query := `
		SELECT id, name, price, stock, createdAt, updatedAt
		FROM MenuItems
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying menu items: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		err := rows.Scan(
			&item.ID, &item.Name, &item.Price, &item.Stock,
			&item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning menu item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating menu item rows: %w", err)
	}

	return items, nil
}

func (r *MySQLMenuRepository) Insert(ctx context.Context, item domain.MenuItem) (int64, error) {
	query := `INSERT INTO MenuItems (name, price, stock) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, item.Name, item.Price, item.Stock)
	if err != nil {
		return 0, fmt.Errorf("inserting menu item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return id, nil
}

func (r *MySQLMenuRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM MenuItems WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting menu item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("menu item with id %d not found", id))
	}

	return nil
}
