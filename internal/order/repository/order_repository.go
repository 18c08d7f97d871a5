package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"tableside/internal/domain"
	"tableside/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// Insert stores the order with its items serialized as a JSON text blob, a
// value snapshot decoupled from the menu rows.
func (r *MySQLOrderRepository) Insert(ctx context.Context, order domain.Order) (int64, error) {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return 0, fmt.Errorf("marshaling order items: %w", err)
	}

	query := `INSERT INTO Orders (tableNumber, items, totalPrice, status) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, order.TableNumber, string(itemsJSON), order.TotalPrice, order.Status)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return id, nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT id, tableNumber, items, totalPrice, status, createdAt, updatedAt
		FROM Orders
		WHERE id = ?
	`

	var order domain.Order
	var itemsJSON string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.TableNumber, &itemsJSON, &order.TotalPrice,
		&order.Status, &order.CreatedAt, &order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	if err := json.Unmarshal([]byte(itemsJSON), &order.Items); err != nil {
		return nil, fmt.Errorf("unmarshaling order items: %w", err)
	}

	return &order, nil
}

func (r *MySQLOrderRepository) ListDescending(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT id, tableNumber, items, totalPrice, status, createdAt, updatedAt
		FROM Orders
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		var itemsJSON string
		err := rows.Scan(
			&order.ID, &order.TableNumber, &itemsJSON, &order.TotalPrice,
			&order.Status, &order.CreatedAt, &order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		if err := json.Unmarshal([]byte(itemsJSON), &order.Items); err != nil {
			return nil, fmt.Errorf("unmarshaling order items: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

// UpdateStatus is a single UPDATE statement, so concurrent updates on the
// same row serialize at the database and the last write wins.
func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE Orders SET status = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return nil
}
