package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogrepo "tableside/internal/catalog/repository"
	"tableside/internal/domain"
	"tableside/internal/errors"
	"tableside/internal/testutil"
)

// Unit Tests

func TestNewMySQLOrderRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestOrderRepository_InsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	cart := domain.Cart{
		"burger": {Price: 8, Quantity: 2},
		"fries":  {Price: 3, Quantity: 1},
	}

	id, err := repo.Insert(context.Background(), domain.Order{
		TableNumber: "12",
		Items:       cart,
		TotalPrice:  19,
		Status:      domain.OrderStatusReceived,
	})
	require.NoError(t, err)

	order, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, order.ID)
	assert.Equal(t, "12", order.TableNumber)
	assert.Equal(t, 19, order.TotalPrice)
	assert.Equal(t, domain.OrderStatusReceived, order.Status)
	assert.Equal(t, cart, order.Items)
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	order, err := repo.FindByID(context.Background(), 9999)
	assert.Error(t, err)
	assert.Nil(t, order)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}

func TestOrderRepository_ListDescending(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	ctx := context.Background()

	first, err := repo.Insert(ctx, domain.Order{
		TableNumber: "1",
		Items:       domain.Cart{"tea": {Price: 2, Quantity: 1}},
		TotalPrice:  2,
		Status:      domain.OrderStatusReceived,
	})
	require.NoError(t, err)

	second, err := repo.Insert(ctx, domain.Order{
		TableNumber: "2",
		Items:       domain.Cart{"coffee": {Price: 3, Quantity: 1}},
		TotalPrice:  3,
		Status:      domain.OrderStatusReceived,
	})
	require.NoError(t, err)

	orders, err := repo.ListDescending(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second, orders[0].ID)
	assert.Equal(t, first, orders[1].ID)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	ctx := context.Background()

	id, err := repo.Insert(ctx, domain.Order{
		TableNumber: "7",
		Items:       domain.Cart{"burger": {Price: 8, Quantity: 1}},
		TotalPrice:  8,
		Status:      domain.OrderStatusReceived,
	})
	require.NoError(t, err)

	err = repo.UpdateStatus(ctx, id, domain.OrderStatusPreparing)
	require.NoError(t, err)

	order, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPreparing, order.Status)
}

func TestOrderRepository_UpdateStatus_SameValue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	ctx := context.Background()

	id, err := repo.Insert(ctx, domain.Order{
		TableNumber: "7",
		Items:       domain.Cart{"burger": {Price: 8, Quantity: 1}},
		TotalPrice:  8,
		Status:      domain.OrderStatusReceived,
	})
	require.NoError(t, err)

	// Writing the current value again must not be reported as not found.
	err = repo.UpdateStatus(ctx, id, domain.OrderStatusReceived)
	assert.NoError(t, err)
}

func TestOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	err := repo.UpdateStatus(context.Background(), 9999, domain.OrderStatusPreparing)
	assert.Error(t, err)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}

func TestOrderRepository_SnapshotSurvivesMenuDeletion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	menuRepo := catalogrepo.NewMySQLMenuRepository(db)
	orderRepo := NewMySQLOrderRepository(db)
	ctx := context.Background()

	menuID, err := menuRepo.Insert(ctx, domain.MenuItem{Name: "burger", Price: 8, Stock: 100})
	require.NoError(t, err)

	orderID, err := orderRepo.Insert(ctx, domain.Order{
		TableNumber: "4",
		Items:       domain.Cart{"burger": {Price: 8, Quantity: 2}},
		TotalPrice:  16,
		Status:      domain.OrderStatusReceived,
	})
	require.NoError(t, err)

	require.NoError(t, menuRepo.Delete(ctx, menuID))

	order, err := orderRepo.FindByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, domain.Cart{"burger": {Price: 8, Quantity: 2}}, order.Items)
	assert.Equal(t, 16, order.TotalPrice)
}
