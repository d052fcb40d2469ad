package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senicpos/pos-api/pkg/apperror"
)

func TestCreateItemStoresCents(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo())

	item, err := svc.CreateItem(context.Background(), &CreateInventoryItemInput{
		TenantID: uuid.New(),
		Name:     "Espresso Beans",
		SKU:      "BEAN-01",
		Price:    12.99,
		Cost:     7.50,
		Quantity: 40,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1299), item.Price)
	assert.Equal(t, int64(750), item.Cost)
	assert.True(t, item.IsActive)
}

func TestCreateItemDuplicateSKU(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo())
	tenantID := uuid.New()

	_, err := svc.CreateItem(context.Background(), &CreateInventoryItemInput{
		TenantID: tenantID, Name: "Beans", SKU: "BEAN-01",
	})
	require.NoError(t, err)

	_, err = svc.CreateItem(context.Background(), &CreateInventoryItemInput{
		TenantID: tenantID, Name: "Other Beans", SKU: "BEAN-01",
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	// Same SKU under another tenant is allowed
	_, err = svc.CreateItem(context.Background(), &CreateInventoryItemInput{
		TenantID: uuid.New(), Name: "Beans", SKU: "BEAN-01",
	})
	require.NoError(t, err)
}

func TestGetItemByBarcode(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo())
	tenantID := uuid.New()
	barcode := "4006381333931"

	created, err := svc.CreateItem(context.Background(), &CreateInventoryItemInput{
		TenantID: tenantID, Name: "Beans", SKU: "BEAN-01", Barcode: &barcode,
	})
	require.NoError(t, err)

	found, err := svc.GetItemByBarcode(context.Background(), tenantID, barcode)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetItemByBarcode(context.Background(), tenantID, "0000000000000")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	// Barcodes do not leak across tenants
	_, err = svc.GetItemByBarcode(context.Background(), uuid.New(), barcode)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestListLowStockOrdering(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo())
	tenantID := uuid.New()

	for _, it := range []struct {
		name     string
		qty, min int
	}{
		{"Nearly Out", 1, 5},
		{"At Threshold", 5, 5},
		{"Healthy", 50, 5},
	} {
		_, err := svc.CreateItem(context.Background(), &CreateInventoryItemInput{
			TenantID: tenantID, Name: it.name, SKU: "SKU-" + it.name,
			Quantity: it.qty, MinimumStock: it.min,
		})
		require.NoError(t, err)
	}

	items, err := svc.ListLowStock(context.Background(), tenantID)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "Nearly Out", items[0].Name)
	assert.Equal(t, "At Threshold", items[1].Name)
}

func TestUpdateItemPartial(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo())

	item, err := svc.CreateItem(context.Background(), &CreateInventoryItemInput{
		TenantID: uuid.New(), Name: "Beans", SKU: "BEAN-01", Price: 10.00, Quantity: 5,
	})
	require.NoError(t, err)

	newPrice := 12.50
	updated, err := svc.UpdateItem(context.Background(), item.ID, &UpdateInventoryItemInput{
		Price: &newPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1250), updated.Price)
	assert.Equal(t, "Beans", updated.Name)
	assert.Equal(t, 5, updated.Quantity)

	negative := -1
	_, err = svc.UpdateItem(context.Background(), item.ID, &UpdateInventoryItemInput{
		Quantity: &negative,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestDeleteItemHard(t *testing.T) {
	repo := newStubInventoryRepo()
	svc := NewInventoryService(repo)

	item, err := svc.CreateItem(context.Background(), &CreateInventoryItemInput{
		TenantID: uuid.New(), Name: "Beans", SKU: "BEAN-01",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(context.Background(), item.ID))

	_, err = svc.GetItem(context.Background(), item.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	err = svc.DeleteItem(context.Background(), item.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
