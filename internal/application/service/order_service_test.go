package service

import (
	"context"
	"regexp"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/senicpos/pos-api/internal/domain/entity"
	"github.com/senicpos/pos-api/internal/domain/enum"
	"github.com/senicpos/pos-api/pkg/apperror"
)

type orderFixture struct {
	svc       *OrderService
	orders    *stubOrderRepo
	inventory *stubInventoryRepo
	customers *stubCustomerRepo
	tenantID  uuid.UUID
	customer  *entity.Customer
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	customers := newStubCustomerRepo()
	inventory := newStubInventoryRepo()
	orders := newStubOrderRepo(inventory, customers)

	tenantID := uuid.New()
	customer := &entity.Customer{
		TenantID:  tenantID,
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana@example.com",
		IsActive:  true,
	}
	require.NoError(t, customers.Create(context.Background(), customer))

	return &orderFixture{
		svc:       NewOrderService(orders, inventory, customers, zap.NewNop()),
		orders:    orders,
		inventory: inventory,
		customers: customers,
		tenantID:  tenantID,
		customer:  customer,
	}
}

func (f *orderFixture) addItem(t *testing.T, name string, priceCents int64, quantity int) *entity.InventoryItem {
	t.Helper()
	item := &entity.InventoryItem{
		TenantID: f.tenantID,
		Name:     name,
		SKU:      "SKU-" + name,
		Price:    priceCents,
		Quantity: quantity,
		IsActive: true,
	}
	require.NoError(t, f.inventory.Create(context.Background(), item))
	return item
}

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{8}-[0-9A-F]{8}$`)

func TestCreateOrderComputesTotals(t *testing.T) {
	f := newOrderFixture(t)
	item := f.addItem(t, "Espresso Beans", 12000, 100)

	order, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		TenantID:      f.tenantID,
		CustomerID:    f.customer.ID,
		PaymentMethod: enum.PaymentMethodCash,
		Items: []OrderLineInput{
			{InventoryItemID: item.ID, Quantity: 3, Discount: 10.00},
		},
	})
	require.NoError(t, err)

	// 3 x 120.00 - 10.00 line discount = 350.00
	assert.Equal(t, int64(35000), order.TotalAmount)
	// 7% of 350.00 = 24.50
	assert.Equal(t, int64(2450), order.TaxAmount)
	// 350.00 + 24.50 = 374.50
	assert.Equal(t, int64(37450), order.NetAmount)
	assert.Equal(t, enum.OrderStatusPending, order.Status)
	assert.Regexp(t, orderNumberPattern, order.OrderNumber)

	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(12000), order.Items[0].UnitPrice)
	assert.Equal(t, int64(35000), order.Items[0].Subtotal)

	assert.Equal(t, 97, f.inventory.quantity(item.ID))
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	f := newOrderFixture(t)
	item := f.addItem(t, "Mug", 500, 2)

	_, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		TenantID:      f.tenantID,
		CustomerID:    f.customer.ID,
		PaymentMethod: enum.PaymentMethodCash,
		Items: []OrderLineInput{
			{InventoryItemID: item.ID, Quantity: 3},
		},
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "Insufficient stock for item Mug", appErr.Message)

	// Stock untouched on failure
	assert.Equal(t, 2, f.inventory.quantity(item.ID))
}

func TestCreateOrderRollsBackAllLines(t *testing.T) {
	f := newOrderFixture(t)
	plenty := f.addItem(t, "Filter", 300, 50)
	scarce := f.addItem(t, "Grinder", 9000, 1)

	_, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		TenantID:      f.tenantID,
		CustomerID:    f.customer.ID,
		PaymentMethod: enum.PaymentMethodCreditCard,
		Items: []OrderLineInput{
			{InventoryItemID: plenty.ID, Quantity: 5},
			{InventoryItemID: scarce.ID, Quantity: 2},
		},
	})
	require.Error(t, err)
	assert.Equal(t, "Insufficient stock for item Grinder", apperror.GetAppError(err).Message)

	// The first line must not have been applied
	assert.Equal(t, 50, f.inventory.quantity(plenty.ID))
	assert.Equal(t, 1, f.inventory.quantity(scarce.ID))
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	f := newOrderFixture(t)
	item := f.addItem(t, "Mug", 500, 10)

	_, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		TenantID:      f.tenantID,
		CustomerID:    uuid.New(),
		PaymentMethod: enum.PaymentMethodCash,
		Items:         []OrderLineInput{{InventoryItemID: item.ID, Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, "Customer not found", apperror.GetAppError(err).Message)
}

func TestCreateOrderUnknownItem(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		TenantID:      f.tenantID,
		CustomerID:    f.customer.ID,
		PaymentMethod: enum.PaymentMethodCash,
		Items:         []OrderLineInput{{InventoryItemID: uuid.New(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCreateOrderRejectsEmptyAndInvalidLines(t *testing.T) {
	f := newOrderFixture(t)
	item := f.addItem(t, "Mug", 500, 10)

	_, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		TenantID:      f.tenantID,
		CustomerID:    f.customer.ID,
		PaymentMethod: enum.PaymentMethodCash,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		TenantID:      f.tenantID,
		CustomerID:    f.customer.ID,
		PaymentMethod: enum.PaymentMethodCash,
		Items:         []OrderLineInput{{InventoryItemID: item.ID, Quantity: 0}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCancelOrderRestoresStock(t *testing.T) {
	f := newOrderFixture(t)
	item := f.addItem(t, "Kettle", 4500, 10)

	order, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		TenantID:      f.tenantID,
		CustomerID:    f.customer.ID,
		PaymentMethod: enum.PaymentMethodCash,
		Items:         []OrderLineInput{{InventoryItemID: item.ID, Quantity: 4}},
	})
	require.NoError(t, err)
	require.Equal(t, 6, f.inventory.quantity(item.ID))

	cancelled, err := f.svc.CancelOrder(context.Background(), order.ID)
	require.NoError(t, err)

	assert.Equal(t, enum.OrderStatusCancelled, cancelled.Status)
	assert.Equal(t, 10, f.inventory.quantity(item.ID))

	// Financial fields survive cancellation
	assert.Equal(t, order.TotalAmount, cancelled.TotalAmount)
	assert.Equal(t, order.TaxAmount, cancelled.TaxAmount)
	assert.Equal(t, order.NetAmount, cancelled.NetAmount)
}

func TestCancelOrderAlreadyCancelled(t *testing.T) {
	f := newOrderFixture(t)
	item := f.addItem(t, "Kettle", 4500, 10)

	order, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		TenantID:      f.tenantID,
		CustomerID:    f.customer.ID,
		PaymentMethod: enum.PaymentMethodCash,
		Items:         []OrderLineInput{{InventoryItemID: item.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.svc.CancelOrder(context.Background(), order.ID)
	require.NoError(t, err)

	_, err = f.svc.CancelOrder(context.Background(), order.ID)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	// Stock restored exactly once
	assert.Equal(t, 10, f.inventory.quantity(item.ID))
}

func TestCancelOrderNotFound(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.CancelOrder(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCancelOrderSkipsDeletedItems(t *testing.T) {
	f := newOrderFixture(t)
	kept := f.addItem(t, "Kettle", 4500, 10)
	doomed := f.addItem(t, "Teapot", 3000, 10)

	order, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		TenantID:      f.tenantID,
		CustomerID:    f.customer.ID,
		PaymentMethod: enum.PaymentMethodCash,
		Items: []OrderLineInput{
			{InventoryItemID: kept.ID, Quantity: 2},
			{InventoryItemID: doomed.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)

	require.NoError(t, f.inventory.Delete(context.Background(), doomed.ID))

	cancelled, err := f.svc.CancelOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusCancelled, cancelled.Status)

	// Surviving item restored, deleted one silently skipped
	assert.Equal(t, 10, f.inventory.quantity(kept.ID))
	assert.Equal(t, -1, f.inventory.quantity(doomed.ID))
}

func TestCreateOrderConcurrentStockContention(t *testing.T) {
	f := newOrderFixture(t)
	item := f.addItem(t, "Limited", 1000, 5)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.CreateOrder(context.Background(), &CreateOrderInput{
				TenantID:      f.tenantID,
				CustomerID:    f.customer.ID,
				PaymentMethod: enum.PaymentMethodCash,
				Items:         []OrderLineInput{{InventoryItemID: item.ID, Quantity: 3}},
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one of two competing orders must win")
	assert.Equal(t, 2, f.inventory.quantity(item.ID))
}

func TestGetOrderResolvesRelations(t *testing.T) {
	f := newOrderFixture(t)
	item := f.addItem(t, "Espresso Beans", 12000, 100)

	created, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		TenantID:      f.tenantID,
		CustomerID:    f.customer.ID,
		PaymentMethod: enum.PaymentMethodQRCode,
		Items:         []OrderLineInput{{InventoryItemID: item.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	order, err := f.svc.GetOrder(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, order.Customer)
	assert.Equal(t, "Ana Silva", order.Customer.FullName())
	require.Len(t, order.Items, 1)
	require.NotNil(t, order.Items[0].InventoryItem)
	assert.Equal(t, "Espresso Beans", order.Items[0].InventoryItem.Name)
}
