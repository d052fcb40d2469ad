package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/senicpos/pos-api/internal/domain/entity"
	"github.com/senicpos/pos-api/internal/domain/enum"
	"github.com/senicpos/pos-api/internal/domain/repository"
	"github.com/senicpos/pos-api/pkg/apperror"
	"github.com/senicpos/pos-api/pkg/pagination"
)

// taxRate is the sales tax applied to the order total.
const taxRate = 0.07

// orderNumberAttempts bounds the collision-check retry loop for order numbers.
const orderNumberAttempts = 5

// OrderService handles order-related operations
type OrderService struct {
	orderRepo     repository.OrderRepository
	inventoryRepo repository.InventoryRepository
	customerRepo  repository.CustomerRepository
	logger        *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	inventoryRepo repository.InventoryRepository,
	customerRepo repository.CustomerRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		inventoryRepo: inventoryRepo,
		customerRepo:  customerRepo,
		logger:        logger,
	}
}

// OrderLineInput represents a line item in an order request
type OrderLineInput struct {
	InventoryItemID uuid.UUID
	Quantity        int
	Discount        float64
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	TenantID       uuid.UUID
	CustomerID     uuid.UUID
	PaymentMethod  enum.PaymentMethod
	DiscountAmount float64
	Notes          *string
	Items          []OrderLineInput
}

// CreateOrder creates a new order. Stock validation, decrements, and the
// order insert are applied as a single transaction, so a failure on any
// line leaves inventory untouched.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order must contain at least one item")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.TenantID != input.TenantID {
		return nil, apperror.NewNotFoundError("Customer")
	}

	var totalAmount int64
	orderItems := make([]entity.OrderItem, 0, len(input.Items))
	decrements := make([]repository.StockDecrement, 0, len(input.Items))
	itemNames := make(map[uuid.UUID]string, len(input.Items))

	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be greater than zero")
		}

		item, err := s.inventoryRepo.GetByID(ctx, line.InventoryItemID)
		if err != nil {
			return nil, err
		}
		if item == nil || item.TenantID != input.TenantID {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Inventory item %s", line.InventoryItemID))
		}

		discountCents := int64(math.Round(line.Discount * 100))
		subtotal := item.Price*int64(line.Quantity) - discountCents
		totalAmount += subtotal
		itemNames[item.ID] = item.Name

		orderItems = append(orderItems, entity.OrderItem{
			InventoryItemID: item.ID,
			Quantity:        line.Quantity,
			UnitPrice:       item.Price,
			Discount:        discountCents,
			Subtotal:        subtotal,
		})

		decrements = append(decrements, repository.StockDecrement{
			ItemID:   item.ID,
			Quantity: line.Quantity,
		})
	}

	taxAmount := int64(math.Round(float64(totalAmount) * taxRate))
	orderDiscount := int64(math.Round(input.DiscountAmount * 100))
	netAmount := totalAmount + taxAmount - orderDiscount

	orderNumber, err := s.generateOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		TenantID:       input.TenantID,
		OrderNumber:    orderNumber,
		CustomerID:     input.CustomerID,
		TotalAmount:    totalAmount,
		DiscountAmount: orderDiscount,
		TaxAmount:      taxAmount,
		NetAmount:      netAmount,
		Status:         enum.OrderStatusPending,
		PaymentMethod:  input.PaymentMethod,
		Notes:          input.Notes,
		Items:          orderItems,
	}

	failedItemID, err := s.orderRepo.CreateWithStockDecrement(ctx, order, decrements)
	if err != nil {
		return nil, err
	}
	if failedItemID != nil {
		return nil, apperror.NewBadRequestError(
			fmt.Sprintf("Insufficient stock for item %s", itemNames[*failedItemID]))
	}

	return s.orderRepo.GetWithItems(ctx, order.ID)
}

// generateOrderNumber produces "ORD-<yyyyMMdd UTC>-<8 uppercase hex>" and
// retries on the unlikely collision with an existing order.
func (s *OrderService) generateOrderNumber(ctx context.Context) (string, error) {
	date := time.Now().UTC().Format("20060102")

	for i := 0; i < orderNumberAttempts; i++ {
		suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
		candidate := fmt.Sprintf("ORD-%s-%s", date, suffix)

		existing, err := s.orderRepo.GetByOrderNumber(ctx, candidate)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
	}
	return "", apperror.NewAppError(500, "Failed to generate a unique order number")
}

// CancelOrder cancels a pending order and restores the stock of every
// line item. Items deleted since the sale are skipped and logged.
func (s *OrderService) CancelOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusCancelled {
		return nil, apperror.NewBadRequestError("Order is already cancelled")
	}

	order.Status = enum.OrderStatusCancelled
	order.UpdatedAt = time.Now().UTC()

	skipped, err := s.orderRepo.CancelWithStockRestore(ctx, order)
	if err != nil {
		return nil, err
	}

	for _, itemID := range skipped {
		s.logger.Warn("stock restore skipped for deleted inventory item",
			zap.String("order_id", order.ID.String()),
			zap.String("inventory_item_id", itemID.String()),
		)
	}

	return order, nil
}

// GetOrder retrieves an order by ID with its customer and line items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists a tenant's orders, newest first
func (s *OrderService) ListOrders(ctx context.Context, tenantID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.ListByTenant(ctx, tenantID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}
