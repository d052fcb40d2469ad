package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/senicpos/pos-api/internal/domain/entity"
	"github.com/senicpos/pos-api/pkg/pagination"
)

// StockDecrement is a single inventory mutation requested by order creation.
type StockDecrement struct {
	ItemID   uuid.UUID
	Quantity int
}

// SalesSummary aggregates per-tenant order figures for the dashboard.
type SalesSummary struct {
	OrderCount    int64
	NetTotalCents int64
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// CreateWithStockDecrement persists the order with its items and applies
	// every stock decrement as one transaction. Decrements run in slice order
	// via conditional updates (quantity >= requested); the first item without
	// sufficient stock aborts the transaction, rolling back all mutations,
	// and is returned as failedItemID with a nil error.
	CreateWithStockDecrement(ctx context.Context, order *entity.Order, decrements []StockDecrement) (failedItemID *uuid.UUID, err error)
	// CancelWithStockRestore updates the order row and restores each item's
	// quantity in one transaction. Lines whose inventory item has been
	// deleted are skipped; their item IDs are returned for logging.
	CancelWithStockRestore(ctx context.Context, order *entity.Order) (skipped []uuid.UUID, err error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, params *pagination.PaginationParams) ([]entity.Order, int64, error)
	GetSalesSummary(ctx context.Context, tenantID uuid.UUID) (*SalesSummary, error)
}
