package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/senicpos/pos-api/internal/domain/entity"
	"github.com/senicpos/pos-api/pkg/pagination"
)

// InventoryRepository defines the interface for inventory item data operations
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)
	GetBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*entity.InventoryItem, error)
	GetByBarcode(ctx context.Context, tenantID uuid.UUID, barcode string) (*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID, params *pagination.PaginationParams) ([]entity.InventoryItem, int64, error)
	// ListLowStock returns active items with quantity at or below their
	// minimum stock threshold, ordered by quantity ascending.
	ListLowStock(ctx context.Context, tenantID uuid.UUID) ([]entity.InventoryItem, error)
	CountLowStock(ctx context.Context, tenantID uuid.UUID) (int64, error)
}
