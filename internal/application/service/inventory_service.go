package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/senicpos/pos-api/internal/domain/entity"
	"github.com/senicpos/pos-api/internal/domain/repository"
	"github.com/senicpos/pos-api/pkg/apperror"
	"github.com/senicpos/pos-api/pkg/pagination"
)

// InventoryService handles inventory item operations
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo repository.InventoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

// CreateInventoryItemInput represents the create inventory item input.
// Price and Cost are decimal amounts, converted to cents for storage.
type CreateInventoryItemInput struct {
	TenantID     uuid.UUID
	Name         string
	Description  *string
	SKU          string
	Barcode      *string
	Price        float64
	Cost         float64
	Quantity     int
	MinimumStock int
	Category     *string
	ImageURL     *string
}

// UpdateInventoryItemInput represents the update inventory item input (partial)
type UpdateInventoryItemInput struct {
	Name         *string
	Description  *string
	Barcode      *string
	Price        *float64
	Cost         *float64
	Quantity     *int
	MinimumStock *int
	Category     *string
	ImageURL     *string
}

// CreateItem creates a new inventory item
func (s *InventoryService) CreateItem(ctx context.Context, input *CreateInventoryItemInput) (*entity.InventoryItem, error) {
	existing, err := s.inventoryRepo.GetBySKU(ctx, input.TenantID, input.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("An item with this SKU already exists")
	}

	item := &entity.InventoryItem{
		TenantID:     input.TenantID,
		Name:         input.Name,
		Description:  input.Description,
		SKU:          input.SKU,
		Barcode:      input.Barcode,
		Quantity:     input.Quantity,
		MinimumStock: input.MinimumStock,
		Category:     input.Category,
		ImageURL:     input.ImageURL,
		IsActive:     true,
	}
	item.SetPriceFromDecimal(input.Price)
	item.SetCostFromDecimal(input.Cost)

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem retrieves an inventory item by ID
func (s *InventoryService) GetItem(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}
	return item, nil
}

// GetItemByBarcode retrieves a tenant's inventory item by barcode, used by
// scanner-driven lookups at the register.
func (s *InventoryService) GetItemByBarcode(ctx context.Context, tenantID uuid.UUID, barcode string) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByBarcode(ctx, tenantID, barcode)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}
	return item, nil
}

// ListItems lists a tenant's active items ordered by name
func (s *InventoryService) ListItems(ctx context.Context, tenantID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.InventoryItem], error) {
	items, total, err := s.inventoryRepo.ListByTenant(ctx, tenantID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// UpdateItem applies a partial update to an inventory item
func (s *InventoryService) UpdateItem(ctx context.Context, id uuid.UUID, input *UpdateInventoryItemInput) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = input.Description
	}
	if input.Barcode != nil {
		item.Barcode = input.Barcode
	}
	if input.Price != nil {
		item.SetPriceFromDecimal(*input.Price)
	}
	if input.Cost != nil {
		item.SetCostFromDecimal(*input.Cost)
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, apperror.NewBadRequestError("Quantity cannot be negative")
		}
		item.Quantity = *input.Quantity
	}
	if input.MinimumStock != nil {
		item.MinimumStock = *input.MinimumStock
	}
	if input.Category != nil {
		item.Category = input.Category
	}
	if input.ImageURL != nil {
		item.ImageURL = input.ImageURL
	}

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem permanently removes an inventory item
func (s *InventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Inventory item")
	}
	return s.inventoryRepo.Delete(ctx, id)
}

// ListLowStock lists a tenant's active items at or below their minimum
// stock threshold, lowest quantity first.
func (s *InventoryService) ListLowStock(ctx context.Context, tenantID uuid.UUID) ([]entity.InventoryItem, error) {
	return s.inventoryRepo.ListLowStock(ctx, tenantID)
}
