package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/senicpos/pos-api/internal/domain/entity"
	domainRepo "github.com/senicpos/pos-api/internal/domain/repository"
	"github.com/senicpos/pos-api/pkg/pagination"
)

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *inventoryRepository) GetBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.db.WithContext(ctx).
		First(&item, "tenant_id = ? AND sku = ?", tenantID, sku).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *inventoryRepository) GetByBarcode(ctx context.Context, tenantID uuid.UUID, barcode string) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.db.WithContext(ctx).
		First(&item, "tenant_id = ? AND barcode = ?", tenantID, barcode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *inventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.InventoryItem{}, "id = ?", id).Error
}

func (r *inventoryRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID, params *pagination.PaginationParams) ([]entity.InventoryItem, int64, error) {
	var items []entity.InventoryItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.InventoryItem{}).
		Scopes(TenantScope(ctx)).
		Where("tenant_id = ? AND is_active = ?", tenantID, true)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.
		Order("name ASC").
		Offset(params.Offset()).Limit(params.PerPage).
		Find(&items).Error
	return items, total, err
}

func (r *inventoryRepository) ListLowStock(ctx context.Context, tenantID uuid.UUID) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.db.WithContext(ctx).
		Scopes(TenantScope(ctx)).
		Where("tenant_id = ? AND is_active = ? AND quantity <= minimum_stock", tenantID, true).
		Order("quantity ASC").
		Find(&items).Error
	return items, err
}

func (r *inventoryRepository) CountLowStock(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.InventoryItem{}).
		Scopes(TenantScope(ctx)).
		Where("tenant_id = ? AND is_active = ? AND quantity <= minimum_stock", tenantID, true).
		Count(&count).Error
	return count, err
}
