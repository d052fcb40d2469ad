package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/senicpos/pos-api/internal/domain/entity"
	"github.com/senicpos/pos-api/internal/domain/enum"
	domainRepo "github.com/senicpos/pos-api/internal/domain/repository"
	"github.com/senicpos/pos-api/pkg/pagination"
)

// errInsufficientStock is a transaction-internal sentinel used to force a
// rollback when a conditional decrement matched no rows.
var errInsufficientStock = errors.New("insufficient stock")

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

// CreateWithStockDecrement inserts the order with its items and applies all
// stock decrements in a single transaction. Each decrement is a conditional
// update guarded by quantity >= requested; the first line that matches no
// rows aborts the transaction, leaving stock and orders untouched, and its
// item ID is returned with a nil error.
func (r *orderRepository) CreateWithStockDecrement(ctx context.Context, order *entity.Order, decrements []domainRepo.StockDecrement) (*uuid.UUID, error) {
	var failedItemID *uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dec := range decrements {
			result := tx.Model(&entity.InventoryItem{}).
				Where("id = ? AND quantity >= ?", dec.ItemID, dec.Quantity).
				Update("quantity", gorm.Expr("quantity - ?", dec.Quantity))

			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 0 {
				id := dec.ItemID
				failedItemID = &id
				return errInsufficientStock
			}
		}

		return tx.Create(order).Error
	})

	if errors.Is(err, errInsufficientStock) {
		return failedItemID, nil
	}
	return nil, err
}

// CancelWithStockRestore saves the updated order row and restores each
// line's quantity in one transaction. Lines whose inventory item no longer
// exists are skipped; their IDs are returned so the caller can log them.
func (r *orderRepository) CancelWithStockRestore(ctx context.Context, order *entity.Order) ([]uuid.UUID, error) {
	var skipped []uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Order{}).
			Where("id = ?", order.ID).
			Updates(map[string]interface{}{
				"status":     order.Status,
				"updated_at": order.UpdatedAt,
			}).Error; err != nil {
			return err
		}

		for _, item := range order.Items {
			result := tx.Model(&entity.InventoryItem{}).
				Where("id = ?", item.InventoryItemID).
				Update("quantity", gorm.Expr("quantity + ?", item.Quantity))

			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 0 {
				skipped = append(skipped, item.InventoryItemID)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}
	return skipped, nil
}

func (r *orderRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items.InventoryItem").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).First(&order, "order_number = ?", orderNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID, params *pagination.PaginationParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{}).
		Scopes(TenantScope(ctx)).
		Where("tenant_id = ?", tenantID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.
		Preload("Customer").
		Preload("Items.InventoryItem").
		Order("created_at DESC").
		Offset(params.Offset()).Limit(params.PerPage).
		Find(&orders).Error
	return orders, total, err
}

func (r *orderRepository) GetSalesSummary(ctx context.Context, tenantID uuid.UUID) (*domainRepo.SalesSummary, error) {
	var summary domainRepo.SalesSummary
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Scopes(TenantScope(ctx)).
		Where("tenant_id = ? AND status <> ?", tenantID, int(enum.OrderStatusCancelled)).
		Select("COUNT(*) AS order_count, COALESCE(SUM(net_amount), 0) AS net_total_cents").
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
