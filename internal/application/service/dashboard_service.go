package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/senicpos/pos-api/internal/domain/repository"
)

// DashboardStats aggregates per-tenant figures for the dashboard endpoint.
// Revenue is the net sum of non-cancelled orders.
type DashboardStats struct {
	OrderCount    int64   `json:"order_count"`
	Revenue       float64 `json:"revenue"`
	CustomerCount int64   `json:"customer_count"`
	LowStockCount int64   `json:"low_stock_count"`
}

// DashboardService assembles tenant dashboard statistics
type DashboardService struct {
	orderRepo     repository.OrderRepository
	customerRepo  repository.CustomerRepository
	inventoryRepo repository.InventoryRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	inventoryRepo repository.InventoryRepository,
) *DashboardService {
	return &DashboardService{
		orderRepo:     orderRepo,
		customerRepo:  customerRepo,
		inventoryRepo: inventoryRepo,
	}
}

// GetStats returns order, revenue, customer, and low-stock figures for a tenant
func (s *DashboardService) GetStats(ctx context.Context, tenantID uuid.UUID) (*DashboardStats, error) {
	summary, err := s.orderRepo.GetSalesSummary(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	customerCount, err := s.customerRepo.CountByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	lowStockCount, err := s.inventoryRepo.CountLowStock(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		OrderCount:    summary.OrderCount,
		Revenue:       float64(summary.NetTotalCents) / 100,
		CustomerCount: customerCount,
		LowStockCount: lowStockCount,
	}, nil
}
