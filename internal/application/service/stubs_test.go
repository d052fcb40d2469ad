package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/senicpos/pos-api/internal/domain/entity"
	"github.com/senicpos/pos-api/internal/domain/enum"
	domainRepo "github.com/senicpos/pos-api/internal/domain/repository"
	"github.com/senicpos/pos-api/pkg/pagination"
)

// In-memory stand-ins for the gorm repositories. The order stub applies
// stock decrements all-or-nothing under one lock, mirroring the
// transactional behavior of the real repository.

type stubCustomerRepo struct {
	mu        sync.Mutex
	customers map[uuid.UUID]*entity.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (s *stubCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	cp := *customer
	s.customers[customer.ID] = &cp
	return nil
}

func (s *stubCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (s *stubCustomerRepo) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.customers {
		if c.TenantID == tenantID && c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *customer
	s.customers[customer.ID] = &cp
	return nil
}

func (s *stubCustomerRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, params *pagination.PaginationParams) ([]entity.Customer, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Customer
	for _, c := range s.customers {
		if c.TenantID == tenantID && c.IsActive {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out, int64(len(out)), nil
}

func (s *stubCustomerRepo) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, c := range s.customers {
		if c.TenantID == tenantID && c.IsActive {
			n++
		}
	}
	return n, nil
}

type stubInventoryRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.InventoryItem
}

func newStubInventoryRepo() *stubInventoryRepo {
	return &stubInventoryRepo{items: make(map[uuid.UUID]*entity.InventoryItem)}
}

func (s *stubInventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	cp := *item
	s.items[item.ID] = &cp
	return nil
}

func (s *stubInventoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (s *stubInventoryRepo) GetBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*entity.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.TenantID == tenantID && it.SKU == sku {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubInventoryRepo) GetByBarcode(ctx context.Context, tenantID uuid.UUID, barcode string) (*entity.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.TenantID == tenantID && it.Barcode != nil && *it.Barcode == barcode {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubInventoryRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *item
	s.items[item.ID] = &cp
	return nil
}

func (s *stubInventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

func (s *stubInventoryRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, params *pagination.PaginationParams) ([]entity.InventoryItem, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.InventoryItem
	for _, it := range s.items {
		if it.TenantID == tenantID && it.IsActive {
			out = append(out, *it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (s *stubInventoryRepo) ListLowStock(ctx context.Context, tenantID uuid.UUID) ([]entity.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.InventoryItem
	for _, it := range s.items {
		if it.TenantID == tenantID && it.IsActive && it.Quantity <= it.MinimumStock {
			out = append(out, *it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
	return out, nil
}

func (s *stubInventoryRepo) CountLowStock(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	items, err := s.ListLowStock(ctx, tenantID)
	return int64(len(items)), err
}

// quantity reads an item's stock directly, bypassing the repository API.
func (s *stubInventoryRepo) quantity(id uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it, ok := s.items[id]; ok {
		return it.Quantity
	}
	return -1
}

type stubOrderRepo struct {
	mu        sync.Mutex
	orders    map[uuid.UUID]*entity.Order
	inventory *stubInventoryRepo
	customers *stubCustomerRepo
}

func newStubOrderRepo(inventory *stubInventoryRepo, customers *stubCustomerRepo) *stubOrderRepo {
	return &stubOrderRepo{
		orders:    make(map[uuid.UUID]*entity.Order),
		inventory: inventory,
		customers: customers,
	}
}

func (s *stubOrderRepo) CreateWithStockDecrement(ctx context.Context, order *entity.Order, decrements []domainRepo.StockDecrement) (*uuid.UUID, error) {
	s.inventory.mu.Lock()
	defer s.inventory.mu.Unlock()

	for _, dec := range decrements {
		it, ok := s.inventory.items[dec.ItemID]
		if !ok || it.Quantity < dec.Quantity {
			id := dec.ItemID
			return &id, nil
		}
	}
	for _, dec := range decrements {
		s.inventory.items[dec.ItemID].Quantity -= dec.Quantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range order.Items {
		if order.Items[i].ID == uuid.Nil {
			order.Items[i].ID = uuid.New()
		}
		order.Items[i].OrderID = order.ID
	}
	cp := *order
	s.orders[order.ID] = &cp
	return nil, nil
}

func (s *stubOrderRepo) CancelWithStockRestore(ctx context.Context, order *entity.Order) ([]uuid.UUID, error) {
	s.inventory.mu.Lock()
	defer s.inventory.mu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.orders[order.ID]
	if ok {
		stored.Status = order.Status
		stored.UpdatedAt = order.UpdatedAt
	}

	var skipped []uuid.UUID
	for _, line := range order.Items {
		if it, ok := s.inventory.items[line.InventoryItemID]; ok {
			it.Quantity += line.Quantity
		} else {
			skipped = append(skipped, line.InventoryItemID)
		}
	}
	return skipped, nil
}

func (s *stubOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	s.mu.Lock()
	o, ok := s.orders[id]
	if !ok {
		s.mu.Unlock()
		return nil, nil
	}
	cp := *o
	cp.Items = append([]entity.OrderItem(nil), o.Items...)
	s.mu.Unlock()

	if c, _ := s.customers.GetByID(ctx, cp.CustomerID); c != nil {
		cp.Customer = c
	}
	for i := range cp.Items {
		if it, _ := s.inventory.GetByID(ctx, cp.Items[i].InventoryItemID); it != nil {
			cp.Items[i].InventoryItem = it
		} else {
			cp.Items[i].InventoryItem = nil
		}
	}
	return &cp, nil
}

func (s *stubOrderRepo) GetByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.OrderNumber == orderNumber {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubOrderRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, params *pagination.PaginationParams) ([]entity.Order, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.Order
	for _, o := range s.orders {
		if o.TenantID == tenantID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, int64(len(out)), nil
}

func (s *stubOrderRepo) GetSalesSummary(ctx context.Context, tenantID uuid.UUID) (*domainRepo.SalesSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	summary := &domainRepo.SalesSummary{}
	for _, o := range s.orders {
		if o.TenantID == tenantID && o.Status != enum.OrderStatusCancelled {
			summary.OrderCount++
			summary.NetTotalCents += o.NetAmount
		}
	}
	return summary, nil
}

type stubSubscriptionRepo struct {
	mu            sync.Mutex
	subscriptions map[uuid.UUID]*entity.Subscription
}

func newStubSubscriptionRepo() *stubSubscriptionRepo {
	return &stubSubscriptionRepo{subscriptions: make(map[uuid.UUID]*entity.Subscription)}
}

func (s *stubSubscriptionRepo) Create(ctx context.Context, subscription *entity.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if subscription.ID == uuid.Nil {
		subscription.ID = uuid.New()
	}
	cp := *subscription
	s.subscriptions[subscription.TenantID] = &cp
	return nil
}

func (s *stubSubscriptionRepo) GetByTenantID(ctx context.Context, tenantID uuid.UUID) (*entity.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.subscriptions[tenantID]
	if !ok {
		return nil, nil
	}
	cp := *sub
	return &cp, nil
}

func (s *stubSubscriptionRepo) Update(ctx context.Context, subscription *entity.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *subscription
	s.subscriptions[subscription.TenantID] = &cp
	return nil
}

func (s *stubSubscriptionRepo) ListExpiring(ctx context.Context, daysBeforeExpiry int) ([]entity.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, daysBeforeExpiry)
	var out []entity.Subscription
	for _, sub := range s.subscriptions {
		if sub.Status == enum.SubscriptionStatusActive && !sub.EndDate.Before(now) && !sub.EndDate.After(cutoff) {
			out = append(out, *sub)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndDate.Before(out[j].EndDate) })
	return out, nil
}
