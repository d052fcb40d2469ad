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

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).
		First(&customer, "tenant_id = ? AND email = ?", tenantID, email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID, params *pagination.PaginationParams) ([]entity.Customer, int64, error) {
	var customers []entity.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Scopes(TenantScope(ctx)).
		Where("tenant_id = ? AND is_active = ?", tenantID, true)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.
		Order("last_name ASC, first_name ASC").
		Offset(params.Offset()).Limit(params.PerPage).
		Find(&customers).Error
	return customers, total, err
}

func (r *customerRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Scopes(TenantScope(ctx)).
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Count(&count).Error
	return count, err
}
