package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/senicpos/pos-api/internal/domain/entity"
	"github.com/senicpos/pos-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID, params *pagination.PaginationParams) ([]entity.Customer, int64, error)
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}
