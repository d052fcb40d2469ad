package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/senicpos/pos-api/internal/domain/entity"
	"github.com/senicpos/pos-api/internal/domain/repository"
	"github.com/senicpos/pos-api/pkg/apperror"
	"github.com/senicpos/pos-api/pkg/pagination"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	TenantID    uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	Phone       *string
	Address     *string
	DateOfBirth *time.Time
}

// UpdateCustomerInput represents the update customer input (partial)
type UpdateCustomerInput struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Phone       *string
	Address     *string
	DateOfBirth *time.Time
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	existing, err := s.customerRepo.GetByEmail(ctx, input.TenantID, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A customer with this email already exists")
	}

	customer := &entity.Customer{
		TenantID:      input.TenantID,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		DateOfBirth:   input.DateOfBirth,
		LoyaltyPoints: 0,
		IsActive:      true,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists a tenant's active customers ordered by name
func (s *CustomerService) ListCustomers(ctx context.Context, tenantID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.ListByTenant(ctx, tenantID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomer applies a partial update to a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Email != nil && *input.Email != customer.Email {
		existing, err := s.customerRepo.GetByEmail(ctx, customer.TenantID, *input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A customer with this email already exists")
		}
		customer.Email = *input.Email
	}
	if input.FirstName != nil {
		customer.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		customer.LastName = *input.LastName
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.DateOfBirth != nil {
		customer.DateOfBirth = input.DateOfBirth
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeactivateCustomer soft-deletes a customer by marking it inactive
func (s *CustomerService) DeactivateCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	customer.IsActive = false
	return s.customerRepo.Update(ctx, customer)
}

// AdjustLoyaltyPoints applies a positive or negative delta to a customer's
// loyalty balance. The balance can never go below zero.
func (s *CustomerService) AdjustLoyaltyPoints(ctx context.Context, id uuid.UUID, delta int) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	balance := customer.LoyaltyPoints + delta
	if balance < 0 {
		return nil, apperror.NewBadRequestError("Insufficient loyalty points")
	}

	customer.LoyaltyPoints = balance
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}
