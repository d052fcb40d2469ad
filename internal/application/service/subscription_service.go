package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/senicpos/pos-api/internal/domain/entity"
	"github.com/senicpos/pos-api/internal/domain/enum"
	"github.com/senicpos/pos-api/internal/domain/repository"
	"github.com/senicpos/pos-api/pkg/apperror"
)

// planFee returns the fixed monthly fee per plan, in cents.
func planFee(plan enum.SubscriptionPlan) int64 {
	switch plan {
	case enum.SubscriptionPlanBasic:
		return 29900
	case enum.SubscriptionPlanPro:
		return 59900
	case enum.SubscriptionPlanEnterprise:
		return 149900
	}
	return 0
}

// SubscriptionService handles tenant subscription operations
type SubscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(subscriptionRepo repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{subscriptionRepo: subscriptionRepo}
}

// CreateSubscriptionInput represents the create subscription input
type CreateSubscriptionInput struct {
	TenantID       uuid.UUID
	TenantName     string
	Plan           enum.SubscriptionPlan
	DurationMonths int
	AutoRenew      bool
}

// CreateSubscription creates a subscription for a tenant. Each tenant has
// at most one subscription; the monthly fee is fixed by the plan.
func (s *SubscriptionService) CreateSubscription(ctx context.Context, input *CreateSubscriptionInput) (*entity.Subscription, error) {
	if !input.Plan.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown subscription plan")
	}
	if input.DurationMonths < 1 {
		return nil, apperror.NewBadRequestError("Duration must be at least one month")
	}

	existing, err := s.subscriptionRepo.GetByTenantID(ctx, input.TenantID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Tenant already has a subscription")
	}

	now := time.Now().UTC()
	subscription := &entity.Subscription{
		TenantID:   input.TenantID,
		TenantName: input.TenantName,
		Plan:       input.Plan,
		Status:     enum.SubscriptionStatusActive,
		StartDate:  now,
		EndDate:    now.AddDate(0, input.DurationMonths, 0),
		MonthlyFee: planFee(input.Plan),
		AutoRenew:  input.AutoRenew,
	}

	if err := s.subscriptionRepo.Create(ctx, subscription); err != nil {
		return nil, err
	}
	return subscription, nil
}

// GetSubscription retrieves a tenant's subscription
func (s *SubscriptionService) GetSubscription(ctx context.Context, tenantID uuid.UUID) (*entity.Subscription, error) {
	subscription, err := s.subscriptionRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, apperror.NewNotFoundError("Subscription")
	}
	return subscription, nil
}

// RenewSubscription extends a subscription by one month: the new period
// starts where the old one ended, status returns to Active, and the
// payment timestamp is recorded.
func (s *SubscriptionService) RenewSubscription(ctx context.Context, tenantID uuid.UUID) (*entity.Subscription, error) {
	subscription, err := s.subscriptionRepo.GetByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, apperror.NewNotFoundError("Subscription")
	}

	now := time.Now().UTC()
	subscription.StartDate = subscription.EndDate
	subscription.EndDate = subscription.EndDate.AddDate(0, 1, 0)
	subscription.Status = enum.SubscriptionStatusActive
	subscription.LastPaymentDate = &now

	if err := s.subscriptionRepo.Update(ctx, subscription); err != nil {
		return nil, err
	}
	return subscription, nil
}

// ListExpiring lists active subscriptions ending within the given number
// of days, soonest first.
func (s *SubscriptionService) ListExpiring(ctx context.Context, daysBeforeExpiry int) ([]entity.Subscription, error) {
	if daysBeforeExpiry < 0 {
		return nil, apperror.NewBadRequestError("Days must not be negative")
	}
	return s.subscriptionRepo.ListExpiring(ctx, daysBeforeExpiry)
}
