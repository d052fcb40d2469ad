package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/senicpos/pos-api/internal/domain/entity"
)

// SubscriptionRepository defines the interface for subscription data operations
type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error
	GetByTenantID(ctx context.Context, tenantID uuid.UUID) (*entity.Subscription, error)
	Update(ctx context.Context, subscription *entity.Subscription) error
	// ListExpiring returns active subscriptions ending within the next
	// daysBeforeExpiry days, ordered by end date ascending.
	ListExpiring(ctx context.Context, daysBeforeExpiry int) ([]entity.Subscription, error)
}
