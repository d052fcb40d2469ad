package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/senicpos/pos-api/internal/domain/entity"
	"github.com/senicpos/pos-api/internal/domain/enum"
	domainRepo "github.com/senicpos/pos-api/internal/domain/repository"
)

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) domainRepo.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	return r.db.WithContext(ctx).Create(subscription).Error
}

func (r *subscriptionRepository) GetByTenantID(ctx context.Context, tenantID uuid.UUID) (*entity.Subscription, error) {
	var subscription entity.Subscription
	err := r.db.WithContext(ctx).First(&subscription, "tenant_id = ?", tenantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &subscription, err
}

func (r *subscriptionRepository) Update(ctx context.Context, subscription *entity.Subscription) error {
	return r.db.WithContext(ctx).Save(subscription).Error
}

func (r *subscriptionRepository) ListExpiring(ctx context.Context, daysBeforeExpiry int) ([]entity.Subscription, error) {
	var subscriptions []entity.Subscription
	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, daysBeforeExpiry)
	// Subscriptions that already lapsed are expired, not expiring.
	err := r.db.WithContext(ctx).
		Where("status = ? AND end_date >= ? AND end_date <= ?", int(enum.SubscriptionStatusActive), now, cutoff).
		Order("end_date ASC").
		Find(&subscriptions).Error
	return subscriptions, err
}
