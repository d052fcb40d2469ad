package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/senicpos/pos-api/internal/domain/enum"
)

// Subscription represents a tenant's billing subscription. Each tenant has
// at most one subscription row.
type Subscription struct {
	ID              uuid.UUID               `gorm:"type:uuid;primary_key" json:"id"`
	TenantID        uuid.UUID               `gorm:"type:uuid;not null;uniqueIndex" json:"tenant_id"`
	TenantName      string                  `gorm:"size:255;not null" json:"tenant_name"`
	Plan            enum.SubscriptionPlan   `gorm:"default:0" json:"plan"`
	Status          enum.SubscriptionStatus `gorm:"default:0" json:"status"`
	StartDate       time.Time               `json:"start_date"`
	EndDate         time.Time               `json:"end_date"`
	MonthlyFee      int64                   `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	AutoRenew       bool                    `gorm:"default:true" json:"auto_renew"`
	LastPaymentDate *time.Time              `json:"last_payment_date,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Subscription) MarshalJSON() ([]byte, error) {
	type Alias Subscription
	return json.Marshal(&struct {
		Alias
		MonthlyFee float64 `json:"monthly_fee"`
	}{
		Alias:      Alias(s),
		MonthlyFee: float64(s.MonthlyFee) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new subscription
func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Subscription model
func (Subscription) TableName() string {
	return "subscriptions"
}
