package request

import "github.com/google/uuid"

// CreateSubscriptionRequest represents a subscription creation request.
// Plan accepts the enum's string form ("Basic", "Pro", "Enterprise").
type CreateSubscriptionRequest struct {
	TenantID       uuid.UUID `json:"tenant_id" binding:"required"`
	TenantName     string    `json:"tenant_name" binding:"required,min=1,max=255"`
	Plan           string    `json:"plan" binding:"required"`
	DurationMonths int       `json:"duration_months" binding:"required,min=1"`
	AutoRenew      bool      `json:"auto_renew"`
}
