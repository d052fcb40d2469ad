package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateCustomerRequest represents a customer creation request
type CreateCustomerRequest struct {
	TenantID    uuid.UUID  `json:"tenant_id" binding:"required"`
	FirstName   string     `json:"first_name" binding:"required,min=1,max=100"`
	LastName    string     `json:"last_name" binding:"required,min=1,max=100"`
	Email       string     `json:"email" binding:"required,email,max=255"`
	Phone       *string    `json:"phone" binding:"omitempty,max=50"`
	Address     *string    `json:"address"`
	DateOfBirth *time.Time `json:"date_of_birth"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	FirstName   *string    `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName    *string    `json:"last_name" binding:"omitempty,min=1,max=100"`
	Email       *string    `json:"email" binding:"omitempty,email,max=255"`
	Phone       *string    `json:"phone" binding:"omitempty,max=50"`
	Address     *string    `json:"address"`
	DateOfBirth *time.Time `json:"date_of_birth"`
}

// AdjustLoyaltyPointsRequest represents a loyalty points adjustment.
// Points may be negative to redeem.
type AdjustLoyaltyPointsRequest struct {
	Points int `json:"points" binding:"required"`
}
