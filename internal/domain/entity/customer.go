package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a loyalty customer of a tenant
type Customer struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	TenantID      uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_customers_tenant_email" json:"tenant_id"`
	FirstName     string     `gorm:"size:100;not null" json:"first_name"`
	LastName      string     `gorm:"size:100;not null" json:"last_name"`
	Email         string     `gorm:"size:255;not null;uniqueIndex:idx_customers_tenant_email" json:"email"`
	Phone         *string    `gorm:"size:50" json:"phone,omitempty"`
	Address       *string    `gorm:"type:text" json:"address,omitempty"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	LoyaltyPoints int        `gorm:"default:0" json:"loyalty_points"`
	IsActive      bool       `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Relationships
	Orders []Order `gorm:"foreignKey:CustomerID" json:"-"`
}

// FullName returns the customer's display name.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
