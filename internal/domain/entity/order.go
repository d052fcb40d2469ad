package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/senicpos/pos-api/internal/domain/enum"
)

// Order represents a sale rung up at the point of sale
type Order struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	TenantID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"tenant_id"`
	OrderNumber    string             `gorm:"size:100;unique;not null" json:"order_number"`
	CustomerID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	TotalAmount    int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	DiscountAmount int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	TaxAmount      int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	NetAmount      int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Status         enum.OrderStatus   `gorm:"default:0" json:"status"`
	PaymentMethod  enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	Notes          *string            `gorm:"type:text" json:"notes,omitempty"`
	CompletedAt    *time.Time         `json:"completed_at,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`

	// Relationships
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		TotalAmount    float64 `json:"total_amount"`
		DiscountAmount float64 `json:"discount_amount"`
		TaxAmount      float64 `json:"tax_amount"`
		NetAmount      float64 `json:"net_amount"`
	}{
		Alias:          Alias(o),
		TotalAmount:    float64(o.TotalAmount) / 100,
		DiscountAmount: float64(o.DiscountAmount) / 100,
		TaxAmount:      float64(o.TaxAmount) / 100,
		NetAmount:      float64(o.NetAmount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem represents a line item in an order. UnitPrice is a snapshot of
// the inventory price at sale time and is never recalculated.
type OrderItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID         uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	InventoryItemID uuid.UUID `gorm:"type:uuid;not null;index" json:"inventory_item_id"`
	Quantity        int       `gorm:"not null" json:"quantity"`
	UnitPrice       int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Discount        int64     `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Subtotal        int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relationships
	Order         Order          `gorm:"foreignKey:OrderID" json:"-"`
	InventoryItem *InventoryItem `gorm:"foreignKey:InventoryItemID" json:"inventory_item,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (oi OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Discount  float64 `json:"discount"`
		Subtotal  float64 `json:"subtotal"`
	}{
		Alias:     Alias(oi),
		UnitPrice: float64(oi.UnitPrice) / 100,
		Discount:  float64(oi.Discount) / 100,
		Subtotal:  float64(oi.Subtotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
