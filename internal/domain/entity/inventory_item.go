package entity

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItem represents a sellable product in a tenant's catalog
type InventoryItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_inventory_tenant_sku" json:"tenant_id"`
	SKU          string    `gorm:"size:100;not null;uniqueIndex:idx_inventory_tenant_sku;column:sku" json:"sku"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Description  *string   `gorm:"type:text" json:"description,omitempty"`
	Barcode      *string   `gorm:"size:100;index" json:"barcode,omitempty"`
	Price        int64     `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	Cost         int64     `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	Quantity     int       `gorm:"default:0" json:"quantity"`
	MinimumStock int       `gorm:"default:0" json:"minimum_stock"`
	Category     *string   `gorm:"size:100" json:"category,omitempty"`
	ImageURL     *string   `gorm:"size:255" json:"image_url,omitempty"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i InventoryItem) MarshalJSON() ([]byte, error) {
	type Alias InventoryItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
		Cost  float64 `json:"cost"`
	}{
		Alias: Alias(i),
		Price: float64(i.Price) / 100,
		Cost:  float64(i.Cost) / 100,
	})
}

// IsLowStock reports whether the item is at or below its minimum stock threshold.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.MinimumStock
}

// GetPriceDecimal returns the selling price as a decimal
func (i *InventoryItem) GetPriceDecimal() float64 {
	return float64(i.Price) / 100
}

// SetPriceFromDecimal sets the selling price from a decimal value.
// Rounds to the nearest cent so values like 19.99 survive the float conversion.
func (i *InventoryItem) SetPriceFromDecimal(price float64) {
	i.Price = int64(math.Round(price * 100))
}

// SetCostFromDecimal sets the cost from a decimal value.
func (i *InventoryItem) SetCostFromDecimal(cost float64) {
	i.Cost = int64(math.Round(cost * 100))
}

// BeforeCreate generates a UUID before creating a new inventory item
func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InventoryItem model
func (InventoryItem) TableName() string {
	return "inventory_items"
}
