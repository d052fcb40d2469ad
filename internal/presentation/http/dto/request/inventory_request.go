package request

import "github.com/google/uuid"

// CreateInventoryItemRequest represents an inventory item creation request.
// Price and cost are decimal amounts.
type CreateInventoryItemRequest struct {
	TenantID     uuid.UUID `json:"tenant_id" binding:"required"`
	Name         string    `json:"name" binding:"required,min=1,max=255"`
	Description  *string   `json:"description"`
	SKU          string    `json:"sku" binding:"required,min=1,max=100"`
	Barcode      *string   `json:"barcode" binding:"omitempty,max=100"`
	Price        float64   `json:"price" binding:"min=0"`
	Cost         float64   `json:"cost" binding:"min=0"`
	Quantity     int       `json:"quantity" binding:"min=0"`
	MinimumStock int       `json:"minimum_stock" binding:"min=0"`
	Category     *string   `json:"category" binding:"omitempty,max=100"`
	ImageURL     *string   `json:"image_url" binding:"omitempty,max=255"`
}

// UpdateInventoryItemRequest represents an inventory item update request
type UpdateInventoryItemRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Description  *string  `json:"description"`
	Barcode      *string  `json:"barcode" binding:"omitempty,max=100"`
	Price        *float64 `json:"price" binding:"omitempty,min=0"`
	Cost         *float64 `json:"cost" binding:"omitempty,min=0"`
	Quantity     *int     `json:"quantity" binding:"omitempty,min=0"`
	MinimumStock *int     `json:"minimum_stock" binding:"omitempty,min=0"`
	Category     *string  `json:"category" binding:"omitempty,max=100"`
	ImageURL     *string  `json:"image_url" binding:"omitempty,max=255"`
}
