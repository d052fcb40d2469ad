package request

import "github.com/google/uuid"

// OrderItemRequest represents a line item in an order creation request
type OrderItemRequest struct {
	InventoryItemID uuid.UUID `json:"inventory_item_id" binding:"required"`
	Quantity        int       `json:"quantity" binding:"required,min=1"`
	Discount        float64   `json:"discount" binding:"min=0"`
}

// CreateOrderRequest represents an order creation request.
// PaymentMethod accepts the enum's string form (e.g. "Cash", "CreditCard").
type CreateOrderRequest struct {
	TenantID       uuid.UUID          `json:"tenant_id" binding:"required"`
	CustomerID     uuid.UUID          `json:"customer_id" binding:"required"`
	PaymentMethod  string             `json:"payment_method" binding:"required"`
	DiscountAmount float64            `json:"discount_amount" binding:"min=0"`
	Notes          *string            `json:"notes"`
	Items          []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}
