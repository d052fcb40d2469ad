package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/senicpos/pos-api/internal/domain/entity"
)

// OrderResponse is the API shape of an order, with the customer and item
// names resolved at mapping time. References whose records no longer
// exist render as "Unknown".
type OrderResponse struct {
	ID             uuid.UUID           `json:"id"`
	TenantID       uuid.UUID           `json:"tenant_id"`
	OrderNumber    string              `json:"order_number"`
	CustomerID     uuid.UUID           `json:"customer_id"`
	CustomerName   string              `json:"customer_name"`
	TotalAmount    float64             `json:"total_amount"`
	DiscountAmount float64             `json:"discount_amount"`
	TaxAmount      float64             `json:"tax_amount"`
	NetAmount      float64             `json:"net_amount"`
	Status         string              `json:"status"`
	PaymentMethod  string              `json:"payment_method"`
	Notes          *string             `json:"notes,omitempty"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	Items          []OrderItemResponse `json:"items"`
}

// OrderItemResponse is the API shape of an order line item.
type OrderItemResponse struct {
	ID              uuid.UUID `json:"id"`
	InventoryItemID uuid.UUID `json:"inventory_item_id"`
	ItemName        string    `json:"item_name"`
	Quantity        int       `json:"quantity"`
	UnitPrice       float64   `json:"unit_price"`
	Discount        float64   `json:"discount"`
	Subtotal        float64   `json:"subtotal"`
}

// NewOrderResponse maps an order aggregate to its API representation.
func NewOrderResponse(order *entity.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:             order.ID,
		TenantID:       order.TenantID,
		OrderNumber:    order.OrderNumber,
		CustomerID:     order.CustomerID,
		CustomerName:   "Unknown",
		TotalAmount:    float64(order.TotalAmount) / 100,
		DiscountAmount: float64(order.DiscountAmount) / 100,
		TaxAmount:      float64(order.TaxAmount) / 100,
		NetAmount:      float64(order.NetAmount) / 100,
		Status:         order.Status.String(),
		PaymentMethod:  order.PaymentMethod.String(),
		Notes:          order.Notes,
		CompletedAt:    order.CompletedAt,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
		Items:          make([]OrderItemResponse, 0, len(order.Items)),
	}

	if order.Customer != nil {
		resp.CustomerName = order.Customer.FullName()
	}

	for _, line := range order.Items {
		item := OrderItemResponse{
			ID:              line.ID,
			InventoryItemID: line.InventoryItemID,
			ItemName:        "Unknown",
			Quantity:        line.Quantity,
			UnitPrice:       float64(line.UnitPrice) / 100,
			Discount:        float64(line.Discount) / 100,
			Subtotal:        float64(line.Subtotal) / 100,
		}
		if line.InventoryItem != nil {
			item.ItemName = line.InventoryItem.Name
		}
		resp.Items = append(resp.Items, item)
	}

	return resp
}

// NewOrderListResponse maps a slice of orders.
func NewOrderListResponse(orders []entity.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderResponse(&orders[i]))
	}
	return out
}
