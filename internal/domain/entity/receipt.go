package entity

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// Receipt is a value object representing a printable receipt. It is NOT a
// database entity; it is composed from order data at print time.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	OrderNumber   string        `json:"order_number"`
	Date          string        `json:"date"`
	Customer      string        `json:"customer,omitempty"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	Items         []ReceiptItem `json:"items"`
	Total         float64       `json:"total"`
	Tax           float64       `json:"tax"`
	Discount      float64       `json:"discount"`
	Net           float64       `json:"net"`
}
