package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentMethod represents how an order was paid
type PaymentMethod int

const (
	PaymentMethodCash         PaymentMethod = 0
	PaymentMethodCreditCard   PaymentMethod = 1
	PaymentMethodDebitCard    PaymentMethod = 2
	PaymentMethodQRCode       PaymentMethod = 3
	PaymentMethodBankTransfer PaymentMethod = 4
)

func (m PaymentMethod) String() string {
	return [...]string{"Cash", "CreditCard", "DebitCard", "QRCode", "BankTransfer"}[m]
}

// IsValid reports whether m is one of the declared payment methods.
func (m PaymentMethod) IsValid() bool {
	return m >= PaymentMethodCash && m <= PaymentMethodBankTransfer
}

// ParsePaymentMethod converts a string name into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case "Cash":
		return PaymentMethodCash, nil
	case "CreditCard":
		return PaymentMethodCreditCard, nil
	case "DebitCard":
		return PaymentMethodDebitCard, nil
	case "QRCode":
		return PaymentMethodQRCode, nil
	case "BankTransfer":
		return PaymentMethodBankTransfer, nil
	}
	return 0, fmt.Errorf("unknown payment method %q", s)
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	parsed, err := ParsePaymentMethod(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}
