package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SubscriptionPlan represents a billing plan tier
type SubscriptionPlan int

const (
	SubscriptionPlanBasic      SubscriptionPlan = 0
	SubscriptionPlanPro        SubscriptionPlan = 1
	SubscriptionPlanEnterprise SubscriptionPlan = 2
)

func (p SubscriptionPlan) String() string {
	return [...]string{"Basic", "Pro", "Enterprise"}[p]
}

// IsValid reports whether p is one of the declared plans.
func (p SubscriptionPlan) IsValid() bool {
	return p >= SubscriptionPlanBasic && p <= SubscriptionPlanEnterprise
}

// ParseSubscriptionPlan converts a string name into a SubscriptionPlan.
func ParseSubscriptionPlan(s string) (SubscriptionPlan, error) {
	switch s {
	case "Basic":
		return SubscriptionPlanBasic, nil
	case "Pro":
		return SubscriptionPlanPro, nil
	case "Enterprise":
		return SubscriptionPlanEnterprise, nil
	}
	return 0, fmt.Errorf("unknown subscription plan %q", s)
}

func (p SubscriptionPlan) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *SubscriptionPlan) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = SubscriptionPlan(i)
		return nil
	}
	parsed, err := ParseSubscriptionPlan(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p SubscriptionPlan) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *SubscriptionPlan) Scan(value interface{}) error {
	if value == nil {
		*p = SubscriptionPlanBasic
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = SubscriptionPlan(v)
	case int:
		*p = SubscriptionPlan(v)
	}
	return nil
}
