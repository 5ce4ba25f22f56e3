package enums

import "fmt"

// ShippingTier selects the delivery speed at checkout.
type ShippingTier string

const (
	ShippingTierStandard ShippingTier = "standard"
	ShippingTierExpress  ShippingTier = "express"
)

var validShippingTiers = []ShippingTier{
	ShippingTierStandard,
	ShippingTierExpress,
}

// String implements fmt.Stringer.
func (s ShippingTier) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ShippingTier.
func (s ShippingTier) IsValid() bool {
	for _, candidate := range validShippingTiers {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseShippingTier converts raw input into a ShippingTier.
func ParseShippingTier(value string) (ShippingTier, error) {
	for _, candidate := range validShippingTiers {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid shipping tier %q", value)
}
