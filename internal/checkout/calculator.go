package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/swiftmart-backend/pkg/config"
	"github.com/angelmondragon/swiftmart-backend/pkg/db/models"
	"github.com/angelmondragon/swiftmart-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/swiftmart-backend/pkg/errors"
)

// Pricing holds the resolved pricing knobs as exact decimals.
type Pricing struct {
	FreeShippingThreshold decimal.Decimal
	StandardShippingCost  decimal.Decimal
	ExpressShippingCost   decimal.Decimal
	TaxRate               decimal.Decimal
}

// PricingFromConfig converts the float config knobs into decimals once at
// startup so no float arithmetic reaches the breakdown.
func PricingFromConfig(cfg config.CheckoutConfig) Pricing {
	return Pricing{
		FreeShippingThreshold: decimal.NewFromFloat(cfg.FreeShippingThreshold),
		StandardShippingCost:  decimal.NewFromFloat(cfg.StandardShippingCost),
		ExpressShippingCost:   decimal.NewFromFloat(cfg.ExpressShippingCost),
		TaxRate:               decimal.NewFromFloat(cfg.TaxRate),
	}
}

// ComputeBreakdown derives the full price breakdown from a subtotal, a
// shipping tier and an optional coupon. It is pure: same inputs, same
// breakdown.
//
// Shipping is free when the subtotal meets the threshold or a
// free-shipping coupon applies; otherwise it is the tier's flat cost.
// Tax applies to the subtotal only. The grand total never goes below zero
// regardless of discount size.
func (p Pricing) ComputeBreakdown(subtotal decimal.Decimal, tier enums.ShippingTier, coupon *Coupon) (models.PriceBreakdown, error) {
	if !tier.IsValid() {
		return models.PriceBreakdown{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown shipping tier")
	}

	shipping := p.StandardShippingCost
	if tier == enums.ShippingTierExpress {
		shipping = p.ExpressShippingCost
	}
	freeShipCoupon := coupon != nil && coupon.Kind == enums.CouponKindFreeShipping
	if freeShipCoupon || subtotal.GreaterThanOrEqual(p.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(p.TaxRate).Round(2)

	discount := decimal.Zero
	if coupon != nil {
		switch coupon.Kind {
		case enums.CouponKindPercentage:
			discount = subtotal.Mul(coupon.Value).Div(decimal.NewFromInt(100)).Round(2)
		case enums.CouponKindFixed:
			discount = coupon.Value
		}
	}

	total := subtotal.Add(shipping).Add(tax).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return models.PriceBreakdown{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Tax:          tax,
		Discount:     discount,
		Total:        total,
	}, nil
}
