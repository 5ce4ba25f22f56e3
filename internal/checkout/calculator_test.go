package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/swiftmart-backend/pkg/config"
	"github.com/angelmondragon/swiftmart-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/swiftmart-backend/pkg/errors"
)

func testPricing() Pricing {
	return PricingFromConfig(config.CheckoutConfig{
		FreeShippingThreshold: 499,
		StandardShippingCost:  50,
		ExpressShippingCost:   100,
		TaxRate:               0.10,
	})
}

func mustCoupon(t *testing.T, code string) *Coupon {
	t.Helper()
	coupon, err := DefaultCouponRegistry().Lookup(code)
	require.NoError(t, err)
	require.NotNil(t, coupon)
	return coupon
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

func TestBreakdownWithPercentageCoupon(t *testing.T) {
	pricing := testPricing()

	b, err := pricing.ComputeBreakdown(decimal.RequireFromString("49.80"), enums.ShippingTierStandard, mustCoupon(t, "SAVE10"))
	require.NoError(t, err)

	assertDecimal(t, "49.80", b.Subtotal)
	assertDecimal(t, "50", b.ShippingCost)
	assertDecimal(t, "4.98", b.Tax)
	assertDecimal(t, "4.98", b.Discount)
	assertDecimal(t, "99.80", b.Total)
}

func TestBreakdownWithoutCoupon(t *testing.T) {
	pricing := testPricing()

	b, err := pricing.ComputeBreakdown(decimal.RequireFromString("100"), enums.ShippingTierExpress, nil)
	require.NoError(t, err)

	assertDecimal(t, "100", b.ShippingCost)
	assertDecimal(t, "10", b.Tax)
	assertDecimal(t, "0", b.Discount)
	assertDecimal(t, "210", b.Total)
}

func TestShippingFreeAboveThreshold(t *testing.T) {
	pricing := testPricing()

	b, err := pricing.ComputeBreakdown(decimal.RequireFromString("499"), enums.ShippingTierExpress, nil)
	require.NoError(t, err)
	assertDecimal(t, "0", b.ShippingCost)

	b, err = pricing.ComputeBreakdown(decimal.RequireFromString("498.99"), enums.ShippingTierExpress, nil)
	require.NoError(t, err)
	assertDecimal(t, "100", b.ShippingCost)
}

func TestFreeShippingCoupon(t *testing.T) {
	pricing := testPricing()

	b, err := pricing.ComputeBreakdown(decimal.RequireFromString("20"), enums.ShippingTierStandard, mustCoupon(t, "FREESHIP"))
	require.NoError(t, err)

	assertDecimal(t, "0", b.ShippingCost)
	assertDecimal(t, "0", b.Discount)
	assertDecimal(t, "22", b.Total)
}

func TestFixedCouponNeverDrivesTotalNegative(t *testing.T) {
	pricing := testPricing()

	b, err := pricing.ComputeBreakdown(decimal.RequireFromString("500"), enums.ShippingTierStandard, mustCoupon(t, "FLAT50"))
	require.NoError(t, err)
	assertDecimal(t, "50", b.Discount)
	assertDecimal(t, "500", b.Total)

	// Discount larger than the whole bill clamps to zero.
	b, err = pricing.ComputeBreakdown(decimal.RequireFromString("10"), enums.ShippingTierStandard, mustCoupon(t, "FLAT50"))
	require.NoError(t, err)
	assertDecimal(t, "0", b.Total)
}

func TestEmptyCartBreakdown(t *testing.T) {
	pricing := testPricing()

	b, err := pricing.ComputeBreakdown(decimal.Zero, enums.ShippingTierStandard, nil)
	require.NoError(t, err)

	assertDecimal(t, "0", b.Subtotal)
	assertDecimal(t, "50", b.ShippingCost)
	assertDecimal(t, "0", b.Tax)
	assertDecimal(t, "50", b.Total)
}

func TestUnknownShippingTierRejected(t *testing.T) {
	pricing := testPricing()

	_, err := pricing.ComputeBreakdown(decimal.Zero, enums.ShippingTier("overnight"), nil)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}
