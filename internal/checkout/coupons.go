package checkout

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/swiftmart-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/swiftmart-backend/pkg/errors"
)

// Coupon is a storefront promotion. Value is a percentage for percentage
// coupons and an absolute amount for fixed ones; free-shipping coupons
// carry no value.
type Coupon struct {
	Code  string
	Kind  enums.CouponKind
	Value decimal.Decimal
}

// CouponRegistry resolves coupon codes. Lookup is case-insensitive and
// exact, no substring or fuzzy matching.
type CouponRegistry struct {
	byCode map[string]Coupon
}

func NewCouponRegistry(coupons ...Coupon) *CouponRegistry {
	byCode := make(map[string]Coupon, len(coupons))
	for _, c := range coupons {
		byCode[strings.ToUpper(c.Code)] = c
	}
	return &CouponRegistry{byCode: byCode}
}

// DefaultCouponRegistry returns the registry with the storefront's
// standing promotions.
func DefaultCouponRegistry() *CouponRegistry {
	return NewCouponRegistry(
		Coupon{Code: "SAVE10", Kind: enums.CouponKindPercentage, Value: decimal.NewFromInt(10)},
		Coupon{Code: "FLAT50", Kind: enums.CouponKindFixed, Value: decimal.NewFromInt(50)},
		Coupon{Code: "FREESHIP", Kind: enums.CouponKindFreeShipping},
	)
}

// Lookup resolves a code. An empty code means no coupon and returns nil
// without error; an unknown non-empty code is a validation failure so the
// shopper learns the code was rejected rather than silently ignored.
func (r *CouponRegistry) Lookup(code string) (*Coupon, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return nil, nil
	}
	coupon, ok := r.byCode[strings.ToUpper(trimmed)]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid coupon code").
			WithDetails(map[string]any{"code": trimmed})
	}
	return &coupon, nil
}
