package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/swiftmart-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/swiftmart-backend/pkg/errors"
)

func TestLookupIsCaseInsensitive(t *testing.T) {
	registry := DefaultCouponRegistry()

	for _, code := range []string{"SAVE10", "save10", "Save10", "  save10  "} {
		coupon, err := registry.Lookup(code)
		require.NoError(t, err, code)
		require.NotNil(t, coupon, code)
		assert.Equal(t, "SAVE10", coupon.Code)
		assert.Equal(t, enums.CouponKindPercentage, coupon.Kind)
	}
}

func TestLookupEmptyMeansNoCoupon(t *testing.T) {
	coupon, err := DefaultCouponRegistry().Lookup("")
	require.NoError(t, err)
	assert.Nil(t, coupon)
}

func TestLookupUnknownCodeRejected(t *testing.T) {
	_, err := DefaultCouponRegistry().Lookup("SAVE10EXTRA")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}
