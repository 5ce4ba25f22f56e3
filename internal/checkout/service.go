package checkout

import (
	"context"

	"github.com/google/uuid"

	"github.com/angelmondragon/swiftmart-backend/internal/identity"
	"github.com/angelmondragon/swiftmart-backend/internal/orders"
	"github.com/angelmondragon/swiftmart-backend/pkg/db/models"
	"github.com/angelmondragon/swiftmart-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/swiftmart-backend/pkg/errors"
)

// cartReader is the slice of the cart service checkout needs.
type cartReader interface {
	Get(ctx context.Context, owner identity.Owner) (models.CartState, error)
	Clear(ctx context.Context, owner identity.Owner) error
}

// addressReader resolves the shipping address for an order.
type addressReader interface {
	Get(ctx context.Context, owner identity.Owner, id uuid.UUID) (*models.Address, error)
}

// orderCreator places the order once the breakdown is settled.
type orderCreator interface {
	Create(ctx context.Context, owner identity.Owner, params orders.CreateParams) (models.Order, error)
}

// QuoteInput selects the pricing options for a quote or a submission.
type QuoteInput struct {
	ShippingTier enums.ShippingTier
	CouponCode   string
}

// SubmitInput carries everything needed to place an order.
type SubmitInput struct {
	QuoteInput
	AddressID     uuid.UUID
	PaymentMethod enums.PaymentMethod
}

// Service prices the live cart and turns it into orders.
type Service interface {
	Quote(ctx context.Context, owner identity.Owner, input QuoteInput) (models.PriceBreakdown, error)
	Submit(ctx context.Context, owner identity.Owner, input SubmitInput) (models.Order, error)
}

type ServiceParams struct {
	Cart      cartReader
	Addresses addressReader
	Orders    orderCreator
	Coupons   *CouponRegistry
	Pricing   Pricing
}

type service struct {
	cart      cartReader
	addresses addressReader
	orders    orderCreator
	coupons   *CouponRegistry
	pricing   Pricing
}

// NewService validates dependencies and returns the checkout service.
func NewService(params ServiceParams) (Service, error) {
	if params.Cart == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "checkout service requires the cart service")
	}
	if params.Addresses == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "checkout service requires the address service")
	}
	if params.Orders == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "checkout service requires the order service")
	}
	if params.Coupons == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "checkout service requires a coupon registry")
	}
	return &service{
		cart:      params.Cart,
		addresses: params.Addresses,
		orders:    params.Orders,
		coupons:   params.Coupons,
		pricing:   params.Pricing,
	}, nil
}

func (s *service) Quote(ctx context.Context, owner identity.Owner, input QuoteInput) (models.PriceBreakdown, error) {
	state, err := s.cart.Get(ctx, owner)
	if err != nil {
		return models.PriceBreakdown{}, err
	}
	coupon, err := s.coupons.Lookup(input.CouponCode)
	if err != nil {
		return models.PriceBreakdown{}, err
	}
	return s.pricing.ComputeBreakdown(state.Total(), input.ShippingTier, coupon)
}

func (s *service) Submit(ctx context.Context, owner identity.Owner, input SubmitInput) (models.Order, error) {
	if !input.PaymentMethod.IsValid() {
		return models.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "unsupported payment method")
	}

	address, err := s.addresses.Get(ctx, owner, input.AddressID)
	if err != nil {
		return models.Order{}, err
	}
	if address == nil {
		return models.Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "shipping address not found")
	}

	state, err := s.cart.Get(ctx, owner)
	if err != nil {
		return models.Order{}, err
	}
	coupon, err := s.coupons.Lookup(input.CouponCode)
	if err != nil {
		return models.Order{}, err
	}
	breakdown, err := s.pricing.ComputeBreakdown(state.Total(), input.ShippingTier, coupon)
	if err != nil {
		return models.Order{}, err
	}

	var couponCode *string
	if coupon != nil {
		couponCode = &coupon.Code
	}

	order, err := s.orders.Create(ctx, owner, orders.CreateParams{
		Lines:           state.Lines,
		ShippingAddress: *address,
		PaymentMethod:   input.PaymentMethod,
		Breakdown:       breakdown,
		CouponCode:      couponCode,
	})
	if err != nil {
		return models.Order{}, err
	}

	// The cart rolls over into the order; a placed order starts the
	// shopper from an empty cart.
	if err := s.cart.Clear(ctx, owner); err != nil {
		return models.Order{}, err
	}
	return order, nil
}
