package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/swiftmart-backend/pkg/enums"
)

// PriceBreakdown is the derived checkout arithmetic. It is never
// persisted on its own, only inside the order it produced.
type PriceBreakdown struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	Tax          decimal.Decimal `json:"tax"`
	Discount     decimal.Decimal `json:"discount"`
	Total        decimal.Decimal `json:"total"`
}

// Order is a finalized checkout. Everything except Status is frozen at
// creation; later cart or address edits never reach back into it.
// UserID is nil for guest orders.
type Order struct {
	ID                uuid.UUID           `json:"id"`
	UserID            *uuid.UUID          `json:"user_id,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	Status            enums.OrderStatus   `json:"status"`
	Lines             []CartLine          `json:"lines"`
	ShippingAddress   Address             `json:"shipping_address"`
	PaymentMethod     enums.PaymentMethod `json:"payment_method"`
	Breakdown         PriceBreakdown      `json:"breakdown"`
	CouponCode        *string             `json:"coupon_code,omitempty"`
	TrackingNumber    string              `json:"tracking_number"`
	EstimatedDelivery time.Time           `json:"estimated_delivery"`
}

// OrderState is the full persisted order history for one shopper,
// most recent first.
type OrderState struct {
	Orders []Order `json:"orders"`
}
