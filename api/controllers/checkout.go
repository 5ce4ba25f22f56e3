package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/angelmondragon/swiftmart-backend/api/middleware"
	"github.com/angelmondragon/swiftmart-backend/api/responses"
	"github.com/angelmondragon/swiftmart-backend/api/validators"
	checkoutsvc "github.com/angelmondragon/swiftmart-backend/internal/checkout"
	"github.com/angelmondragon/swiftmart-backend/pkg/enums"
	"github.com/angelmondragon/swiftmart-backend/pkg/logger"
)

type quoteRequest struct {
	ShippingTier string `json:"shipping_tier" validate:"required,oneof=standard express"`
	CouponCode   string `json:"coupon_code"`
}

// CheckoutQuote prices the live cart without placing an order.
func CheckoutQuote(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := middleware.OwnerFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload quoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		breakdown, err := svc.Quote(r.Context(), owner, checkoutsvc.QuoteInput{
			ShippingTier: enums.ShippingTier(payload.ShippingTier),
			CouponCode:   payload.CouponCode,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, breakdown)
	}
}

type submitRequest struct {
	ShippingTier  string    `json:"shipping_tier" validate:"required,oneof=standard express"`
	CouponCode    string    `json:"coupon_code"`
	AddressID     uuid.UUID `json:"address_id" validate:"required"`
	PaymentMethod string    `json:"payment_method" validate:"required,oneof=cod card upi"`
}

// CheckoutSubmit places an order from the live cart, then empties it.
func CheckoutSubmit(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := middleware.OwnerFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload submitRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Submit(r.Context(), owner, checkoutsvc.SubmitInput{
			QuoteInput: checkoutsvc.QuoteInput{
				ShippingTier: enums.ShippingTier(payload.ShippingTier),
				CouponCode:   payload.CouponCode,
			},
			AddressID:     payload.AddressID,
			PaymentMethod: enums.PaymentMethod(payload.PaymentMethod),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
