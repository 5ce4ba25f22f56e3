package orders

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/swiftmart-backend/internal/identity"
	"github.com/angelmondragon/swiftmart-backend/pkg/db/models"
	"github.com/angelmondragon/swiftmart-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/swiftmart-backend/pkg/errors"
)

// TrackingSource produces a carrier tracking number and the number of days
// until estimated delivery for a new order.
type TrackingSource func() (trackingNumber string, deliveryDays int)

// CreateParams carries the frozen inputs for a new order. Lines and the
// shipping address are snapshots taken at checkout time; later cart or
// address edits must not reach back into placed orders.
type CreateParams struct {
	Lines           []models.CartLine
	ShippingAddress models.Address
	PaymentMethod   enums.PaymentMethod
	Breakdown       models.PriceBreakdown
	CouponCode      *string
}

// Service manages per-shopper order history and status transitions.
type Service interface {
	Create(ctx context.Context, owner identity.Owner, params CreateParams) (models.Order, error)
	Get(ctx context.Context, owner identity.Owner, orderID uuid.UUID) (*models.Order, error)
	List(ctx context.Context, owner identity.Owner) ([]models.Order, error)
	UpdateStatus(ctx context.Context, owner identity.Owner, orderID uuid.UUID, next enums.OrderStatus) (models.Order, error)
	Cancel(ctx context.Context, owner identity.Owner, orderID uuid.UUID) (models.Order, error)
	ListByStatus(ctx context.Context, status enums.OrderStatus) ([]models.Order, error)
	Advance(ctx context.Context, orderID uuid.UUID, next enums.OrderStatus) (models.Order, error)
}

type ServiceParams struct {
	Repo     *Repository
	NewID    func() uuid.UUID
	Now      func() time.Time
	Tracking TrackingSource
}

type service struct {
	repo     *Repository
	newID    func() uuid.UUID
	now      func() time.Time
	tracking TrackingSource
}

// NewService validates dependencies and returns the order service.
// NewID, Now and Tracking default to production implementations when nil.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "orders service requires a repository")
	}
	if params.NewID == nil {
		params.NewID = uuid.New
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	if params.Tracking == nil {
		params.Tracking = DefaultTracking
	}
	return &service{
		repo:     params.Repo,
		newID:    params.NewID,
		now:      params.Now,
		tracking: params.Tracking,
	}, nil
}

// DefaultTracking issues a synthetic carrier tracking number and a delivery
// window of five to seven days.
func DefaultTracking() (string, int) {
	return fmt.Sprintf("SWM%09d", rand.Intn(1_000_000_000)), 5 + rand.Intn(3)
}

func (s *service) Create(ctx context.Context, owner identity.Owner, params CreateParams) (models.Order, error) {
	if !owner.Valid() {
		return models.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "owner is required")
	}
	if !params.PaymentMethod.IsValid() {
		return models.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "unsupported payment method")
	}

	state, err := s.repo.Load(ctx, owner)
	if err != nil {
		return models.Order{}, err
	}

	createdAt := s.now().UTC()
	trackingNumber, deliveryDays := s.tracking()

	order := models.Order{
		ID:                s.newID(),
		UserID:            owner.UserID,
		CreatedAt:         createdAt,
		Status:            enums.OrderStatusPending,
		Lines:             append([]models.CartLine(nil), params.Lines...),
		ShippingAddress:   params.ShippingAddress,
		PaymentMethod:     params.PaymentMethod,
		Breakdown:         params.Breakdown,
		CouponCode:        params.CouponCode,
		TrackingNumber:    trackingNumber,
		EstimatedDelivery: createdAt.AddDate(0, 0, deliveryDays),
	}

	// Most recent first.
	state.Orders = append([]models.Order{order}, state.Orders...)
	if err := s.repo.Save(ctx, owner, state); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *service) Get(ctx context.Context, owner identity.Owner, orderID uuid.UUID) (*models.Order, error) {
	state, err := s.repo.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	for i := range state.Orders {
		if state.Orders[i].ID == orderID {
			order := state.Orders[i]
			return &order, nil
		}
	}
	return nil, nil
}

func (s *service) List(ctx context.Context, owner identity.Owner) ([]models.Order, error) {
	state, err := s.repo.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	return append([]models.Order(nil), state.Orders...), nil
}

func (s *service) UpdateStatus(ctx context.Context, owner identity.Owner, orderID uuid.UUID, next enums.OrderStatus) (models.Order, error) {
	if !next.IsValid() {
		return models.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
	}

	state, err := s.repo.Load(ctx, owner)
	if err != nil {
		return models.Order{}, err
	}
	idx := -1
	for i := range state.Orders {
		if state.Orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}

	current := state.Orders[idx].Status
	if !current.CanTransitionTo(next) {
		return models.Order{}, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("order cannot move from %s to %s", current, next)).
			WithDetails(map[string]any{"from": current.String(), "to": next.String()})
	}

	state.Orders[idx].Status = next
	if err := s.repo.Save(ctx, owner, state); err != nil {
		return models.Order{}, err
	}
	return state.Orders[idx], nil
}

func (s *service) Cancel(ctx context.Context, owner identity.Owner, orderID uuid.UUID) (models.Order, error) {
	return s.UpdateStatus(ctx, owner, orderID, enums.OrderStatusCancelled)
}

func (s *service) ListByStatus(ctx context.Context, status enums.OrderStatus) ([]models.Order, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
	}
	states, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Order
	for _, state := range states {
		for _, order := range state.Orders {
			if order.Status == status {
				out = append(out, order)
			}
		}
	}
	return out, nil
}

func (s *service) Advance(ctx context.Context, orderID uuid.UUID, next enums.OrderStatus) (models.Order, error) {
	if !next.IsValid() {
		return models.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
	}
	states, err := s.repo.LoadAll(ctx)
	if err != nil {
		return models.Order{}, err
	}
	for storageKey, state := range states {
		for i := range state.Orders {
			if state.Orders[i].ID != orderID {
				continue
			}
			current := state.Orders[i].Status
			if !current.CanTransitionTo(next) {
				return models.Order{}, pkgerrors.New(pkgerrors.CodeStateConflict,
					fmt.Sprintf("order cannot move from %s to %s", current, next)).
					WithDetails(map[string]any{"from": current.String(), "to": next.String()})
			}
			state.Orders[i].Status = next
			if err := s.repo.saveKey(ctx, storageKey, state); err != nil {
				return models.Order{}, err
			}
			return state.Orders[i], nil
		}
	}
	return models.Order{}, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
}
