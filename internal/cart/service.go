package cart

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/swiftmart-backend/internal/identity"
	"github.com/angelmondragon/swiftmart-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/swiftmart-backend/pkg/errors"
)

// Service exposes the shopping cart operations.
type Service interface {
	Get(ctx context.Context, owner identity.Owner) (models.CartState, error)
	AddItem(ctx context.Context, owner identity.Owner, input AddItemInput) (models.CartState, error)
	SetQuantity(ctx context.Context, owner identity.Owner, productID uuid.UUID, qty int) (models.CartState, error)
	RemoveItem(ctx context.Context, owner identity.Owner, productID uuid.UUID) (models.CartState, error)
	Clear(ctx context.Context, owner identity.Owner) error
}

type service struct {
	repo *Repository
}

// NewService builds a cart service backed by the provided repository.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart repository is required")
	}
	return &service{repo: repo}, nil
}

// AddItemInput carries the product fields the storefront shows on the card.
type AddItemInput struct {
	ProductID uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Image     string
	Quantity  int
}

func (s *service) Get(ctx context.Context, owner identity.Owner) (models.CartState, error) {
	if !owner.Valid() {
		return models.CartState{}, pkgerrors.New(pkgerrors.CodeValidation, "shopper identity is required")
	}
	return s.repo.Load(ctx, owner)
}

// AddItem merges into an existing line for the same product or appends a
// new one. A zero quantity is a no-op; a negative one is rejected.
func (s *service) AddItem(ctx context.Context, owner identity.Owner, input AddItemInput) (models.CartState, error) {
	if !owner.Valid() {
		return models.CartState{}, pkgerrors.New(pkgerrors.CodeValidation, "shopper identity is required")
	}
	if input.ProductID == uuid.Nil {
		return models.CartState{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return models.CartState{}, pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if input.UnitPrice.IsNegative() {
		return models.CartState{}, pkgerrors.New(pkgerrors.CodeValidation, "unit price cannot be negative")
	}
	if input.Quantity < 0 {
		return models.CartState{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative")
	}

	state, err := s.repo.Load(ctx, owner)
	if err != nil {
		return models.CartState{}, err
	}
	if input.Quantity == 0 {
		return state, nil
	}

	merged := false
	for i := range state.Lines {
		if state.Lines[i].ProductID == input.ProductID {
			state.Lines[i].Quantity += input.Quantity
			merged = true
			break
		}
	}
	if !merged {
		state.Lines = append(state.Lines, models.CartLine{
			ProductID: input.ProductID,
			Name:      input.Name,
			UnitPrice: input.UnitPrice,
			Image:     input.Image,
			Quantity:  input.Quantity,
		})
	}

	if err := s.repo.Save(ctx, owner, state); err != nil {
		return models.CartState{}, err
	}
	return state, nil
}

// SetQuantity overwrites a line's quantity; zero or less removes the line.
func (s *service) SetQuantity(ctx context.Context, owner identity.Owner, productID uuid.UUID, qty int) (models.CartState, error) {
	if !owner.Valid() {
		return models.CartState{}, pkgerrors.New(pkgerrors.CodeValidation, "shopper identity is required")
	}
	if productID == uuid.Nil {
		return models.CartState{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if qty <= 0 {
		return s.RemoveItem(ctx, owner, productID)
	}

	state, err := s.repo.Load(ctx, owner)
	if err != nil {
		return models.CartState{}, err
	}
	for i := range state.Lines {
		if state.Lines[i].ProductID == productID {
			state.Lines[i].Quantity = qty
			if err := s.repo.Save(ctx, owner, state); err != nil {
				return models.CartState{}, err
			}
			return state, nil
		}
	}
	return models.CartState{}, pkgerrors.New(pkgerrors.CodeNotFound, "product is not in the cart")
}

// RemoveItem deletes the line if present and is a no-op otherwise.
func (s *service) RemoveItem(ctx context.Context, owner identity.Owner, productID uuid.UUID) (models.CartState, error) {
	if !owner.Valid() {
		return models.CartState{}, pkgerrors.New(pkgerrors.CodeValidation, "shopper identity is required")
	}

	state, err := s.repo.Load(ctx, owner)
	if err != nil {
		return models.CartState{}, err
	}
	kept := state.Lines[:0]
	removed := false
	for _, line := range state.Lines {
		if line.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, line)
	}
	if !removed {
		return state, nil
	}
	state.Lines = kept

	if err := s.repo.Save(ctx, owner, state); err != nil {
		return models.CartState{}, err
	}
	return state, nil
}

func (s *service) Clear(ctx context.Context, owner identity.Owner) error {
	if !owner.Valid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "shopper identity is required")
	}
	return s.repo.Save(ctx, owner, models.CartState{})
}
