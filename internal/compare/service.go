package compare

import (
	"context"

	"github.com/google/uuid"

	"github.com/angelmondragon/swiftmart-backend/internal/catalog"
	"github.com/angelmondragon/swiftmart-backend/internal/identity"
	"github.com/angelmondragon/swiftmart-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/swiftmart-backend/pkg/errors"
)

// MaxItems is the hard cap on side-by-side comparison entries.
const MaxItems = 4

type productLoader interface {
	Get(id uuid.UUID) (catalog.Product, bool)
}

// Service manages the bounded product comparison set.
type Service interface {
	Get(ctx context.Context, owner identity.Owner) (models.CompareState, error)
	AddItem(ctx context.Context, owner identity.Owner, productID uuid.UUID) (models.CompareState, error)
	RemoveItem(ctx context.Context, owner identity.Owner, productID uuid.UUID) (models.CompareState, error)
	Contains(ctx context.Context, owner identity.Owner, productID uuid.UUID) (bool, error)
	CanAddMore(ctx context.Context, owner identity.Owner) (bool, error)
	Clear(ctx context.Context, owner identity.Owner) error
}

type service struct {
	repo    *Repository
	catalog productLoader
}

// NewService builds a compare service backed by the repository and the
// product catalog.
func NewService(repo *Repository, catalog productLoader) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "compare repository is required")
	}
	if catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product catalog is required")
	}
	return &service{repo: repo, catalog: catalog}, nil
}

func (s *service) Get(ctx context.Context, owner identity.Owner) (models.CompareState, error) {
	if !owner.Valid() {
		return models.CompareState{}, pkgerrors.New(pkgerrors.CodeValidation, "shopper identity is required")
	}
	return s.repo.Load(ctx, owner)
}

// AddItem snapshots the product into the set. Adding a member again is
// a no-op; adding past the cap leaves the set unchanged and fails with
// a state-conflict the UI can surface as "comparison full".
func (s *service) AddItem(ctx context.Context, owner identity.Owner, productID uuid.UUID) (models.CompareState, error) {
	if !owner.Valid() {
		return models.CompareState{}, pkgerrors.New(pkgerrors.CodeValidation, "shopper identity is required")
	}
	if productID == uuid.Nil {
		return models.CompareState{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	state, err := s.repo.Load(ctx, owner)
	if err != nil {
		return models.CompareState{}, err
	}
	if state.Contains(productID) {
		return state, nil
	}
	if len(state.Items) >= MaxItems {
		return models.CompareState{}, pkgerrors.
			New(pkgerrors.CodeStateConflict, "comparison set is full").
			WithDetails(map[string]any{"limit": MaxItems})
	}

	product, ok := s.catalog.Get(productID)
	if !ok {
		return models.CompareState{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	rating := product.Rating
	state.Items = append(state.Items, models.CompareEntry{
		ProductID:   product.ID,
		Name:        product.Name,
		Price:       product.UnitPrice,
		Image:       product.Image,
		Rating:      &rating,
		StockStatus: product.StockStatus,
		Unit:        product.Unit,
	})

	if err := s.repo.Save(ctx, owner, state); err != nil {
		return models.CompareState{}, err
	}
	return state, nil
}

// RemoveItem drops the entry if present and is a no-op otherwise.
func (s *service) RemoveItem(ctx context.Context, owner identity.Owner, productID uuid.UUID) (models.CompareState, error) {
	if !owner.Valid() {
		return models.CompareState{}, pkgerrors.New(pkgerrors.CodeValidation, "shopper identity is required")
	}

	state, err := s.repo.Load(ctx, owner)
	if err != nil {
		return models.CompareState{}, err
	}
	kept := state.Items[:0]
	removed := false
	for _, item := range state.Items {
		if item.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return state, nil
	}
	state.Items = kept

	if err := s.repo.Save(ctx, owner, state); err != nil {
		return models.CompareState{}, err
	}
	return state, nil
}

func (s *service) Contains(ctx context.Context, owner identity.Owner, productID uuid.UUID) (bool, error) {
	state, err := s.Get(ctx, owner)
	if err != nil {
		return false, err
	}
	return state.Contains(productID), nil
}

func (s *service) CanAddMore(ctx context.Context, owner identity.Owner) (bool, error) {
	state, err := s.Get(ctx, owner)
	if err != nil {
		return false, err
	}
	return len(state.Items) < MaxItems, nil
}

func (s *service) Clear(ctx context.Context, owner identity.Owner) error {
	if !owner.Valid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "shopper identity is required")
	}
	return s.repo.Save(ctx, owner, models.CompareState{})
}
