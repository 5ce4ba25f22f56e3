package cart

import (
	"context"
	"encoding/json"

	"github.com/angelmondragon/swiftmart-backend/internal/identity"
	"github.com/angelmondragon/swiftmart-backend/internal/snapshot"
	"github.com/angelmondragon/swiftmart-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/swiftmart-backend/pkg/errors"
)

const keyPrefix = "cart/"

// Repository persists the cart as one full-state snapshot per shopper.
type Repository struct {
	store snapshot.Store
}

// NewRepository constructs a cart repository over the snapshot store.
func NewRepository(store snapshot.Store) *Repository {
	return &Repository{store: store}
}

func key(owner identity.Owner) string {
	return keyPrefix + owner.Key()
}

// Load returns the shopper's cart, empty when never written.
func (r *Repository) Load(ctx context.Context, owner identity.Owner) (models.CartState, error) {
	payload, err := r.store.Load(ctx, key(owner))
	if err != nil {
		return models.CartState{}, err
	}
	if payload == nil {
		return models.CartState{}, nil
	}
	var state models.CartState
	if err := json.Unmarshal(payload, &state); err != nil {
		return models.CartState{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode cart snapshot")
	}
	return state, nil
}

// Save rewrites the shopper's cart snapshot in full.
func (r *Repository) Save(ctx context.Context, owner identity.Owner, state models.CartState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart snapshot")
	}
	return r.store.Save(ctx, key(owner), payload)
}
