package orders

import (
	"context"
	"encoding/json"

	"github.com/angelmondragon/swiftmart-backend/internal/identity"
	"github.com/angelmondragon/swiftmart-backend/internal/snapshot"
	"github.com/angelmondragon/swiftmart-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/swiftmart-backend/pkg/errors"
)

const keyPrefix = "orders/"

// Repository persists order history as one snapshot per shopper.
type Repository struct {
	store snapshot.Store
}

// NewRepository constructs an orders repository over the snapshot store.
func NewRepository(store snapshot.Store) *Repository {
	return &Repository{store: store}
}

func key(owner identity.Owner) string {
	return keyPrefix + owner.Key()
}

// Load returns the shopper's order history, empty when never written.
func (r *Repository) Load(ctx context.Context, owner identity.Owner) (models.OrderState, error) {
	return r.loadKey(ctx, key(owner))
}

func (r *Repository) loadKey(ctx context.Context, storageKey string) (models.OrderState, error) {
	payload, err := r.store.Load(ctx, storageKey)
	if err != nil {
		return models.OrderState{}, err
	}
	if payload == nil {
		return models.OrderState{}, nil
	}
	var state models.OrderState
	if err := json.Unmarshal(payload, &state); err != nil {
		return models.OrderState{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode orders snapshot")
	}
	return state, nil
}

// Save rewrites the shopper's order snapshot in full.
func (r *Repository) Save(ctx context.Context, owner identity.Owner, state models.OrderState) error {
	return r.saveKey(ctx, key(owner), state)
}

func (r *Repository) saveKey(ctx context.Context, storageKey string, state models.OrderState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode orders snapshot")
	}
	return r.store.Save(ctx, storageKey, payload)
}

// LoadAll returns every shopper's order history keyed by snapshot key.
// The delivery-partner view reads across owners; shopper routes never do.
func (r *Repository) LoadAll(ctx context.Context) (map[string]models.OrderState, error) {
	keys, err := r.store.Keys(ctx, keyPrefix)
	if err != nil {
		return nil, err
	}
	out := make(map[string]models.OrderState, len(keys))
	for _, storageKey := range keys {
		state, err := r.loadKey(ctx, storageKey)
		if err != nil {
			return nil, err
		}
		out[storageKey] = state
	}
	return out, nil
}
