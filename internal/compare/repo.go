package compare

import (
	"context"
	"encoding/json"

	"github.com/angelmondragon/swiftmart-backend/internal/identity"
	"github.com/angelmondragon/swiftmart-backend/internal/snapshot"
	"github.com/angelmondragon/swiftmart-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/swiftmart-backend/pkg/errors"
)

const keyPrefix = "compare/"

// Repository persists the comparison set as one snapshot per shopper.
type Repository struct {
	store snapshot.Store
}

// NewRepository constructs a compare repository over the snapshot store.
func NewRepository(store snapshot.Store) *Repository {
	return &Repository{store: store}
}

func key(owner identity.Owner) string {
	return keyPrefix + owner.Key()
}

// Load returns the shopper's comparison set, empty when never written.
func (r *Repository) Load(ctx context.Context, owner identity.Owner) (models.CompareState, error) {
	payload, err := r.store.Load(ctx, key(owner))
	if err != nil {
		return models.CompareState{}, err
	}
	if payload == nil {
		return models.CompareState{}, nil
	}
	var state models.CompareState
	if err := json.Unmarshal(payload, &state); err != nil {
		return models.CompareState{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode compare snapshot")
	}
	return state, nil
}

// Save rewrites the shopper's comparison snapshot in full.
func (r *Repository) Save(ctx context.Context, owner identity.Owner, state models.CompareState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode compare snapshot")
	}
	return r.store.Save(ctx, key(owner), payload)
}
