package address

import (
	"context"
	"encoding/json"

	"github.com/angelmondragon/swiftmart-backend/internal/identity"
	"github.com/angelmondragon/swiftmart-backend/internal/snapshot"
	"github.com/angelmondragon/swiftmart-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/swiftmart-backend/pkg/errors"
)

const keyPrefix = "addresses/"

// Repository persists the address book as one snapshot per shopper.
type Repository struct {
	store snapshot.Store
}

// NewRepository constructs an address repository over the snapshot store.
func NewRepository(store snapshot.Store) *Repository {
	return &Repository{store: store}
}

func key(owner identity.Owner) string {
	return keyPrefix + owner.Key()
}

// Load returns the shopper's address book, empty when never written.
func (r *Repository) Load(ctx context.Context, owner identity.Owner) (models.AddressState, error) {
	payload, err := r.store.Load(ctx, key(owner))
	if err != nil {
		return models.AddressState{}, err
	}
	if payload == nil {
		return models.AddressState{}, nil
	}
	var state models.AddressState
	if err := json.Unmarshal(payload, &state); err != nil {
		return models.AddressState{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode address snapshot")
	}
	return state, nil
}

// Save rewrites the shopper's address book snapshot in full.
func (r *Repository) Save(ctx context.Context, owner identity.Owner, state models.AddressState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode address snapshot")
	}
	return r.store.Save(ctx, key(owner), payload)
}
