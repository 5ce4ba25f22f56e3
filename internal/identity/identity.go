package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Owner identifies the shopper whose state a request operates on:
// either an authenticated user or an anonymous guest session. Every
// persisted snapshot key is derived from it, so guest and user state
// can never mix.
type Owner struct {
	UserID    *uuid.UUID
	SessionID string
}

// User builds an authenticated owner.
func User(id uuid.UUID) Owner {
	return Owner{UserID: &id}
}

// Guest builds a guest owner from a caller-held session id.
func Guest(sessionID string) Owner {
	return Owner{SessionID: strings.TrimSpace(sessionID)}
}

// IsGuest reports whether no authenticated user backs this owner.
func (o Owner) IsGuest() bool {
	return o.UserID == nil
}

// Valid reports whether the owner can address any state at all.
func (o Owner) Valid() bool {
	if o.UserID != nil {
		return *o.UserID != uuid.Nil
	}
	return o.SessionID != ""
}

// Key returns the stable storage-key fragment for this owner.
func (o Owner) Key() string {
	if o.UserID != nil {
		return fmt.Sprintf("user/%s", o.UserID)
	}
	return fmt.Sprintf("guest/%s", o.SessionID)
}

type ctxKey struct{}

// WithOwner attaches the owner to the request context.
func WithOwner(ctx context.Context, owner Owner) context.Context {
	return context.WithValue(ctx, ctxKey{}, owner)
}

// FromContext returns the owner previously attached by the middleware.
func FromContext(ctx context.Context) (Owner, bool) {
	owner, ok := ctx.Value(ctxKey{}).(Owner)
	return owner, ok
}
