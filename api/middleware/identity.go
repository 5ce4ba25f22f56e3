package middleware

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/swiftmart-backend/api/responses"
	"github.com/angelmondragon/swiftmart-backend/internal/identity"
	"github.com/angelmondragon/swiftmart-backend/pkg/auth"
	pkgerrors "github.com/angelmondragon/swiftmart-backend/pkg/errors"
	"github.com/angelmondragon/swiftmart-backend/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

// Identity resolves who the shopper is and stores the owner on the
// request context. A valid bearer token wins over the guest session
// header; requests carrying neither are rejected so anonymous state
// always has a stable key.
func Identity(tokens *auth.Manager, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if bearer := bearerToken(r); bearer != "" {
				userID, err := tokens.Parse(bearer)
				if err != nil {
					responses.WriteError(ctx, logg, w,
						pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid bearer token"))
					return
				}
				owner := identity.User(userID)
				if logg != nil {
					ctx = logg.WithShopper(ctx, owner.Key())
				}
				next.ServeHTTP(w, r.WithContext(identity.WithOwner(ctx, owner)))
				return
			}

			if sessionID := strings.TrimSpace(r.Header.Get(sessionIDHeader)); sessionID != "" {
				owner := identity.Guest(sessionID)
				if logg != nil {
					ctx = logg.WithShopper(ctx, owner.Key())
				}
				next.ServeHTTP(w, r.WithContext(identity.WithOwner(ctx, owner)))
				return
			}

			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeUnauthorized, "bearer token or session id required"))
		})
	}
}

// OwnerFromContext is the controller-side accessor for the resolved
// shopper.
func OwnerFromContext(r *http.Request) (identity.Owner, error) {
	owner, ok := identity.FromContext(r.Context())
	if !ok || !owner.Valid() {
		return identity.Owner{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "shopper identity missing")
	}
	return owner, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
