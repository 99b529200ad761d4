package marketplacehttp

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/marcheferme/marketplace_service/internal/domain/models"
)

type principalKey struct{}

const (
	headerUserUUID = "X-User-UUID"
	headerUserRole = "X-User-Role"
)

// withPrincipal turns the identity headers asserted by the upstream auth
// layer into a context Principal. The values are trusted as-is; requests
// without them are rejected before reaching any handler.
func (h *Handler) withPrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userUUID, err := uuid.Parse(r.Header.Get(headerUserUUID))
		if err != nil {
			h.writeErrorCode(w, http.StatusUnauthorized, "UNAUTHENTICATED", "missing or invalid user identity")
			return
		}

		role, ok := models.ParseRole(r.Header.Get(headerUserRole))
		if !ok {
			h.writeErrorCode(w, http.StatusUnauthorized, "UNAUTHENTICATED", "missing or invalid user role")
			return
		}

		principal := models.Principal{UUID: userUUID, Role: role}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), principalKey{}, principal)))
	})
}

func principalFromContext(ctx context.Context) models.Principal {
	principal, _ := ctx.Value(principalKey{}).(models.Principal)
	return principal
}
