package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	domuser "example.com/storefront/internal/domain/user"
)

type ctxKey struct{}

var (
	ctxUserKey         = ctxKey{}
	errUnauthenticated = errors.New("unauthenticated")
)

func (a *API) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := a.identityFromHeader(r)
		if err != nil || identity == nil {
			respondError(w, http.StatusUnauthorized, errUnauthenticated)
			return
		}

		ctx := context.WithValue(r.Context(), ctxUserKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuthMiddleware attaches the identity when a valid bearer token is
// present and lets the request through anonymously otherwise. Handlers that
// gate on identity (checkout) do their own precondition check.
func (a *API) optionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := a.identityFromHeader(r)
		if err == nil && identity != nil {
			ctx := context.WithValue(r.Context(), ctxUserKey, identity)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

func (a *API) identityFromHeader(r *http.Request) (*domuser.Identity, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errUnauthenticated
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return a.tokenSvc.ParseToken(token)
}

func getIdentity(ctx context.Context) *domuser.Identity {
	if id, ok := ctx.Value(ctxUserKey).(*domuser.Identity); ok {
		return id
	}
	return nil
}
