// Package middleware holds the HTTP middleware shared by all routes:
// request tracing, bearer-token authentication, role checks and login
// throttling.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/podcast-api/internal/api/shared"
	"github.com/phrazzld/podcast-api/internal/domain"
	"github.com/phrazzld/podcast-api/internal/service"
	"github.com/phrazzld/podcast-api/internal/service/auth"
)

// AuthMiddleware resolves the caller from a bearer token.
type AuthMiddleware struct {
	tokens   auth.TokenService
	accounts service.AccountService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokens auth.TokenService, accounts service.AccountService) *AuthMiddleware {
	if tokens == nil || accounts == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("token service and account service cannot be nil for AuthMiddleware")
	}
	return &AuthMiddleware{
		tokens:   tokens,
		accounts: accounts,
	}
}

// Authenticate verifies the token in the Authorization header, loads the
// user it names and stores that user in the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := m.tokens.Verify(r.Context(), parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Invalid token", err,
					shared.WithElevatedLogLevel())
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Authentication error", err)
			return
		}

		out := m.accounts.FindByID(r.Context(), claims.ID)
		if !out.OK {
			if out.Kind == service.KindInternal {
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Authentication error", nil)
				return
			}
			shared.RespondWithError(w, r, http.StatusUnauthorized, out.Error)
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithUser(r.Context(), out.User)))
	})
}

// RequireRole rejects authenticated callers whose role is not listed.
// It must run after Authenticate.
func RequireRole(roles ...domain.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := shared.UserFromContext(r.Context())
			if !ok {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
				return
			}
			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			shared.RespondWithError(w, r, http.StatusForbidden, "Forbidden")
		})
	}
}
