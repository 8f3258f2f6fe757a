package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/handlers"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

const (
	msgLoginRequired  = "Please log in to access this page."
	msgSessionExpired = "Session expired. Please log in again."
	msgAccessDenied   = "Access denied"
)

// Auth resolves the session from the cookie or an "Authorization: Bearer" header,
// loads the user and stores it in the request context
type Auth struct {
	tokens     TokenParser
	users      UserLoader
	cookieName string
	logger     Logger
}

func NewAuth(tokens TokenParser, users UserLoader, cookieName string, logger Logger) *Auth {
	return &Auth{
		tokens:     tokens,
		users:      users,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Middleware rejects requests without a valid session
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := a.extractToken(r)
		if token == "" {
			handlers.RespondUnauthorized(w, msgLoginRequired)
			return
		}

		claims, err := a.tokens.Parse(token)
		if err != nil {
			a.logger.Warn("%s %s - invalid session: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgSessionExpired)
			return
		}

		user, err := a.users.GetByID(r.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				a.logger.Warn("%s %s - session user=%s no longer exists", r.Method, r.URL.Path, claims.Subject)
				handlers.RespondUnauthorized(w, msgSessionExpired)
				return
			}
			a.logger.Error("%s %s - failed to load session user=%s: %v", r.Method, r.URL.Path, claims.Subject, err)
			handlers.RespondInternalError(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func (a *Auth) extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(a.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := r.Header.Get("Authorization")
	if len(header) > len("Bearer ") && strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return ""
}

// RequireRole allows only users with one of roles; must run after Auth
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgLoginRequired)
				return
			}
			for _, role := range roles {
				if user.HasRole(role) {
					next.ServeHTTP(w, r)
					return
				}
			}
			handlers.RespondForbidden(w, msgAccessDenied)
		})
	}
}
