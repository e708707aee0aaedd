package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const AuthTokenHeader = "AUTH_TOKEN"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Subject(token string) (string, error)
}

type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
	}
}

// Authenticate resolves the principal from a bearer token (or the AUTH_TOKEN
// header) and stores it in the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := RequestIDFrom(r.Context())

		token := bearerToken(r)
		if token == "" {
			m.unauthorized(w, "authentication token is required")
			m.logs.Warnw("missing authentication token",
				"path", r.URL.Path,
				"request_id", requestID)
			return
		}

		principalID, err := m.validator.Subject(token)
		if err != nil {
			m.unauthorized(w, "authentication token is not valid")
			m.logs.Warnw("token validation failed",
				"error", err,
				"path", r.URL.Path,
				"request_id", requestID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipalID(r.Context(), principalID)))
	})
}

func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	return strings.TrimSpace(r.Header.Get(AuthTokenHeader))
}

func (m *AuthMiddleware) unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": msg}); err != nil {
		m.logs.Errorw("failed to encode response", "error", err)
	}
}
