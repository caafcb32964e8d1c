package middleware

import (
	"net/http"

	"parking-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminKey guards the admin surface (pricing config, seeding, ticket audit).
// The caller presents the raw key in X-Admin-Key; only its bcrypt hash is
// ever configured on the server.
func AdminKey(config utils.AdminConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.KeyHash == "" {
				logger.Error("Admin key hash not configured, rejecting admin request",
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access not configured")
				return
			}

			key := r.Header.Get("X-Admin-Key")
			if key == "" {
				utils.ResponseUnauthorized(w, "Missing admin key")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(config.KeyHash), []byte(key)); err != nil {
				logger.Warn("Admin key rejected",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
