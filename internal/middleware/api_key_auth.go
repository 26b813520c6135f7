package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/lancarbooks/lancar_backend/internal/core/ports/services"
)

// APIKeyAuth is a middleware that authenticates requests using API keys.
// Requests without an x-api-key header pass through untouched so the JWT
// middleware can handle them.
func APIKeyAuth(apiKeySvc services.APIKeySvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := c.GetHeader("x-api-key")
		if secret == "" {
			c.Next()
			return
		}

		key, err := apiKeySvc.AuthenticateAPIKey(c.Request.Context(), secret)
		if err != nil {
			// Invalid key: fall through so JWT auth can reject the request
			c.Next()
			return
		}

		ctxWithUser := context.WithValue(c.Request.Context(), userIDKey, key.UserID)

		logger := GetLoggerFromCtx(c.Request.Context()).With(
			slog.String("user_id", key.UserID),
			slog.String("api_key_id", key.KeyID),
		)
		ctxWithLoggerAndUser := context.WithValue(ctxWithUser, loggerCtxKey, logger)

		c.Request = c.Request.WithContext(ctxWithLoggerAndUser)
		c.Set(authMethodKey, "api_key")
		c.Next()
	}
}
