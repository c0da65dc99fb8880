package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"newshub-backend/auth"

	"github.com/gin-gonic/gin"
)

const identityContextKey = "identity"

// RequireAuth rejects requests without a bearer token (401) or with one the
// verifier refuses (403). The protected handler never runs in either case.
func RequireAuth(verifier auth.TokenVerifier, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Warn("token verification failed", "error", err)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid token"})
			return
		}

		c.Set(identityContextKey, identity)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
