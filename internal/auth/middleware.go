package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// RequireAuth verifies a Bearer JWT (HS256) and injects "user_id" into the context.
// It returns 401 on missing/invalid token; 403 on claim validation failure.
func RequireAuth(secret, issuer, audience string) gin.HandlerFunc {
	if secret == "" {
		// Fail fast at startup: misconfiguration.
		panic("JWT secret is required for RequireAuth middleware")
	}

	return func(c *gin.Context) {
		// 1) Extract Bearer token
		authz := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erro": "token ausente"})
			return
		}
		raw := strings.TrimSpace(authz[len("Bearer "):])
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erro": "token ausente"})
			return
		}

		// 2) Parse + verify signature (HS256 only) and validate registered claims
		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(
			raw,
			claims,
			func(t *jwt.Token) (any, error) {
				// Enforce HS256
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secret), nil
			},
			jwt.WithLeeway(30*time.Second),
			jwt.WithIssuer(issuer),
			jwt.WithAudience(audience),
		)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erro": "token inválido"})
			return
		}

		// 3) Basic subject sanity check (expect a UUID v4 user id)
		if claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"erro": "subject inválido"})
			return
		}
		if id, err := uuid.Parse(claims.Subject); err != nil || id.Version() != 4 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"erro": "subject inválido"})
			return
		}

		// 4) Propagate identity to handlers
		c.Set("user_id", claims.Subject)

		c.Next()
	}
}
