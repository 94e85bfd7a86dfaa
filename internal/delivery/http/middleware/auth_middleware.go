package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves a bearer token to a persisted user before any
// handler logic runs. Expired and forged tokens both fail with the same
// 401; the distinction is only logged.
func AuthMiddleware(tokens *auth.Manager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			logger.Log.Debug("Token validation failed", "error", err)
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		// Fetch the user from the DB rather than trusting the token role:
		// the claim may be stale, and a deleted account must not pass.
		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.Subject)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)

		// Usecases read identity from the request context, so mirror the
		// gin keys there.
		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, domain.KeyUserID, user.ID)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, user.Email)
		ctx = context.WithValue(ctx, domain.KeyUserRole, user.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
