package middleware

import (
	"os"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers so the browser front end can talk to
// the API from a different origin.
//
// SECURITY: strict about allowed origins:
// - Production: only the configured front-end origin
// - Development: localhost origins (disabled in release mode)
func CORSMiddleware(frontendURL string) gin.HandlerFunc {
	isProduction := os.Getenv("GIN_MODE") == "release"

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		allowed := map[string]bool{
			frontendURL: true,
		}
		devOrigins := map[string]bool{
			"http://localhost:3000": true,
			"http://127.0.0.1:3000": true,
			"http://localhost:5173": true,
		}

		var isAllowed bool
		if allowed[origin] {
			isAllowed = true
		}
		if !isProduction && devOrigins[origin] {
			isAllowed = true
		}
		// Empty origin (same-origin or non-browser clients) - allow
		if origin == "" {
			isAllowed = true
		}

		// Only set headers if origin is allowed; otherwise the browser
		// blocks the request.
		if isAllowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, PATCH")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		// Handle preflight requests
		if c.Request.Method == "OPTIONS" {
			if isAllowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}
