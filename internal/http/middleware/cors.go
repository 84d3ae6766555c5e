package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured admin frontend origin plus the usual local dev
// ports. Credentials stay enabled so the auth cookies survive cross-origin
// requests.
func CORS(clientOrigin string) gin.HandlerFunc {
	origins := []string{
		"http://localhost:80",
		"http://localhost:3000",
		"http://localhost:5174",
		"http://localhost:5173",
		"http://127.0.0.1:80",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5174",
		"http://127.0.0.1:5173",
	}
	clientOrigin = strings.TrimSpace(clientOrigin)
	if clientOrigin != "" {
		seen := false
		for _, o := range origins {
			if o == clientOrigin {
				seen = true
				break
			}
		}
		if !seen {
			origins = append(origins, clientOrigin)
		}
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-Request-Id", "X-Trace-Id"},
		AllowCredentials: true,
	})
}
