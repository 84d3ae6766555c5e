package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shoply/admin-backend/internal/pkg/ctxutil"
	"github.com/shoply/admin-backend/internal/pkg/logger"
	"github.com/shoply/admin-backend/internal/services"
)

const accessTokenCookie = "access_token"

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		log:         log.With("middleware", "AuthMiddleware"),
		authService: authService,
	}
}

// RequireAuth rejects requests without a valid access token and loads the
// admin identity into the request context for the handlers downstream. The
// token may arrive as a Bearer header or as the access_token cookie.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractAccessToken(c)
		if tokenString == "" {
			abortUnauthorized(c)
			return
		}
		claims, err := am.authService.ParseAccessToken(tokenString)
		if err != nil {
			am.log.Debug("access token rejected", "error", err)
			abortUnauthorized(c)
			return
		}
		adminID, err := uuid.Parse(claims.Subject)
		if err != nil || adminID == uuid.Nil {
			abortUnauthorized(c)
			return
		}
		ctx := ctxutil.WithRequestData(c.Request.Context(), &ctxutil.RequestData{
			AdminID: adminID,
			Email:   claims.Email,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{"message": "missing or invalid token", "code": "unauthorized"},
	})
}

func extractAccessToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	if cookie, err := c.Cookie(accessTokenCookie); err == nil && cookie != "" {
		return cookie
	}
	return ""
}
