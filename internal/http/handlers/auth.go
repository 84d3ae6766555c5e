package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoply/admin-backend/internal/http/response"
	"github.com/shoply/admin-backend/internal/services"
)

const (
	accessTokenCookie  = "access_token"
	refreshTokenCookie = "refresh_token"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (ah *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	admin, err := ah.authService.Register(c.Request.Context(), services.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"admin": admin})
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	admin, pair, err := ah.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	ah.setAuthCookies(c, pair)
	response.RespondOK(c, gin.H{
		"admin":         admin,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"expires_in":    int(ah.authService.AccessTTL().Seconds()),
	})
}

func (ah *AuthHandler) Refresh(c *gin.Context) {
	pair, err := ah.authService.Refresh(c.Request.Context(), ah.refreshTokenFrom(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	ah.setAuthCookies(c, pair)
	response.RespondOK(c, gin.H{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"expires_in":    int(ah.authService.AccessTTL().Seconds()),
	})
}

func (ah *AuthHandler) Logout(c *gin.Context) {
	if err := ah.authService.Logout(c.Request.Context(), ah.refreshTokenFrom(c)); err != nil {
		respondDomainError(c, err)
		return
	}
	ah.clearAuthCookies(c)
	response.RespondOK(c, gin.H{"ok": true})
}

func (ah *AuthHandler) GetMe(c *gin.Context) {
	adminID, ok := requestAdmin(c)
	if !ok {
		return
	}
	admin, err := ah.authService.GetAdmin(c.Request.Context(), adminID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"admin": admin})
}

// refreshTokenFrom reads the refresh token from its cookie, falling back to
// a JSON body for clients that keep tokens out of cookies.
func (ah *AuthHandler) refreshTokenFrom(c *gin.Context) string {
	if cookie, err := c.Cookie(refreshTokenCookie); err == nil && cookie != "" {
		return cookie
	}
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err == nil {
		return req.RefreshToken
	}
	return ""
}

func (ah *AuthHandler) setAuthCookies(c *gin.Context, pair services.TokenPair) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessTokenCookie, pair.AccessToken, int(ah.authService.AccessTTL().Seconds()), "/", "", false, true)
	c.SetCookie(refreshTokenCookie, pair.RefreshToken, int(ah.authService.RefreshTTL().Seconds()), "/", "", false, true)
}

func (ah *AuthHandler) clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessTokenCookie, "", -1, "/", "", false, true)
	c.SetCookie(refreshTokenCookie, "", -1, "/", "", false, true)
}
