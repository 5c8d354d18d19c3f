package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jonar43/portfolio-api/internal/auth"
	"github.com/jonar43/portfolio-api/internal/middleware"
	"github.com/jonar43/portfolio-api/internal/session"
)

// The refresh token travels only in this HTTP-only cookie; the access token
// travels in the response body and comes back as a bearer credential.
const refreshCookieName = "refreshToken"

type AuthHandler struct {
	sessions  *session.Service
	jwtSecret string
	secure    bool
}

func NewAuthHandler(sessions *session.Service, jwtSecret string, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		sessions:  sessions,
		jwtSecret: jwtSecret,
		secure:    secureCookies,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string              `json:"accessToken"`
	ExpiresIn   int                 `json:"expiresIn"`
	User        session.UserSummary `json:"user"`
}

// statusForSessionError is the explicit error-to-status table for the
// session service's typed failures.
func statusForSessionError(err error) (int, string) {
	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, session.ErrInvalidRefreshToken):
		return http.StatusUnauthorized, "invalid refresh token"
	case errors.Is(err, session.ErrRefreshTokenExpired):
		return http.StatusUnauthorized, "refresh token expired"
	case errors.Is(err, session.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// Login verifies credentials, sets the refresh cookie and returns a fresh
// access token in the body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	result, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.RecordLogin(false)
		status, msg := statusForSessionError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	accessToken, err := auth.GenerateAccessToken(result.User.ID, result.User.Email, h.jwtSecret)
	if err != nil {
		log.Printf("Failed to generate access token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.setRefreshCookie(c, result.RefreshToken, int(auth.RefreshTokenExpiry.Seconds()))
	middleware.RecordLogin(true)

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: accessToken,
		ExpiresIn:   int(auth.AccessTokenExpiry.Seconds()),
		User:        result.User,
	})
}

// Refresh mints a new access token from the refresh cookie. The cookie is
// left untouched: the same opaque token stays valid until its original
// expiry or logout.
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, err := c.Cookie(refreshCookieName)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no refresh token provided"})
		return
	}

	user, err := h.sessions.Refresh(c.Request.Context(), token)
	if err != nil {
		status, msg := statusForSessionError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	accessToken, err := auth.GenerateAccessToken(user.ID, user.Email, h.jwtSecret)
	if err != nil {
		log.Printf("Failed to generate access token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": accessToken,
		"expiresIn":   int(auth.AccessTokenExpiry.Seconds()),
	})
}

// Logout deletes the stored token (no-op tolerated) and clears the cookie.
// It never fails visibly: the client ends up logged out either way.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(refreshCookieName); err == nil {
		if err := h.sessions.Logout(c.Request.Context(), token); err != nil {
			log.Printf("Failed to delete refresh token: %v", err)
		}
	}

	h.setRefreshCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

// Me returns the current user's summary.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.sessions.GetUser(c.Request.Context(), userID)
	if err != nil {
		status, msg := statusForSessionError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(refreshCookieName, value, maxAge, "/", "", h.secure, true)
}
