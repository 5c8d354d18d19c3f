package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jonar43/portfolio-api/internal/auth"
	"github.com/jonar43/portfolio-api/internal/middleware"
	"github.com/jonar43/portfolio-api/internal/model"
	"github.com/jonar43/portfolio-api/internal/session"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *session.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)

	store := session.NewMemoryStore()
	store.AddUser(&model.User{
		ID:           "user-1",
		Email:        "admin@portfolio.com",
		Name:         "Jonathan Reyes",
		PasswordHash: hash,
	})

	authHandler := NewAuthHandler(session.NewService(store), testSecret, false)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/me", middleware.AuthMiddleware(testSecret), authHandler.Me)

	return r, store
}

func doLogin(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func refreshCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "refreshToken" {
			return c
		}
	}
	return nil
}

func TestLoginSetsCookieAndReturnsToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doLogin(t, r, `{"email":"admin@portfolio.com","password":"admin123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "admin@portfolio.com", resp.User.Email)
	require.Equal(t, "Jonathan Reyes", resp.User.Name)

	claims, err := auth.ValidateAccessToken(resp.AccessToken, testSecret)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)

	cookie := refreshCookie(t, w)
	require.NotNil(t, cookie, "refreshToken cookie not set")
	require.Len(t, cookie.Value, 128)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, "/", cookie.Path)
	require.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	require.Equal(t, int(auth.RefreshTokenExpiry.Seconds()), cookie.MaxAge)

	// The access token travels only in the body, never as a cookie
	require.NotContains(t, w.Header().Get("Set-Cookie"), resp.AccessToken)
}

func TestLoginMissingFields(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, body := range []string{`{}`, `{"email":"admin@portfolio.com"}`, `{"password":"admin123"}`} {
		w := doLogin(t, r, body)
		require.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

// Unknown email and bad password must produce byte-identical responses.
func TestLoginFailuresIndistinguishable(t *testing.T) {
	r, _ := newTestRouter(t)

	wUnknown := doLogin(t, r, `{"email":"nobody@portfolio.com","password":"admin123"}`)
	wBadPass := doLogin(t, r, `{"email":"admin@portfolio.com","password":"nope"}`)

	require.Equal(t, http.StatusUnauthorized, wUnknown.Code)
	require.Equal(t, http.StatusUnauthorized, wBadPass.Code)
	require.Equal(t, wUnknown.Body.String(), wBadPass.Body.String())
	require.Nil(t, refreshCookie(t, wUnknown))
}

func TestRefreshWithoutCookie(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	login := doLogin(t, r, `{"email":"admin@portfolio.com","password":"admin123"}`)
	cookie := refreshCookie(t, login)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AccessToken string `json:"accessToken"`
		ExpiresIn   int    `json:"expiresIn"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 900, resp.ExpiresIn)

	claims, err := auth.ValidateAccessToken(resp.AccessToken, testSecret)
	require.NoError(t, err)
	require.Equal(t, "admin@portfolio.com", claims.Email)

	// The refresh cookie is left untouched
	require.Nil(t, refreshCookie(t, w))
}

func TestRefreshWithExpiredToken(t *testing.T) {
	r, store := newTestRouter(t)

	require.NoError(t, store.CreateRefreshToken(context.Background(), &model.RefreshToken{
		UserID:    "user-1",
		Token:     "expired-token",
		ExpiresAt: time.Now().Add(-1 * time.Hour),
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "expired-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "refresh token expired")
}

func TestLogoutAlwaysSucceedsAndClearsCookie(t *testing.T) {
	r, _ := newTestRouter(t)

	// Without any cookie
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Full cycle: login, logout, then the old token must be rejected
	login := doLogin(t, r, `{"email":"admin@portfolio.com","password":"admin123"}`)
	cookie := refreshCookie(t, login)
	require.NotNil(t, cookie)

	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	cleared := refreshCookie(t, w)
	require.NotNil(t, cleared)
	require.Empty(t, cleared.Value)
	require.Less(t, cleared.MaxAge, 0)

	req = httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "invalid refresh token")
}

func TestMeRequiresBearerToken(t *testing.T) {
	r, _ := newTestRouter(t)

	// No header
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Not a bearer scheme
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Basic abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Expired token
	claims := auth.Claims{
		UserID: "user-1",
		Email:  "admin@portfolio.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeReturnsCurrentUser(t *testing.T) {
	r, _ := newTestRouter(t)

	login := doLogin(t, r, `{"email":"admin@portfolio.com","password":"admin123"}`)
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &resp))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "admin@portfolio.com")
	require.Contains(t, w.Body.String(), "Jonathan Reyes")
	require.NotContains(t, w.Body.String(), "passwordHash")
}
