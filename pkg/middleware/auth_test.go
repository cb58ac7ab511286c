package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"imersao-completa/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	token, _, _ := jwtService.GenerateToken("user-123", "ana@example.com")

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id"), "email": c.GetString("user_email")})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"user-123","email":"ana@example.com"}`, w.Body.String())
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WebSocketQueryToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	token, _, _ := jwtService.GenerateToken("user-123", "ana@example.com")

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService))
	router.GET("/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/live?token="+token, nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Plain requests must still use the header.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/live?token="+token, nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidFormat(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "InvalidFormat token")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

type stubResolver struct {
	roles []string
	err   error
}

func (s stubResolver) ResolveRoles(ctx context.Context, userID string) ([]string, error) {
	return s.roles, s.err
}

func roleRouter(resolver RoleResolver, allowed ...string) *gin.Engine {
	router := setupTestRouter()
	router.Use(func(c *gin.Context) {
		if id := c.GetHeader("X-User"); id != "" {
			c.Set("user_id", id)
		}
		c.Next()
	})
	router.Use(RequireRoles(resolver, allowed...))
	router.GET("/admin", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		resolver stubResolver
		allowed  []string
		want     int
	}{
		{name: "admin allowed", user: "u1", resolver: stubResolver{roles: []string{"admin"}}, allowed: []string{"admin"}, want: http.StatusOK},
		{name: "admin passes editor gate", user: "u1", resolver: stubResolver{roles: []string{"admin"}}, allowed: []string{"admin", "editor"}, want: http.StatusOK},
		{name: "editor blocked from admin", user: "u2", resolver: stubResolver{roles: []string{"editor"}}, allowed: []string{"admin"}, want: http.StatusForbidden},
		{name: "no roles", user: "u3", resolver: stubResolver{}, allowed: []string{"editor"}, want: http.StatusForbidden},
		{name: "anonymous", resolver: stubResolver{roles: []string{"admin"}}, allowed: []string{"admin"}, want: http.StatusUnauthorized},
		{name: "resolver failure", user: "u1", resolver: stubResolver{err: errors.New("db down")}, allowed: []string{"admin"}, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := roleRouter(tt.resolver, tt.allowed...)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/admin", nil)
			if tt.user != "" {
				req.Header.Set("X-User", tt.user)
			}

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
