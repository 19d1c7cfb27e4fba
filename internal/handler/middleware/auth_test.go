//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"

	"room-booking/internal/domain/user"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/cookie"
	"room-booking/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	tokens map[string]struct {
		id   int64
		role user.Role
	}
}

func (v stubValidator) ValidateToken(token string) (int64, user.Role, error) {
	if t, ok := v.tokens[token]; ok {
		return t.id, t.role, nil
	}
	return 0, "", errors.New("invalid token")
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	validator := stubValidator{tokens: map[string]struct {
		id   int64
		role user.Role
	}{
		"user-token":  {id: 7, role: user.RoleUser},
		"admin-token": {id: 1, role: user.RoleAdmin},
	}}
	auth := middleware.NewAuthMiddleware(validator)

	r := gin.New()
	r.GET("/whoami", auth.RequireAuth(), func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.UserID, "role": string(actor.Role)})
	})
	r.GET("/admin", auth.RequireAuth(), auth.RequireRoleAtLeast(user.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	r := newRouter()

	t.Run("bearer header", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, "user-token")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":7,"role":"user"}`, rec.Body.String())
	})

	t.Run("cookie", func(t *testing.T) {
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "admin-token"}}
		rec := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/whoami", nil, cookies, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":1,"role":"admin"}`, rec.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("invalid token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/whoami", nil, "forged")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	r := newRouter()

	t.Run("admin passes", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, "admin-token")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("user is forbidden", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, "user-token")
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(testLogConfig())
	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("generated when absent", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/ping", nil, "")
		assert.Len(t, rec.Body.String(), 36)
		assert.Equal(t, rec.Body.String(), rec.Header().Get("X-Request-ID"))
	})

	t.Run("propagated when present", func(t *testing.T) {
		req := stdhttptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		rec := stdhttptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, "abc-123", rec.Body.String())
	})
}
