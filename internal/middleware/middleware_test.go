package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ewaste_backend/internal/model"
	"ewaste_backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append([]gin.HandlerFunc{JWTAuthMiddleware(utils.NewJWTUtil(secret, 1))}, extra...)
	chain = append(chain, func(c *gin.Context) {
		id, _ := AuthUserID(c)
		role, _ := c.Get(AuthRoleKey)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})
	r.GET("/protected", chain...)
	return r
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	r := newProtectedRouter()
	token, err := utils.NewJWTUtil(secret, 1).GenerateToken("u1", model.RoleUser)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{"missing header", "", http.StatusUnauthorized, "Authorization header required"},
		{"no scheme", token, http.StatusUnauthorized, "Invalid authorization header format"},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized, "Invalid authorization header format"},
		{"empty token", "Bearer ", http.StatusUnauthorized, "Invalid authorization header format"},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized, "Invalid or expired token"},
		{"valid", "Bearer " + token, http.StatusOK, ""},
		{"lowercase scheme", "bearer " + token, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.header)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.JSONEq(t, `{"error":"`+tt.wantError+`"}`, w.Body.String())
			} else {
				assert.JSONEq(t, `{"id":"u1","role":"user"}`, w.Body.String())
			}
		})
	}
}

func TestJWTAuthMiddleware_ExpiredAndForeignTokens(t *testing.T) {
	r := newProtectedRouter()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, utils.JWTClaims{
		UserID: "u1",
		Role:   model.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	expiredToken, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+expiredToken).Code)

	foreign, err := utils.NewJWTUtil("someone-elses-secret", 1).GenerateToken("u1", model.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+foreign).Code)
}

func TestAdminMiddleware(t *testing.T) {
	r := newProtectedRouter(AdminMiddleware())
	ju := utils.NewJWTUtil(secret, 1)

	adminToken, err := ju.GenerateToken("a1", model.RoleAdmin)
	require.NoError(t, err)
	userToken, err := ju.GenerateToken("u1", model.RoleUser)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(r, "Bearer "+adminToken).Code)
	assert.Equal(t, http.StatusForbidden, get(r, "Bearer "+userToken).Code)
}

func TestRoleMiddleware_WithoutAuth(t *testing.T) {
	r := gin.New()
	r.GET("/protected", RoleMiddleware(model.RoleUser), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := get(r, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequestLogger_PropagatesRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) {
		id, _ := c.Get(RequestIDKey)
		c.String(http.StatusOK, id.(string))
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())
}
