package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret-key-32-characters")

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuth(testSecret)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"tenant": TenantID(c)})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestJWTAuthExtractsTenantScope(t *testing.T) {
	router := protectedRouter()

	token := signToken(t, jwt.MapClaims{
		"uid":       "user-1",
		"tenant_id": "tenant-1",
		"role":      "admin",
		"exp":       time.Now().Add(time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tenant-1")
}

func TestJWTAuthRejectsBadTokens(t *testing.T) {
	router := protectedRouter()

	expired := signToken(t, jwt.MapClaims{
		"uid": "user-1", "tenant_id": "tenant-1", "role": "admin",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	missingTenant := signToken(t, jwt.MapClaims{
		"uid": "user-1", "role": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	unknownRole := signToken(t, jwt.MapClaims{
		"uid": "user-1", "tenant_id": "tenant-1", "role": "superuser",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expired},
		{"missing tenant claim", "Bearer " + missingTenant},
		{"unknown role", "Bearer " + unknownRole},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	router := protectedRouter(RequireRole("admin"))

	adminToken := signToken(t, jwt.MapClaims{
		"uid": "user-1", "tenant_id": "tenant-1", "role": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	staffToken := signToken(t, jwt.MapClaims{
		"uid": "user-2", "tenant_id": "tenant-1", "role": "staff",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+staffToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTenantIDWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, TenantID(c))
}
