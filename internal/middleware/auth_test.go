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

	"github.com/autoservehq/autoserve-api/internal/config"
)

const testSecret = "test-secret"

func testRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: testSecret}
	r := gin.New()

	handlers := []gin.HandlerFunc{AuthMiddleware(cfg)}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := c.Get(ContextUserID)
		ut, _ := c.Get(ContextUserType)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "user_type": ut})
	})

	r.GET("/secure", handlers...)
	return r
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":      float64(42),
		"userType": "car_owner",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
}

func doSecure(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	w := doSecure(testRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing_authorization_header")
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	w := doSecure(testRouter(), "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_authorization_header")
}

func TestAuthMiddlewareBadSignature(t *testing.T) {
	token := signToken(t, "other-secret", validClaims())
	w := doSecure(testRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_token")
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()

	token := signToken(t, testSecret, claims)
	w := doSecure(testRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMissingClaims(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": float64(42),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	w := doSecure(testRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_token_payload")
}

func TestAuthMiddlewareSetsIdentity(t *testing.T) {
	token := signToken(t, testSecret, validClaims())
	w := doSecure(testRouter(), "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), `"user_type":"car_owner"`)
}

func TestRequireUserType(t *testing.T) {
	token := signToken(t, testSecret, validClaims())

	owner := doSecure(testRouter(RequireUserType("car_owner")), "Bearer "+token)
	assert.Equal(t, http.StatusOK, owner.Code)

	provider := doSecure(testRouter(RequireUserType("service_provider")), "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, provider.Code)
	assert.Contains(t, provider.Body.String(), "wrong_account_type")
}
