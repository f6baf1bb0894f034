package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/middleware"
	"backoffice/internal/tenant"
)

var secret = []byte("test-secret")

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestRequireTenant(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tenantID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid token", header: "Bearer " + sign(t, jwt.MapClaims{"tenant_id": tenantID.String(), "sub": userID.String()}), wantStatus: http.StatusOK},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token abc", wantStatus: http.StatusUnauthorized},
		{name: "no tenant claim", header: "Bearer " + sign(t, jwt.MapClaims{"sub": userID.String()}), wantStatus: http.StatusUnauthorized},
		{name: "nil tenant claim", header: "Bearer " + sign(t, jwt.MapClaims{"tenant_id": uuid.Nil.String()}), wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/api/protected", middleware.RequireTenant(secret), func(c *gin.Context) {
				got, ok := tenant.FromContext(c.Request.Context())
				assert.True(t, ok)
				assert.Equal(t, tenantID, got)

				user := tenant.UserFromContext(c.Request.Context())
				require.NotNil(t, user)
				assert.Equal(t, userID, *user)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestParseToken_RejectsOtherSecret(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"tenant_id": uuid.NewString()}).SignedString([]byte("other"))
	require.NoError(t, err)

	_, err = middleware.ParseToken(token, secret)
	assert.Error(t, err)
}
