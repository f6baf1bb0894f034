package middleware

import (
	"net/http"
	"strings"

	"backoffice/internal/tenant"
	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the subset of the access token the back office relies on.
type Claims struct {
	TenantID uuid.UUID
	UserID   uuid.UUID // uuid.Nil when the token carries no usable subject
}

// ParseToken validates an HMAC-signed token and extracts the tenant and user.
func ParseToken(tokenString string, secret []byte) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return Claims{}, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, jwt.ErrTokenInvalidClaims
	}

	raw, _ := mapClaims["tenant_id"].(string)
	tenantID, err := uuid.Parse(raw)
	if err != nil || tenantID == uuid.Nil {
		return Claims{}, jwt.ErrTokenInvalidClaims
	}

	claims := Claims{TenantID: tenantID}
	if sub, err := mapClaims.GetSubject(); err == nil {
		if userID, err := uuid.Parse(sub); err == nil {
			claims.UserID = userID
		}
	}
	return claims, nil
}

// RequireTenant validates the JWT and scopes the request context to the tenant it names.
// Handlers read it back through tenant.Require.
func RequireTenant(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Try cookie first, fallback to Authorization header
		tokenString, cookieErr := c.Cookie("access_token")
		if cookieErr != nil || tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid authorization format. Expected 'Bearer <token>'"))
				return
			}
			tokenString = parts[1]
		}

		claims, err := ParseToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token: "+err.Error()))
			return
		}

		ctx := tenant.WithTenant(c.Request.Context(), claims.TenantID)
		if claims.UserID != uuid.Nil {
			ctx = tenant.WithUser(ctx, claims.UserID)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
