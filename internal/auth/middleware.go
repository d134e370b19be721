package auth

import (
	"net/http"
	"strconv"
	"strings"

	"beltdash/backend/internal/models"
	"beltdash/backend/internal/service"
	"beltdash/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ClaimsKey = "claims"
	UserIDKey = "userID"
	RoleKey   = "role"
)

// AuthMiddleware verifies the bearer token (signature, issuer, audience,
// expiry) and stores the caller's identity on the request context. A
// missing or invalid token aborts with 401.
func AuthMiddleware(tokens *jwt.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abort(c, "Authentication required.", http.StatusUnauthorized)
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			abort(c, "Invalid or expired token.", http.StatusUnauthorized)
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			abort(c, "Invalid or expired token.", http.StatusUnauthorized)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, userID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// AdminMiddleware allows only callers whose role claim is "admin". It must
// be used after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(RoleKey)
		if !exists {
			abort(c, "Authentication required.", http.StatusUnauthorized)
			return
		}
		if role != models.RoleAdmin {
			abort(c, "Admin access required.", http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// SelfOrAdminMiddleware allows a caller to act on the user identified by
// the named path parameter only when the caller is that user or an admin.
// It must be used after AuthMiddleware.
func SelfOrAdminMiddleware(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, exists := c.Get(UserIDKey)
		if !exists {
			abort(c, "Authentication required.", http.StatusUnauthorized)
			return
		}

		targetID, err := strconv.ParseUint(c.Param(param), 10, 32)
		if err != nil {
			abort(c, "Invalid user ID.", http.StatusBadRequest)
			return
		}

		role, _ := c.Get(RoleKey)
		if role != models.RoleAdmin && callerID.(uint) != uint(targetID) {
			abort(c, "You may only access your own resources.", http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated caller's user ID.
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

func abort(c *gin.Context, message string, statusCode int) {
	c.AbortWithStatusJSON(statusCode, service.Error[any](message, statusCode))
}
