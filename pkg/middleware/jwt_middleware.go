package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"pressmatch/pkg/utils"
)

func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Pass user information to the next handler
		c.Set("user_id", claims.UserID)
		c.Set("user_type", claims.UserType)
		c.Next()
	}
}

// RequireUserType gates an endpoint to one side of the platform.
// Companies search for journalists, journalists search for companies.
func RequireUserType(userType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_type") != userType {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
