package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/you/attendsvc/domain"
)

// CurrentUserKey is the gin context key holding the authenticated *domain.User.
const CurrentUserKey = "current_user"

// AuthMiddleware creates authentication middleware. It validates the
// bearer token, loads the account behind it and rejects tokens whose
// account was deactivated after issuance.
func AuthMiddleware(tokenSvc domain.TokenService, userRepo domain.UserRepository) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Check Bearer token format
		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		token := tokenParts[1]

		// Validate token
		claims, err := tokenSvc.ValidateToken(token)
		if err != nil {
			switch err {
			case domain.ErrTokenExpired:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			case domain.ErrTokenInvalid, domain.ErrTokenMalformed:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token validation failed"})
			}
			c.Abort()
			return
		}

		// Load the account; a valid token for a deleted or deactivated
		// account must not pass.
		user, err := userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil || user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
			c.Abort()
			return
		}
		if !user.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account is inactive"})
			c.Abort()
			return
		}

		// Set user information in context
		c.Set(CurrentUserKey, user)
		c.Set("user_id", fmt.Sprintf("%d", user.ID)) // string for Casbin compatibility
		c.Set("user_role", user.Role)

		// Continue to next handler
		c.Next()
	})
}

// CurrentUser pulls the authenticated user placed in the context by
// AuthMiddleware. The boolean is false when the middleware did not run.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*domain.User)
	return user, ok
}
