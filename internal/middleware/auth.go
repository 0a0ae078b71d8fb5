package middleware

import (
	"net/http"
	"strings"

	"github.com/catalys/platform/internal/models"
	"github.com/catalys/platform/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware validates JWT tokens
func AuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// Set user info in context
		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userType", claims.UserType)

		c.Next()
	}
}

// RequireUserType ensures the user has one of the given classifications
func RequireUserType(types ...models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType, exists := c.Get("userType")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		current := userType.(models.UserType)
		for _, t := range types {
			if current == t {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		c.Abort()
	}
}

// RequireFounder ensures the user is a founder
func RequireFounder() gin.HandlerFunc {
	return RequireUserType(models.UserTypeFounder)
}

// RequireInvestor ensures the user is an investor
func RequireInvestor() gin.HandlerFunc {
	return RequireUserType(models.UserTypeInvestor)
}

// GetUserID extracts user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}
	return userID.(uuid.UUID), true
}

// GetUserType extracts the founder/investor classification from context
func GetUserType(c *gin.Context) (models.UserType, bool) {
	userType, exists := c.Get("userType")
	if !exists {
		return "", false
	}
	return userType.(models.UserType), true
}
