package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID in the
// request context; isAdminKey holds the token's admin claim.
const (
	userIDKey  = contextKey("userID")
	isAdminKey = contextKey("isAdmin")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID, ok := c.Request.Context().Value(userIDKey).(string); ok {
		return userID, true
	}
	return "", false
}

// GetIsAdminFromContext retrieves the admin flag of the authenticated user
// from the Gin context. It returns the flag and a boolean indicating if it
// was found.
func GetIsAdminFromContext(c *gin.Context) (bool, bool) {
	if isAdmin, ok := c.Request.Context().Value(isAdminKey).(bool); ok {
		return isAdmin, true
	}
	return false, false
}
