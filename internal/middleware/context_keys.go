package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated account's ID in the
// request context.
const userIDKey = contextKey("userID")

// GetAccountIDFromContext retrieves the authenticated account ID from the Gin
// context. It returns the account ID and a boolean indicating if it was found.
func GetAccountIDFromContext(c *gin.Context) (string, bool) {
	if accountIDVal := c.Request.Context().Value(userIDKey); accountIDVal != nil {
		accountID, ok := accountIDVal.(string)
		return accountID, ok
	}
	return "", false
}
