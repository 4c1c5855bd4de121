package middleware

import "github.com/gin-gonic/gin"

// sessionIDKey is the key used to store the authenticated session's ID.
const sessionIDKey = contextKey("sessionID")

// GetSessionIDFromContext retrieves the authenticated session ID from the Gin context.
// It returns the session ID and a boolean indicating if it was found.
func GetSessionIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(sessionIDKey)); exists {
		sessionID, ok := v.(string)
		return sessionID, ok
	}
	// check in the request context as well
	if v, ok := c.Request.Context().Value(sessionIDKey).(string); ok {
		return v, true
	}
	return "", false
}
