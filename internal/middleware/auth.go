package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Prathamahuja/employee-leave-management/internal/models"
)

// Session keys written at login and read by the gates below.
const (
	SessionUserID = "user_id"
	SessionRole   = "role"
	SessionName   = "name"
)

const ctxUserIDKey = "userID"

// RequireAuth rejects requests that do not carry a valid session and puts
// the authenticated user's id into the gin context for the handlers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get(SessionUserID).(uint)
		if !ok || userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Please log in"})
			return
		}
		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

// RequireAdmin rejects authenticated requests whose session role is not
// admin. Must run after RequireAuth so the unauthenticated case is a 401,
// not a 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		role, _ := session.Get(SessionRole).(string)
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden: Admin access required"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id placed in the context by
// RequireAuth. Zero means RequireAuth did not run.
func UserID(c *gin.Context) uint {
	v, _ := c.Get(ctxUserIDKey)
	id, _ := v.(uint)
	return id
}
