package session

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Allain-afk/GlamQueue-sub001/internal/domain/role"
)

// ContextKey is where the auth middleware parks the session on the gin
// context.
const ContextKey = "session"

// Session is the explicit per-request identity. It is built once from the
// verified JWT claims and passed down; nothing below the middleware reads
// token state.
type Session struct {
	UserID  uuid.UUID
	SalonID *uuid.UUID
	Role    role.Role
}

// FromContext returns the session set by the auth middleware.
func FromContext(c *gin.Context) (*Session, bool) {
	v, ok := c.Get(ContextKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*Session)
	return sess, ok
}

// MustFromContext is for handlers behind the auth middleware, where a
// missing session is a programming error.
func MustFromContext(c *gin.Context) *Session {
	return c.MustGet(ContextKey).(*Session)
}
