package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Allain-afk/GlamQueue-sub001/internal/config"
	"github.com/Allain-afk/GlamQueue-sub001/internal/domain/role"
	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
	"github.com/Allain-afk/GlamQueue-sub001/internal/session"
)

// Auth verifies the Bearer JWT and parks the resulting Session on the gin
// context. Everything behind it reads identity from the session only.
func Auth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "invalid_token", "Missing authorization header.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_token", "Malformed authorization header.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Invalid or expired token.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token", "Invalid token claims.")
			c.Abort()
			return
		}

		sess, err := sessionFromClaims(claims)
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Invalid token payload.")
			c.Abort()
			return
		}

		c.Set(session.ContextKey, sess)
		c.Next()
	}
}

// sessionFromClaims rebuilds the session from the claims the auth handler
// wrote: sub and salon_id are uuid strings, role is the role name.
// salon_id is absent for clients.
func sessionFromClaims(claims jwt.MapClaims) (*session.Session, error) {
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_token")
	}

	roleName, _ := claims["role"].(string)
	r, err := role.Parse(roleName)
	if err != nil {
		return nil, err
	}

	sess := &session.Session{
		UserID: userID,
		Role:   r,
	}

	if raw, ok := claims["salon_id"].(string); ok && raw != "" {
		salonID, err := uuid.Parse(raw)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_token")
		}
		sess.SalonID = &salonID
	}

	return sess, nil
}
