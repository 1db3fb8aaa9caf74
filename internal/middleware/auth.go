package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/citycare/mydoctor-api/internal/models"
	"github.com/citycare/mydoctor-api/internal/session"
	"github.com/citycare/mydoctor-api/internal/utils"
)

// Context keys set by Authenticate for handlers to read.
const (
	CtxSubjectID   = "subjectID"
	CtxSubjectType = "subjectType"
	CtxRole        = "userRole"
)

// Authenticate guards the JSON API. Browser clients are identified by the
// session cookie set; non-browser clients may instead present the bearer
// token minted at login.
func Authenticate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := utils.ValidateJWT(secret, tokenString)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
				return
			}
			c.Set(CtxSubjectID, claims.SubjectID)
			c.Set(CtxSubjectType, claims.SubjectType)
			c.Set(CtxRole, claims.Role)
			c.Next()
			return
		}

		if s, ok := session.FromRequest(c.Request); ok {
			c.Set(CtxSubjectID, s.SubjectID)
			c.Set(CtxSubjectType, s.SubjectType)
			c.Set(CtxRole, s.Role)
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	}
}

// RequireRoles restricts a route to the given roles. Must run after
// Authenticate.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := c.GetString(CtxRole)
		for _, r := range roles {
			if current == string(r) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}
