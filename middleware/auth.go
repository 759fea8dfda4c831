// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"telecare/models"
	"telecare/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxActorID   = "actorID"
	CtxActorRole = "actorRole"
)

// JWTAuth validates the bearer token and gates the route to the allowed
// roles. An empty allow list admits any authenticated actor.
func JWTAuth(allowed ...models.ActorRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		actorID, role, err := utils.ExtractActorFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if len(allowed) > 0 && !roleAllowed(role, allowed) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "This action is not available for your role"})
			return
		}

		c.Set(CtxActorID, actorID)
		c.Set(CtxActorRole, role)
		c.Next()
	}
}

func roleAllowed(role models.ActorRole, allowed []models.ActorRole) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// Actor returns the authenticated actor ID and role set by JWTAuth.
func Actor(c *gin.Context) (string, models.ActorRole) {
	id, _ := c.Get(CtxActorID)
	role, _ := c.Get(CtxActorRole)
	actorID, _ := id.(string)
	actorRole, _ := role.(models.ActorRole)
	return actorID, actorRole
}
