package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/pkg/cookie"
	"travel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxActorKey = "actor"

var roleHierarchy = map[user.Role]int{
	user.RoleUser:  1,
	user.RoleGuide: 2,
	user.RoleAdmin: 3,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortJSON(c, http.StatusUnauthorized, "Access token required")
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			abortJSON(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

// cookie first, then the Authorization header
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func hasMinimumRole(userRole, minRole user.Role) bool {
	userLevel, userExists := roleHierarchy[userRole]
	minLevel, minExists := roleHierarchy[minRole]
	return userExists && minExists && userLevel >= minLevel
}

// RequireRoleAtLeast must be chained after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			abortJSON(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		if !hasMinimumRole(actor.Role, minRole) {
			abortJSON(c, http.StatusForbidden, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

func abortJSON(c *gin.Context, status int, msg string) {
	resp := httperr.Response{Status: status}
	resp.Error.Message = msg
	c.AbortWithStatusJSON(status, resp)
}

func GetActor(c *gin.Context) (user.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return user.Actor{}, false
	}

	actor, ok := v.(user.Actor)
	return actor, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	actor, ok := GetActor(c)
	if !ok {
		return uuid.Nil, false
	}
	return actor.ID, true
}
