package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/A-Basit02/Disaster-Management-App/internal/domain/models"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/code"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/response"
)

// Gin context keys set by Authenticate
const (
	ContextUser   = "user"
	ContextUserID = "userID"
	ContextRoles  = "roles"
)

// Auth resolves bearer tokens to live users and gates routes by capability
type Auth struct {
	service services.InterfaceAuthService
}

// NewAuth creates the auth middleware
func NewAuth(service services.InterfaceAuthService) *Auth {
	return &Auth{service: service}
}

// extractToken returns the credential of a "Bearer <token>" header
func extractToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Authenticate rejects requests without a valid token. A missing or malformed
// header is 401; a token that fails verification or names a deleted user is 403.
func (a *Auth) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c.GetHeader("Authorization"))
		if !ok {
			response.AbortWithCode(c, code.ErrTokenMissing)
			return
		}

		user, err := a.service.Authenticate(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextUserID, user.ID)
		c.Set(ContextRoles, user.RoleSet())
		c.Next()
	}
}

// Require passes when one of the caller's roles grants the capability
func (a *Auth) Require(capability models.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, ok := CurrentRoles(c)
		if !ok || !roles.Can(capability) {
			response.FailWithMessage(c, code.ErrForbidden, "Access denied. Insufficient permissions.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// CurrentUserID returns the authenticated user's id, or 0
func CurrentUserID(c *gin.Context) uint {
	return c.GetUint(ContextUserID)
}

// CurrentRoles returns the authenticated user's role set
func CurrentRoles(c *gin.Context) (models.RoleSet, bool) {
	v, ok := c.Get(ContextRoles)
	if !ok {
		return nil, false
	}
	roles, ok := v.(models.RoleSet)
	return roles, ok
}
