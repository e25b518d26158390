package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/omph-chaplaincy/parish-core/internal/models"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/jwt"
	"github.com/omph-chaplaincy/parish-core/internal/pkg/response"
	"gorm.io/gorm"
)

const (
	ContextKeyUserID = "user_id"
	ContextKeyRole   = "user_role"
)

// Auth returns a middleware that enforces JWT authentication. The role
// is re-read from the users table so revoked accounts and demotions
// take effect immediately.
func Auth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, err := validateRequest(db, c)
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyRole, role)
		c.Next()
	}
}

// OptionalAuth sets the user identity if a valid token is present, but
// does not block the request.
func OptionalAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, role, err := validateRequest(db, c); err == nil {
			c.Set(ContextKeyUserID, userID)
			c.Set(ContextKeyRole, role)
		}
		c.Next()
	}
}

// RequireRole blocks requests whose authenticated role ranks below the
// required role. Must run after Auth.
func RequireRole(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !models.RoleAtLeast(CurrentRole(c), required) {
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

func validateRequest(db *gorm.DB, c *gin.Context) (userID, role string, err error) {
	token := NormalizeToken(extractToken(c))
	if token == "" {
		return "", "", errors.New("token is required")
	}
	claims, err := jwt.Parse(token)
	if err != nil {
		return "", "", err
	}

	var user models.UserModel
	if err := db.Select("id", "role").First(&user, "id = ?", claims.UserID).Error; err != nil {
		return "", "", err
	}
	return user.ID, user.Role, nil
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}

// CurrentRole extracts the authenticated role from context.
func CurrentRole(c *gin.Context) string {
	v, _ := c.Get(ContextKeyRole)
	role, _ := v.(string)
	return role
}

// IsAuthenticated returns true if the request has a valid auth token.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUserID(c) != ""
}

func extractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		return auth
	}
	return c.Query("token")
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
