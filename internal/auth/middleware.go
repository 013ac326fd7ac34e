package auth

import (
	"context"
	"net/http"
	"strings"

	apperrors "aircraft-factory-backend/internal/errors"
	"aircraft-factory-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Gin context keys set by RequireAuth
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextClaims   = "auth_claims"
)

// TokenValidator validates bearer tokens
type TokenValidator interface {
	ValidateJWT(tokenString string) (*AuthClaims, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	validator TokenValidator
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

// RequireAuth validates JWT tokens and sets the acting user on the request
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthenticated(c, apperrors.ErrMissingToken)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			abortUnauthenticated(c, apperrors.NewAuthenticationError("invalid authorization header format"))
			return
		}

		claims, err := m.validator.ValidateJWT(tokenString)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Debug("Rejected bearer token")
			abortUnauthenticated(c, apperrors.ErrInvalidToken)
			return
		}

		// ValidateJWT guarantees a parseable subject
		userID, _ := claims.UserID()
		c.Set(ContextUserID, userID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextClaims, claims)

		ctx := context.WithValue(c.Request.Context(), logger.UserIDKey, userID.String())
		ctx = context.WithValue(ctx, logger.UsernameKey, claims.Username)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": err.Error(),
		"code":  apperrors.CodeUnauthenticated,
	})
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUsername is a helper function to extract username from context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(ContextUsername)
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}
