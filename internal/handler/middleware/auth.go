package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"service-broker/internal/domain/user"
	"service-broker/internal/handler/httperr"
	"service-broker/internal/pkg/cookie"
	"service-broker/internal/pkg/errs"
	"service-broker/internal/usecase"
	"service-broker/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	ErrMissingToken  = errs.Wrap(errs.ErrUnauthorized, "access token required")
	ErrMissingActor  = errs.New("RequireRole used without RequireAuth")
	ErrRoleForbidden = errs.Wrap(errs.ErrForbidden, "role not permitted for this route")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxActorKey  = "actor"
	ctxClaimsKey = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, ErrMissingToken, "Access token required", nil)
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

// RequireRole admits only the listed roles. Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, ErrMissingActor, "Internal server error", nil)
			return
		}
		if !slices.Contains(roles, actor.Role) {
			httperr.AbortWithError(c, http.StatusForbidden, ErrRoleForbidden, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

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

// SetActor stores the caller identity; the logging middleware reads the claims copy.
func SetActor(c *gin.Context, actor shared.Actor) {
	c.Set(ctxActorKey, actor)
	claims := map[string]any{
		"user_id": actor.UserID.String(),
		"role":    string(actor.Role),
	}
	if actor.AgencyID != nil {
		claims["agency_id"] = actor.AgencyID.String()
	}
	c.Set(ctxClaimsKey, claims)
}

func GetActor(c *gin.Context) (shared.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return shared.Actor{}, false
	}
	actor, ok := v.(shared.Actor)
	return actor, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	actor, ok := GetActor(c)
	if !ok {
		return uuid.Nil, false
	}
	return actor.UserID, true
}
