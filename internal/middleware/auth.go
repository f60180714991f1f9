package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/proconnect-api/internal/apperr"
	"github.com/harentsoaR/proconnect-api/internal/auth"
	"github.com/harentsoaR/proconnect-api/internal/models"
	"github.com/harentsoaR/proconnect-api/internal/response"
)

const (
	ctxClaims = "authClaims"
	ctxUser   = "currentUser"
)

// UserFinder re-fetches a user record during authentication. Satisfied by the
// identity service's user store.
type UserFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	return token, token != ""
}

// RequireAuth verifies the bearer credential and attaches its claims to the
// request context. It trusts the token's embedded claims without a store
// lookup, which is the gate every service except identity uses.
func RequireAuth(codec *auth.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Failure(c, nil, apperr.ErrAuthRequired)
			return
		}
		claims, err := codec.Verify(token)
		if err != nil {
			response.Failure(c, nil, apperr.ErrInvalidToken)
			return
		}
		c.Set(ctxClaims, claims)
		c.Next()
	}
}

// RequireUser is the identity service's stronger gate: after verifying the
// credential it re-fetches the user record, rejecting tokens whose subject no
// longer exists. Identity is authoritative over user existence; other
// services are not.
func RequireUser(codec *auth.Codec, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Failure(c, nil, apperr.ErrAuthRequired)
			return
		}
		claims, err := codec.Verify(token)
		if err != nil {
			response.Failure(c, nil, apperr.ErrInvalidToken)
			return
		}
		id, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			response.Failure(c, nil, apperr.ErrInvalidToken)
			return
		}
		user, err := users.FindByID(c.Request.Context(), id)
		if err != nil {
			response.Failure(c, nil, apperr.ErrUserNotFound)
			return
		}
		c.Set(ctxClaims, claims)
		c.Set(ctxUser, user)
		c.Next()
	}
}

// RequireRoles rejects authenticated identities whose role is outside the
// permitted set. It must run after RequireAuth or RequireUser.
func RequireRoles(roles ...auth.Role) gin.HandlerFunc {
	permitted := auth.NewRoleSet(roles...)
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			response.Failure(c, nil, apperr.ErrAuthRequired)
			return
		}
		if !permitted.Contains(claims.Role) {
			response.Failure(c, nil, apperr.ErrForbidden)
			return
		}
		c.Next()
	}
}

// ClaimsFrom returns the verified claims attached by an auth gate.
func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ctxClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// UserFrom returns the re-fetched user attached by RequireUser.
func UserFrom(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ctxUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
