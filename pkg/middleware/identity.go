package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sabrinafayremeyer/EventEase/pkg/response"
)

const (
	// ContextKeyUserID is the gin context key for the authenticated user
	ContextKeyUserID = "user_id"
	// ContextKeyRole is the gin context key for the user's role
	ContextKeyRole = "role"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims are the identity claims carried by staff tokens
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTConfig configures token verification
type JWTConfig struct {
	Secret string
	Issuer string
	// Optional lets anonymous requests through. A token that is present
	// must still verify.
	Optional  bool
	SkipPaths []string
}

// JWTMiddleware verifies an HS256 bearer token and stores the caller's identity
func JWTMiddleware(config *JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, path := range config.SkipPaths {
			if matchPath(c.Request.URL.Path, path) {
				c.Next()
				return
			}
		}

		raw, err := bearerToken(c.GetHeader("Authorization"))
		if errors.Is(err, ErrMissingToken) && config.Optional {
			c.Next()
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized(err.Error()))
			return
		}

		claims, err := ParseToken(raw, config.Secret, config.Issuer)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("Invalid or expired token"))
			return
		}

		c.Set(ContextKeyUserID, claims.identity())
		if claims.Role != "" {
			c.Set(ContextKeyRole, claims.Role)
		}
		c.Next()
	}
}

// ParseToken verifies a signed token and returns its claims
func ParseToken(raw, secret, issuer string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.identity() == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// identity prefers the explicit user_id claim over the subject
func (c *Claims) identity() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Subject
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", ErrInvalidToken
	}
	return strings.TrimSpace(parts[1]), nil
}

// GetUserID returns the authenticated user ID, if any
func GetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextKeyUserID)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// GetRole returns the authenticated user's role, if any
func GetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextKeyRole)
	if !exists {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}
