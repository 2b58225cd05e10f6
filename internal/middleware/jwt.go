package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"teranga_match/internal/models"
)

const (
	ctxUserID = "user_id"
	ctxEmail  = "email"
	ctxRole   = "role"
)

var (
	mu     sync.RWMutex
	secret = []byte("supersecret")
	ttl    = 72 * time.Hour
)

// Configure sets the signing secret and token lifetime.
func Configure(jwtSecret string, tokenTTL time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	if jwtSecret != "" {
		secret = []byte(jwtSecret)
	}
	if tokenTTL > 0 {
		ttl = tokenTTL
	}
}

func settings() ([]byte, time.Duration) {
	mu.RLock()
	defer mu.RUnlock()
	return secret, ttl
}

// Claims carry the user's email as subject plus its id and role.
type Claims struct {
	UserID uint            `json:"userId"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(user models.User) (string, error) {
	key, lifetime := settings()
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

func ValidateToken(tokenStr string) (*Claims, error) {
	key, _ := settings()
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// RequireAuth ensures a valid JWT is present
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		claims, err := ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxEmail, claims.Subject)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// RequireAuthWithRole ensures the JWT is valid and the user holds one of roles
func RequireAuthWithRole(roles ...models.UserRole) gin.HandlerFunc {
	auth := RequireAuth()
	return func(c *gin.Context) {
		auth(c)
		if c.IsAborted() {
			return
		}

		role := CurrentRole(c)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": fmt.Sprintf("Insufficient permissions: %s", role)})
	}
}

func CurrentUserID(c *gin.Context) uint {
	return c.GetUint(ctxUserID)
}

func CurrentEmail(c *gin.Context) string {
	return c.GetString(ctxEmail)
}

func CurrentRole(c *gin.Context) models.UserRole {
	role, _ := c.Get(ctxRole)
	r, _ := role.(models.UserRole)
	return r
}
