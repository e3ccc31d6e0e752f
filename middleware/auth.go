package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const uidContextKey = "uid"

func jwtSecret() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("secret")
}

// CreateToken issues a signed token for a user UID, valid for 24 hours.
func CreateToken(uid string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   uid,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

func parseToken(header string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", errors.New("missing bearer token")
	}

	token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, prefix), &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return jwtSecret(), nil
		})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("invalid token claims")
	}
	return claims.Subject, nil
}

// AuthRequired is a simple middleware to check the bearer token.
func AuthRequired(c *gin.Context) {
	uid, err := parseToken(c.GetHeader("Authorization"))
	if err != nil {
		// Abort the request with the appropriate error code
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Set(uidContextKey, uid)
	// Continue down the chain to handler etc
	c.Next()
}

// JWT_decoder returns the authenticated user's UID for the current
// request, writing a 401 if there is none.
func JWT_decoder(c *gin.Context) (string, error) {
	if uid, ok := c.Get(uidContextKey); ok {
		return uid.(string), nil
	}

	uid, err := parseToken(c.GetHeader("Authorization"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", err
	}
	return uid, nil
}
