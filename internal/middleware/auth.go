package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/JonnyWalker81/habitpulse/backend/internal/apierror"
	"github.com/JonnyWalker81/habitpulse/backend/internal/logger"
)

// UserIDKey is the gin context key holding the authenticated user ID
const UserIDKey = "user_id"

// Claims are the bearer token claims; the subject is the user ID
type Claims struct {
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for userID valid for ttl
func IssueToken(secret []byte, userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken verifies an HS256 token and returns its subject
func ParseToken(secret []byte, token string) (string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}

// Auth verifies the bearer token and stores the user ID on the gin and request contexts
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context())
		requestID := apierror.GetRequestID(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Debug("authentication failed: missing authorization header")
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID, ""))
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			log.Debug("authentication failed: invalid authorization format")
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID, "Authorization header must be 'Bearer <token>'"))
			return
		}

		userID, err := ParseToken(secret, parts[1])
		if err != nil {
			log.Warn("authentication failed: token verification error", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID, "Invalid or expired token"))
			return
		}

		c.Set(UserIDKey, userID)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), userID))

		c.Next()
	}
}

// GetUserID returns the authenticated user ID set by Auth
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
