package jwt

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("missing authorization token")
)

// Claims represents the JWT claims structure
type Claims struct {
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	jwt.RegisteredClaims
}

// GetSecretKey returns the access-token secret from environment or a default
func GetSecretKey() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-super-secret-key-change-in-production"
	}
	return []byte(secret)
}

// GetRefreshSecretKey returns the refresh-token secret, kept separate from the
// access secret so leaking one does not compromise the other
func GetRefreshSecretKey() []byte {
	secret := os.Getenv("JWT_REFRESH_SECRET")
	if secret == "" {
		secret = "your-super-refresh-secret-change-in-production"
	}
	return []byte(secret)
}

func newClaims(userID uuid.UUID, email, name, role string, permissions []string, ttl time.Duration) *Claims {
	return &Claims{
		UserID:      userID,
		Email:       email,
		Name:        name,
		Role:        role,
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "go-pharma-pos",
		},
	}
}

// GenerateAccessToken creates a short-lived token carrying the actor identity
func GenerateAccessToken(userID uuid.UUID, email, name, role string, permissions []string) (string, error) {
	claims := newClaims(userID, email, name, role, permissions, 24*time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(GetSecretKey())
}

// GenerateRefreshToken creates a long-lived token used only to mint new access tokens
func GenerateRefreshToken(userID uuid.UUID, email, name, role string, permissions []string) (string, error) {
	claims := newClaims(userID, email, name, role, permissions, 30*24*time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(GetRefreshSecretKey())
}

func parseWithKey(tokenString string, key []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return key, nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// ValidateToken parses and validates an access token
func ValidateToken(tokenString string) (*Claims, error) {
	return parseWithKey(tokenString, GetSecretKey())
}

// ValidateRefreshToken parses and validates a refresh token
func ValidateRefreshToken(tokenString string) (*Claims, error) {
	return parseWithKey(tokenString, GetRefreshSecretKey())
}
