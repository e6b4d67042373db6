package utils

import (
	"errors"
	"time"

	"github.com/NadirSa01/zelije-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents the custom JWT claims for an admin session
type TokenClaims struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken generates a JWT token for an admin
func GenerateToken(adminID int, email string) (string, error) {
	// Parse expiration duration (default 7d)
	expiresIn := config.AppConfig.JWTExpiresIn
	var duration time.Duration

	switch expiresIn {
	case "7d":
		duration = 7 * 24 * time.Hour
	case "1d":
		duration = 24 * time.Hour
	case "30m":
		duration = 30 * time.Minute
	default:
		duration = 7 * 24 * time.Hour
	}

	claims := TokenClaims{
		ID:    adminID,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken verifies and parses a JWT token
func VerifyToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*TokenClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
