package utils

import (
	"errors"
	"os"
	"time"

	"telecare/config"
	"telecare/models"

	"github.com/golang-jwt/jwt"
)

func jwtSecret() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	if secret == "" {
		secret = "telecare-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT for the given actor. The role claim is
// what the middleware later uses to gate patient-only and provider-only routes.
func GenerateToken(subject string, role models.ActorRole, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": string(role),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
}

// ExtractActorFromToken returns the actor ID and role carried by a valid token.
func ExtractActorFromToken(tokenString string) (string, models.ActorRole, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", errors.New("token does not contain a valid 'sub' claim")
	}
	roleStr, ok := claims["role"].(string)
	role := models.ActorRole(roleStr)
	if !ok || !role.IsValid() {
		return "", "", errors.New("token does not contain a valid 'role' claim")
	}

	return sub, role, nil
}
