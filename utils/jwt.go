package utils

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"sihati/config"

	"github.com/golang-jwt/jwt/v5"
)

const revokedTokenPrefix = "revoked:"

func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// GenerateToken creates a signed JWT with the given subject (profile ID) and
// role claim. The token expires after the specified duration.
func GenerateToken(subject, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns its claims.
func ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// ExtractIdentity returns the subject and role claims of a valid token.
func ExtractIdentity(tokenString string) (id, role string, err error) {
	claims, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", errors.New("token does not contain a valid 'sub' claim")
	}
	r, _ := claims["role"].(string)
	return sub, r, nil
}

// RevokeToken records the token's hash so it is rejected until it would have
// expired anyway.
func RevokeToken(ctx context.Context, tokenString string, ttl time.Duration) error {
	client := GetAuthCacheClient()
	return client.Set(ctx, revokedTokenPrefix+HashToken(tokenString), "1", ttl).Err()
}

// IsTokenRevoked reports whether the token's hash is on the revocation list.
func IsTokenRevoked(ctx context.Context, tokenString string) bool {
	client := GetAuthCacheClient()
	n, err := client.Exists(ctx, revokedTokenPrefix+HashToken(tokenString)).Result()
	return err == nil && n > 0
}
