// Package auth issues and parses the bearer tokens that identify callers,
// and carries the resolved caller through request contexts.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/repovault/internal/common"
	"github.com/dmitrijs2005/repovault/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the registered claims plus the caller's user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID models.UserID `json:"uid"`
}

func GenerateToken(userID models.UserID, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies an HS256 token. Expired tokens yield
// common.ErrTokenExpired, every other failure common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (models.UserID, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, common.ErrTokenExpired
		}
		return 0, common.ErrInvalidToken
	}

	if !token.Valid || !claims.UserID.IsValid() {
		return 0, common.ErrInvalidToken
	}

	return claims.UserID, nil
}
