package utils

import (
	"errors"
	"login-service/internal/pkg/constvars"
	"login-service/internal/pkg/exceptions"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateClientSessionJWT(clientID, secret string, expiry time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		constvars.ClientSessionClaimKey: clientID,
		"exp":                           time.Now().Add(expiry).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrClientSessionSign(err)
	}

	return tokenString, nil
}

// ParseClientSessionJWT returns the client id carried by a token issued with
// GenerateClientSessionJWT.
func ParseClientSessionJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", exceptions.ErrClientSessionParse(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", exceptions.ErrClientSessionParse(errors.New("invalid token"))
	}

	clientID, ok := claims[constvars.ClientSessionClaimKey].(string)
	if !ok {
		return "", exceptions.ErrClientSessionParse(errors.New("client id claim missing"))
	}
	if _, err := uuid.Parse(clientID); err != nil {
		return "", exceptions.ErrClientSessionParse(err)
	}

	return clientID, nil
}
