package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

// SessionClaims are the claims the external session provider signs into its
// bearer tokens.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// SessionVerifier validates bearer tokens issued by the external session
// provider. This service never mints tokens; the session lifecycle is owned
// by the provider.
type SessionVerifier struct {
	secret []byte
}

// NewSessionVerifier creates a verifier for the provider's signing secret.
func NewSessionVerifier(secret string) *SessionVerifier {
	return &SessionVerifier{secret: []byte(secret)}
}

// Verify validates a session token and returns its claims.
func (v *SessionVerifier) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}
