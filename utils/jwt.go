package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "RestaurantAI"

var (
	ErrMissingSecret = errors.New("session token secret is not configured")
	ErrInvalidToken  = errors.New("invalid or expired token")
)

type SessionClaims struct {
	UserID *uint  `json:"user_id,omitempty"`
	Email  string `json:"email"`
	Method string `json:"method"`
	jwt.RegisteredClaims
}

// TokenSigner issues and parses the opaque tokens stored with session records.
type TokenSigner struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenSigner(secret string, ttl time.Duration) (*TokenSigner, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenSigner{secret: []byte(secret), ttl: ttl}, nil
}

func (s *TokenSigner) TTL() time.Duration {
	return s.ttl
}

// Generate signs a token for one login event. Every token carries a fresh jti,
// so two logins in the same second never share a token.
func (s *TokenSigner) Generate(userID *uint, email, method string, now time.Time) (string, *SessionClaims, error) {
	claims := &SessionClaims{
		UserID: userID,
		Email:  email,
		Method: method,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   email,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

func (s *TokenSigner) Parse(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(tokenIssuer))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
