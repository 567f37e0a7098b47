package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims binds a session token to a user identity. Expiry lives in the
// embedded registered claims; validity is proven by signature + expiry alone.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}

// TokenIssuer creates and validates signed, time-bound session tokens.
// Tokens are not persisted server-side and cannot be revoked before expiry.
type TokenIssuer interface {
	Issue(userID int64, email string) (string, error)
	Parse(tokenString string) (*Claims, error)
}

type jwtIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTIssuer constructs a TokenIssuer signing HS256 tokens with the given
// secret and validity window.
func NewJWTIssuer(secret []byte, ttl time.Duration) TokenIssuer {
	return &jwtIssuer{secret: secret, ttl: ttl}
}

func (i *jwtIssuer) Issue(userID int64, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID: userID,
		Email:  email,
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (i *jwtIssuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
