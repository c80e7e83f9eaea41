// Package session turns the authenticated user into an opaque cookie token.
//
// Cookie presence means authenticated. The token is signed so the client
// cannot mint an identity; sessions never expire and there is no logout.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/flyai/flyai/internal/domain"
)

// Session is the resolved identity behind a valid token.
type Session struct {
	Phone    string
	Language domain.Language
}

// Manager issues and resolves session tokens. It isolates the trust model so
// the token scheme can be hardened without touching the handlers.
type Manager interface {
	Issue(phone string, lang domain.Language) (string, error)
	Resolve(token string) (*Session, error)
}

type claims struct {
	Phone    string `json:"phone"`
	Language string `json:"language"`
	jwt.RegisteredClaims
}

// JWTManager signs session tokens with HS256. Tokens carry no expiry:
// an authenticated session is terminal for the life of the cookie.
type JWTManager struct {
	secret string
}

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{secret: secret}
}

func (m *JWTManager) Issue(phone string, lang domain.Language) (string, error) {
	c := claims{
		Phone:    phone,
		Language: string(lang),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Audience: []string{"flyai-web"},
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString([]byte(m.secret))
}

func (m *JWTManager) Resolve(tokenString string) (*Session, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(m.secret), nil
	})
	if err != nil {
		return nil, err
	}
	c, ok := tok.Claims.(*claims)
	if !ok || !tok.Valid {
		return nil, errors.New("invalid session token")
	}
	return &Session{
		Phone:    c.Phone,
		Language: domain.ParseLanguage(c.Language),
	}, nil
}
