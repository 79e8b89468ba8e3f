package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

const defaultTokenTTL = 30 * time.Minute

// TokenManager выпускает и проверяет bearer-токены покупателей.
// Токен — подписанный HS256 JWT c идентификатором покупателя в subject.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager создаёт менеджер токенов. ttl <= 0 заменяется значением по умолчанию.
func NewTokenManager(secret []byte, ttl time.Duration) (*TokenManager, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("token secret is required")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenManager{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue выпускает токен для покупателя.
func (m *TokenManager) Issue(customerID string) (string, error) {
	if customerID == "" {
		return "", domain.ErrCustomerRequired
	}

	now := m.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   customerID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Resolve проверяет токен и возвращает идентификатор покупателя.
// Повреждённый или чужой токен — ErrTokenInvalid, просроченный — ErrTokenExpired:
// транспорт обязан различать эти случаи (401 против 403).
func (m *TokenManager) Resolve(tokenString string) (string, error) {
	if tokenString == "" {
		return "", domain.ErrTokenInvalid
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return m.now() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return "", domain.ErrTokenInvalid
	}

	return claims.Subject, nil
}
