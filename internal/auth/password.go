package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

const minPasswordLength = 8

// HashPassword возвращает bcrypt-хеш пароля.
func HashPassword(password string) ([]byte, error) {
	if len(password) < minPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// CheckPassword сравнивает пароль с сохранённым хешем.
func CheckPassword(hash []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
