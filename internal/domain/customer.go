package domain

import "time"

// Customer — учётная запись покупателя.
type Customer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	// PasswordHash — bcrypt-хеш пароля; сам пароль нигде не хранится
	// и наружу не сериализуется.
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
