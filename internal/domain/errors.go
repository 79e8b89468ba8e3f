package domain

import "errors"

var (
	// Ошибка отсутствующего идентификатора покупателя.
	ErrCustomerRequired = errors.New("customer_id is required")
	// Ошибка отсутствующего идентификатора товара.
	ErrProductRequired = errors.New("product_id is required")
	// Ошибка пустого имени товара.
	ErrProductNameRequired = errors.New("product name is required")
	// Ошибка неположительной цены товара.
	ErrProductPriceInvalid = errors.New("product price must be greater than zero")
	// Ошибка отрицательного остатка товара.
	ErrProductStockInvalid = errors.New("product stock must be non-negative")
	// ErrProductNotFound возвращается, если товар не найден в каталоге.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductReferenced — товар нельзя удалить, на него ссылаются корзины или заказы.
	ErrProductReferenced = errors.New("product is referenced by cart entries or orders")

	// Ошибка некорректного количества в позиции корзины (<= 0).
	ErrCartQtyInvalid = errors.New("cart qty must be greater than zero")
	// ErrCartProductInvalid — позиция корзины ссылается на несуществующий товар.
	ErrCartProductInvalid = errors.New("cart entry references unknown product")
	// ErrCartEntryNotFound — позиция корзины не найдена или принадлежит другому покупателю.
	ErrCartEntryNotFound = errors.New("cart entry not found")
	// ErrCartEmpty — оформление пустой корзины отклоняется, заказ не создаётся.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrCartConflict — позиция корзины была изменена конкурентным оформлением.
	ErrCartConflict = errors.New("cart changed during checkout")

	// Ошибка некорректного количества в позиции заказа.
	ErrDetailQtyInvalid = errors.New("order detail qty must be at least one")
	// Ошибка отрицательной зафиксированной цены позиции.
	ErrDetailPriceInvalid = errors.New("order detail price must be non-negative")
	// Ошибка заказа без единой позиции.
	ErrOrderDetailsRequired = errors.New("order must contain at least one detail")
	// ErrOrderNotFound возвращается, если заказ не найден или принадлежит другому покупателю.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderExists сигнализирует о повторной вставке заказа с тем же ID.
	ErrOrderExists = errors.New("order already exists")

	// Ошибка некорректного e-mail при регистрации.
	ErrEmailInvalid = errors.New("valid email is required")
	// Ошибка пустого имени покупателя.
	ErrNameRequired = errors.New("customer name is required")
	// Ошибка слишком короткого пароля.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	// ErrCustomerNotFound возвращается, если покупатель не найден.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrEmailTaken — e-mail уже занят другой учётной записью.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrInvalidCredentials — пара e-mail/пароль не подходит.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenInvalid — токен отсутствует, повреждён или подписан не нами.
	ErrTokenInvalid = errors.New("credential is invalid")
	// ErrTokenExpired — токен корректен, но срок его действия истёк.
	// Отличается от ErrTokenInvalid: транспорт отдаёт 403, а не 401.
	ErrTokenExpired = errors.New("credential is expired")

	// ErrOutboxPublish — ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
)

// IsNotFound проверяет, относится ли ошибка к отсутствующему ресурсу.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrCartEntryNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrCustomerNotFound)
}
