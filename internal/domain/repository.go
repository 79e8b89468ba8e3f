package domain

// ProductRepository описывает требования к хранилищу каталога.
type ProductRepository interface {
	// Create сохраняет новый товар.
	Create(product Product) error
	// Get возвращает товар по идентификатору или ErrProductNotFound, если его нет.
	Get(id string) (Product, error)
	// List возвращает все товары каталога в порядке добавления.
	List() ([]Product, error)
	// Delete удаляет товар. Отсутствие товара ошибкой не считается;
	// товар, на который ссылаются корзины или заказы, удалить нельзя (ErrProductReferenced).
	Delete(id string) error
}

// CartRepository описывает хранилище позиций корзины.
type CartRepository interface {
	// Add сохраняет позицию. Ссылка на несуществующий товар — ErrCartProductInvalid.
	Add(entry CartEntry) error
	// Get возвращает позицию по идентификатору или ErrCartEntryNotFound.
	Get(id string) (CartEntry, error)
	// ListByCustomer возвращает позиции покупателя вместе с текущими данными товара.
	ListByCustomer(customerID string) ([]CartItem, error)
	// Delete удаляет позицию или возвращает ErrCartEntryNotFound.
	Delete(id string) error
}

// OrderRepository описывает хранилище заказов и атомарное оформление.
type OrderRepository interface {
	// Place атомарно сохраняет заказ с позициями, удаляет ровно те позиции
	// корзины, что были прочитаны при оформлении, и ставит событие в outbox.
	// Если какая-то из позиций уже потреблена конкурентным оформлением —
	// ErrCartConflict, и ни одна запись не сохраняется.
	Place(order Order, consumedEntryIDs []string, event OutboxMessage) error
	// Get возвращает заказ с позициями или ErrOrderNotFound.
	Get(id string) (Order, error)
	// ListByCustomer возвращает заказы покупателя, новые первыми.
	ListByCustomer(customerID string) ([]Order, error)
}

// CustomerRepository описывает хранилище учётных записей.
type CustomerRepository interface {
	// Create сохраняет покупателя; занятый e-mail — ErrEmailTaken.
	Create(customer Customer) error
	// Get возвращает покупателя по идентификатору или ErrCustomerNotFound.
	Get(id string) (Customer, error)
	// GetByEmail возвращает покупателя по e-mail или ErrCustomerNotFound.
	GetByEmail(email string) (Customer, error)
}
