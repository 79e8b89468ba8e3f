package domain

import "time"

// CartEntry — позиция корзины: связка (покупатель, товар, количество) до оформления заказа.
type CartEntry struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	ProductID  string    `json:"product_id"`
	Qty        int64     `json:"qty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ValidateInvariants проверяет позицию корзины перед сохранением.
func (e *CartEntry) ValidateInvariants() []error {
	var errs []error

	if e.CustomerID == "" {
		errs = append(errs, ErrCustomerRequired)
	}
	if e.ProductID == "" {
		errs = append(errs, ErrProductRequired)
	}
	if e.Qty <= 0 {
		errs = append(errs, ErrCartQtyInvalid)
	}

	return errs
}

// CartItem — позиция корзины вместе с текущим состоянием товара (для отображения).
type CartItem struct {
	Entry   CartEntry `json:"entry"`
	Product Product   `json:"product"`
}
