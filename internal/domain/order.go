package domain

import "time"

// OrderDetail — неизменяемый снимок одной позиции заказа.
type OrderDetail struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	Qty       int64  `json:"qty"`
	// Price — цена за единицу, зафиксированная в момент оформления.
	// Последующие изменения цены товара на историю заказов не влияют.
	Price int64 `json:"price"`
}

// Order — неизменяемая запись оформленного заказа одного покупателя.
type Order struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Details    []OrderDetail `json:"details"`
	CreatedAt  time.Time     `json:"created_at"`
}

// Total возвращает сумму заказа в минимальных денежных единицах.
func (o *Order) Total() int64 {
	var total int64
	for _, d := range o.Details {
		total += d.Qty * d.Price
	}
	return total
}

// ValidateInvariants проверяет инварианты заказа и возвращает список замечаний.
// Заказ без позиций невалиден: оформление пустой корзины должно отклоняться раньше.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.CustomerID == "" {
		errs = append(errs, ErrCustomerRequired)
	}
	if len(o.Details) == 0 {
		errs = append(errs, ErrOrderDetailsRequired)
	}
	for _, d := range o.Details {
		if d.Qty < 1 {
			errs = append(errs, ErrDetailQtyInvalid)
		}
		if d.Price < 0 {
			errs = append(errs, ErrDetailPriceInvalid)
		}
		if d.ProductID == "" {
			errs = append(errs, ErrProductRequired)
		}
	}

	return errs
}
