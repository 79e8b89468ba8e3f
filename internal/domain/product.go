package domain

import "time"

// Product описывает товар каталога.
type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Price — цена за единицу в минимальных денежных единицах (например, копейки).
	Price       int64  `json:"price"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	// Stock — остаток на витрине; информационное поле, резервирование не выполняется.
	Stock     int64     `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidateInvariants проверяет базовые инварианты товара и возвращает список замечаний.
func (p *Product) ValidateInvariants() []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, ErrProductNameRequired)
	}
	if p.Price <= 0 {
		errs = append(errs, ErrProductPriceInvalid)
	}
	if p.Stock < 0 {
		errs = append(errs, ErrProductStockInvalid)
	}

	return errs
}
