package httpapi

import (
	"errors"
	"net/http"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

// mapErrorToStatus переводит доменные ошибки в HTTP-статусы.
func mapErrorToStatus(err error) int {
	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCartEmpty),
		errors.Is(err, domain.ErrCartProductInvalid),
		errors.Is(err, domain.ErrCartQtyInvalid),
		errors.Is(err, domain.ErrProductRequired),
		errors.Is(err, domain.ErrProductNameRequired),
		errors.Is(err, domain.ErrProductPriceInvalid),
		errors.Is(err, domain.ErrProductStockInvalid),
		errors.Is(err, domain.ErrCustomerRequired),
		errors.Is(err, domain.ErrDetailQtyInvalid),
		errors.Is(err, domain.ErrDetailPriceInvalid),
		errors.Is(err, domain.ErrOrderDetailsRequired),
		errors.Is(err, domain.ErrEmailInvalid),
		errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrPasswordTooShort):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrProductReferenced),
		errors.Is(err, domain.ErrCartConflict),
		errors.Is(err, domain.ErrOrderExists),
		errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
