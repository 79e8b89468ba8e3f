package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

// Service реализует операции каталога товаров.
type Service struct {
	products domain.ProductRepository
	logger   *log.Entry
}

// NewService конструирует сервис каталога.
func NewService(products domain.ProductRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.WithField("component", "catalog-service")
	}
	return &Service{products: products, logger: logger}
}

// AddProduct создаёт товар и возвращает его с присвоенным идентификатором.
func (s *Service) AddProduct(name string, price int64, imageURL, description string, stock int64) (domain.Product, error) {
	product := domain.Product{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(name),
		Price:       price,
		ImageURL:    imageURL,
		Description: description,
		Stock:       stock,
		CreatedAt:   time.Now().UTC(),
	}

	// errors.Join сохраняет сентинели: транспорт распознаёт их через errors.Is.
	if errs := product.ValidateInvariants(); len(errs) > 0 {
		return domain.Product{}, errors.Join(errs...)
	}

	if err := s.products.Create(product); err != nil {
		s.logger.WithError(err).Error("failed to create product")
		return domain.Product{}, err
	}

	s.logger.WithField("product_id", product.ID).Info("product created")
	return product, nil
}

// ListProducts возвращает весь каталог.
func (s *Service) ListProducts() ([]domain.Product, error) {
	return s.products.List()
}

// GetProduct возвращает товар или ErrProductNotFound.
func (s *Service) GetProduct(id string) (domain.Product, error) {
	if id == "" {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return s.products.Get(id)
}

// DeleteProduct удаляет товар. Отсутствие товара ошибкой не считается.
func (s *Service) DeleteProduct(id string) error {
	if id == "" {
		return nil
	}
	if err := s.products.Delete(id); err != nil {
		if errors.Is(err, domain.ErrProductReferenced) {
			return err
		}
		s.logger.WithError(err).WithField("product_id", id).Error("failed to delete product")
		return err
	}
	return nil
}
