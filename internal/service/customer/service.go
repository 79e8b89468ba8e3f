package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shopcart/internal/auth"
	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

// Service реализует регистрацию и вход покупателей.
type Service struct {
	customers domain.CustomerRepository
	tokens    *auth.TokenManager
	logger    *log.Entry
}

// NewService конструирует сервис учётных записей.
func NewService(customers domain.CustomerRepository, tokens *auth.TokenManager, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.WithField("component", "customer-service")
	}
	return &Service{customers: customers, tokens: tokens, logger: logger}
}

// Register создаёт учётную запись покупателя.
func (s *Service) Register(email, name, password string) (domain.Customer, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return domain.Customer{}, domain.ErrEmailInvalid
	}
	if strings.TrimSpace(name) == "" {
		return domain.Customer{}, domain.ErrNameRequired
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.Customer{}, err
	}

	customer := domain.Customer{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.customers.Create(customer); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return domain.Customer{}, err
		}
		s.logger.WithError(err).Error("failed to create customer")
		return domain.Customer{}, err
	}

	s.logger.WithField("customer_id", customer.ID).Info("customer registered")
	return customer, nil
}

// Login проверяет пару e-mail/пароль и выпускает bearer-токен.
// Неизвестный e-mail и неверный пароль неразличимы для вызывающего.
func (s *Service) Login(email, password string) (string, error) {
	customer, err := s.customers.GetByEmail(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.CheckPassword(customer.PasswordHash, password) {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(customer.ID)
}
