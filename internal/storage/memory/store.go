package memory

import (
	"sync"
	"time"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

// outboxRecord хранит сообщение и служебные поля для in-memory реализации.
type outboxRecord struct {
	msg        domain.OutboxMessage
	status     string
	attemptCnt int
	createdAt  time.Time
	updatedAt  time.Time
}

// Store — общее in-memory хранилище для локальной разработки и тестов.
// Все репозитории делят один мьютекс, поэтому оформление заказа
// (Place) выполняется так же атомарно, как транзакция в PostgreSQL.
type Store struct {
	mu          sync.RWMutex
	products    map[string]domain.Product
	cartEntries map[string]domain.CartEntry
	orders      map[string]domain.Order
	customers   map[string]domain.Customer
	outbox      map[string]*outboxRecord
}

// NewStore создаёт пустое хранилище.
func NewStore() *Store {
	return &Store{
		products:    make(map[string]domain.Product),
		cartEntries: make(map[string]domain.CartEntry),
		orders:      make(map[string]domain.Order),
		customers:   make(map[string]domain.Customer),
		outbox:      make(map[string]*outboxRecord),
	}
}
