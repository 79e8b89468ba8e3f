package memory

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

type outboxRepository struct {
	store *Store
}

// NewOutboxRepository возвращает in-memory реализацию OutboxRepository.
func NewOutboxRepository(store *Store) domain.OutboxRepository {
	return &outboxRepository{store: store}
}

// Enqueue сохраняет событие со статусом `pending` и возвращает его идентификатор.
func (r *outboxRepository) Enqueue(msg domain.OutboxMessage) (domain.OutboxMessage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	r.store.outbox[msg.ID] = &outboxRecord{
		msg:       msg,
		status:    "pending",
		createdAt: now,
		updatedAt: now,
	}
	return msg, nil
}

// PullPending возвращает до limit сообщений со статусом `pending`, старые первыми.
func (r *outboxRepository) PullPending(limit int) ([]domain.OutboxMessage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}

	pending := make([]*outboxRecord, 0, len(r.store.outbox))
	for _, rec := range r.store.outbox {
		if rec.status == "pending" {
			pending = append(pending, rec)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		if !pending[i].createdAt.Equal(pending[j].createdAt) {
			return pending[i].createdAt.Before(pending[j].createdAt)
		}
		return pending[i].msg.ID < pending[j].msg.ID
	})

	if len(pending) > limit {
		pending = pending[:limit]
	}

	result := make([]domain.OutboxMessage, 0, len(pending))
	for _, rec := range pending {
		result = append(result, rec.msg)
	}
	return result, nil
}

// Stats возвращает размер и возраст backlog-а.
func (r *outboxRepository) Stats() (domain.OutboxStats, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var stats domain.OutboxStats
	for _, rec := range r.store.outbox {
		if rec.status != "pending" {
			continue
		}
		stats.PendingCount++
		if stats.OldestPendingAt.IsZero() || rec.createdAt.Before(stats.OldestPendingAt) {
			stats.OldestPendingAt = rec.createdAt
		}
	}
	return stats, nil
}

// MarkSent обновляет статус события после успешной публикации.
func (r *outboxRepository) MarkSent(id string) error {
	return r.mark(id, "sent")
}

// MarkFailed фиксирует ошибку публикации.
func (r *outboxRepository) MarkFailed(id string) error {
	return r.mark(id, "failed")
}

func (r *outboxRepository) mark(id, status string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.outbox[id]
	if !ok {
		return domain.ErrOutboxPublish
	}
	rec.status = status
	rec.attemptCnt++
	rec.updatedAt = time.Now().UTC()
	return nil
}

var _ domain.OutboxRepository = (*outboxRepository)(nil)
