package selection

import (
	"sync"
	"time"

	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
)

// Store - хранилище ожидающих выборов, один слот на отправителя.
// Put безусловно перезаписывает предыдущий слот, Take атомарно читает и
// удаляет: при двух конкурентных событиях от одного отправителя ровно одно
// из них увидит слот, второе - его отсутствие. Срок жизни слота ограничен
// TTL: истёкшие записи отбрасываются лениво в Take и периодически в Sweep.
type Store struct {
	mu      sync.Mutex
	entries map[string]*models.PendingSelection
	ttl     time.Duration
	now     func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]*models.PendingSelection),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store) Put(callerJID string, payload models.SelectionPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[callerJID] = &models.PendingSelection{
		CallerJID: callerJID,
		Payload:   payload,
		CreatedAt: s.now(),
	}
}

func (s *Store) Take(callerJID string) (*models.PendingSelection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[callerJID]
	if !ok {
		return nil, false
	}

	delete(s.entries, callerJID)

	if entry.Expired(s.ttl, s.now()) {
		return nil, false
	}

	return entry, true
}

// Sweep удаляет истёкшие слоты и возвращает их количество.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0

	for jid, entry := range s.entries {
		if entry.Expired(s.ttl, now) {
			delete(s.entries, jid)

			removed++
		}
	}

	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}
