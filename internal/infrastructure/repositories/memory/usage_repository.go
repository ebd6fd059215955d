package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
)

type UsageRepository struct {
	records []*models.UsageRecord
	nextID  int64
	mu      sync.Mutex
}

func NewUsageRepository() *UsageRepository {
	return &UsageRepository{
		nextID: 1,
	}
}

func (r *UsageRepository) Append(ctx context.Context, record *models.UsageRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *record
	copied.ID = r.nextID

	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = time.Now()
	}

	r.nextID++
	r.records = append(r.records, &copied)
	record.ID = copied.ID

	return nil
}

func (r *UsageRepository) Recent(ctx context.Context, limit int) ([]*models.UsageRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}

	result := make([]*models.UsageRecord, 0, limit)

	for i := len(r.records) - 1; i >= 0 && len(result) < limit; i-- {
		copied := *r.records[i]
		result = append(result, &copied)
	}

	return result, nil
}
