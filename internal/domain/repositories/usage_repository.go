package repositories

import (
	"context"

	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
)

// UsageRepository - append-only журнал успешных диспетчеризаций.
type UsageRepository interface {
	Append(ctx context.Context, record *models.UsageRecord) error

	Recent(ctx context.Context, limit int) ([]*models.UsageRecord, error)
}
