package repositories

import (
	"context"

	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
)

type UserRepository interface {
	Find(ctx context.Context, jid string) (*models.User, error)

	Upsert(ctx context.Context, user *models.User) error

	IsBanned(ctx context.Context, jid string) (bool, error)

	SetBanned(ctx context.Context, jid string, banned bool) error

	IncrementCommandUsage(ctx context.Context, jid string) error

	AllJIDs(ctx context.Context) ([]string, error)
}
