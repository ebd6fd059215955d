package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Matthew11K/wa-media-bot/internal/domain/errors"
	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
)

type UserRepository struct {
	users map[string]*models.User
	mu    sync.RWMutex
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]*models.User),
	}
}

func (r *UserRepository) Find(ctx context.Context, jid string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[jid]
	if !exists {
		return nil, &errors.ErrUserNotFound{JID: jid}
	}

	copied := *user

	return &copied, nil
}

func (r *UserRepository) Upsert(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()

	existing, exists := r.users[user.JID]
	if !exists {
		copied := *user
		copied.CreatedAt = now
		copied.UpdatedAt = now
		r.users[user.JID] = &copied

		return nil
	}

	existing.Username = user.Username
	existing.UpdatedAt = now

	return nil
}

func (r *UserRepository) IsBanned(ctx context.Context, jid string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[jid]
	if !exists {
		return false, nil
	}

	return user.Banned, nil
}

func (r *UserRepository) SetBanned(ctx context.Context, jid string, banned bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[jid]
	if !exists {
		now := time.Now()
		r.users[jid] = &models.User{
			JID:       jid,
			Banned:    banned,
			CreatedAt: now,
			UpdatedAt: now,
		}

		return nil
	}

	user.Banned = banned
	user.UpdatedAt = time.Now()

	return nil
}

func (r *UserRepository) IncrementCommandUsage(ctx context.Context, jid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[jid]
	if !exists {
		return &errors.ErrUserNotFound{JID: jid}
	}

	user.CommandsUsed++
	user.UpdatedAt = time.Now()

	return nil
}

func (r *UserRepository) AllJIDs(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jids := make([]string, 0, len(r.users))
	for jid := range r.users {
		jids = append(jids, jid)
	}

	return jids, nil
}
