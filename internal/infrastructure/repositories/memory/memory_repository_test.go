package memory_test

import (
	"context"
	"testing"

	"github.com/Matthew11K/wa-media-bot/internal/domain/errors"
	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
	"github.com/Matthew11K/wa-media-bot/internal/infrastructure/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJID = "79001234567@s.whatsapp.net"

func TestUserRepository_UpsertAndFind(t *testing.T) {
	repo := memory.NewUserRepository()
	ctx := context.Background()

	t.Run("Upsert new user", func(t *testing.T) {
		err := repo.Upsert(ctx, &models.User{JID: testJID, Username: "alice"})

		require.NoError(t, err)

		user, err := repo.Find(ctx, testJID)
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("Upsert updates username", func(t *testing.T) {
		err := repo.Upsert(ctx, &models.User{JID: testJID, Username: "alice2"})

		require.NoError(t, err)

		user, err := repo.Find(ctx, testJID)
		require.NoError(t, err)
		assert.Equal(t, "alice2", user.Username)
	})

	t.Run("Find unknown user", func(t *testing.T) {
		_, err := repo.Find(ctx, "нет-такого@s.whatsapp.net")

		require.Error(t, err)
		assert.IsType(t, &errors.ErrUserNotFound{}, err)
	})
}

func TestUserRepository_BanStatus(t *testing.T) {
	repo := memory.NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.User{JID: testJID, Username: "alice"}))

	banned, err := repo.IsBanned(ctx, testJID)
	require.NoError(t, err)
	assert.False(t, banned)

	require.NoError(t, repo.SetBanned(ctx, testJID, true))

	banned, err = repo.IsBanned(ctx, testJID)
	require.NoError(t, err)
	assert.True(t, banned)

	// Неизвестный отправитель не забанен.
	banned, err = repo.IsBanned(ctx, "нет-такого@s.whatsapp.net")
	require.NoError(t, err)
	assert.False(t, banned)
}

func TestUserRepository_SetBannedCreatesUser(t *testing.T) {
	repo := memory.NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.SetBanned(ctx, testJID, true))

	user, err := repo.Find(ctx, testJID)
	require.NoError(t, err)
	assert.True(t, user.Banned)
}

func TestUserRepository_IncrementCommandUsage(t *testing.T) {
	repo := memory.NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.User{JID: testJID, Username: "alice"}))

	require.NoError(t, repo.IncrementCommandUsage(ctx, testJID))
	require.NoError(t, repo.IncrementCommandUsage(ctx, testJID))

	user, err := repo.Find(ctx, testJID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), user.CommandsUsed)

	err = repo.IncrementCommandUsage(ctx, "нет-такого@s.whatsapp.net")
	require.Error(t, err)
	assert.IsType(t, &errors.ErrUserNotFound{}, err)
}

func TestUserRepository_AllJIDs(t *testing.T) {
	repo := memory.NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.User{JID: testJID, Username: "alice"}))
	require.NoError(t, repo.Upsert(ctx, &models.User{JID: "79007654321@s.whatsapp.net", Username: "bob"}))

	jids, err := repo.AllJIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{testJID, "79007654321@s.whatsapp.net"}, jids)
}

func TestUsageRepository_AppendAndRecent(t *testing.T) {
	repo := memory.NewUsageRepository()
	ctx := context.Background()

	first := &models.UsageRecord{CallerJID: testJID, Command: "video", ChatJID: "120363025246125486@g.us"}
	require.NoError(t, repo.Append(ctx, first))
	assert.Equal(t, int64(1), first.ID)

	second := &models.UsageRecord{CallerJID: testJID, Command: "ping"}
	require.NoError(t, repo.Append(ctx, second))
	assert.Equal(t, int64(2), second.ID)

	records, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Свежие записи первыми.
	assert.Equal(t, "ping", records[0].Command)
	assert.Equal(t, "video", records[1].Command)
	assert.False(t, records[0].CreatedAt.IsZero())
}

func TestUsageRepository_RecentRespectsLimit(t *testing.T) {
	repo := memory.NewUsageRepository()
	ctx := context.Background()

	for _, name := range []string{"cmd0", "cmd1", "cmd2", "cmd3", "cmd4"} {
		require.NoError(t, repo.Append(ctx, &models.UsageRecord{CallerJID: testJID, Command: name}))
	}

	records, err := repo.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "cmd4", records[0].Command)
	assert.Equal(t, "cmd2", records[2].Command)
}
