package repository_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/Matthew11K/wa-media-bot/internal/bot/repository"
	"github.com/Matthew11K/wa-media-bot/internal/config"
	"github.com/Matthew11K/wa-media-bot/internal/database"
	customerrors "github.com/Matthew11K/wa-media-bot/internal/domain/errors"
	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
	"github.com/Matthew11K/wa-media-bot/pkg/txs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDatabase(ctx context.Context, logger *slog.Logger) (*database.PostgresDB, func(), error) {
	dbName := "testdb"
	dbUser := "testuser"
	dbPassword := "testpassword"

	container, err := postgres.Run(ctx,
		"postgres:16",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(10*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось запустить контейнер postgres: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось получить хост контейнера: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось получить порт контейнера: %w", err)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPassword, host, port.Port(), dbName)

	migrationsPath, _ := filepath.Abs("../../../migrations")
	migrateURL := fmt.Sprintf("file://%s", migrationsPath)

	m, err := migrate.New(migrateURL, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось создать экземпляр migrate: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return nil, nil, fmt.Errorf("не удалось применить миграции: %w", err)
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return nil, nil, fmt.Errorf("ошибка закрытия источника миграций: %w", sourceErr)
	}

	if dbErr != nil {
		return nil, nil, fmt.Errorf("ошибка закрытия подключения БД миграций: %w", dbErr)
	}

	testCfg := &config.Config{
		DatabaseURL:     dsn,
		DatabaseMaxConn: 5,
	}

	db, err := database.NewPostgresDB(ctx, testCfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось подключиться к тестовой БД: %w", err)
	}

	cleanup := func() {
		db.Close()

		if err := container.Terminate(ctx); err != nil {
			logger.Error("Не удалось остановить контейнер postgres", "error", err)
		}
	}

	return db, cleanup, nil
}

func clearTables(ctx context.Context, t *testing.T, db *database.PostgresDB) {
	t.Helper()

	for _, table := range []string{"usage_records", "users"} {
		_, err := db.Pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		require.NoErrorf(t, err, "Не удалось очистить таблицу %s", table)
	}
}

//nolint:funlen // Последовательный сценарий для обоих типов доступа к БД.
func runTestsForConfig(t *testing.T, accessType config.AccessType) {
	t.Helper()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, cleanup, err := setupTestDatabase(ctx, logger)
	require.NoError(t, err, "Ошибка настройки тестовой базы данных")

	defer cleanup()

	testCfg := &config.Config{DatabaseAccessType: accessType}

	factory := repository.NewFactory(db, testCfg, logger)

	userRepo, err := factory.CreateUserRepository()
	require.NoError(t, err)

	usageRepo, err := factory.CreateUsageRepository()
	require.NoError(t, err)

	txManager := txs.NewTxManager(db.Pool, logger)

	const jid = "79001234567@s.whatsapp.net"

	t.Run("UpsertAndFind", func(t *testing.T) {
		clearTables(ctx, t, db)

		require.NoError(t, userRepo.Upsert(ctx, &models.User{JID: jid, Username: "alice"}))

		user, err := userRepo.Find(ctx, jid)
		require.NoError(t, err)
		assert.Equal(t, jid, user.JID)
		assert.Equal(t, "alice", user.Username)
		assert.False(t, user.Banned)
		assert.Equal(t, int64(0), user.CommandsUsed)

		// Повторный апсерт обновляет имя, не трогая остальное.
		require.NoError(t, userRepo.Upsert(ctx, &models.User{JID: jid, Username: "alice2"}))

		user, err = userRepo.Find(ctx, jid)
		require.NoError(t, err)
		assert.Equal(t, "alice2", user.Username)
	})

	t.Run("FindUnknownUser", func(t *testing.T) {
		clearTables(ctx, t, db)

		_, err := userRepo.Find(ctx, "нет-такого@s.whatsapp.net")
		require.Error(t, err)

		var notFound *customerrors.ErrUserNotFound

		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("BanAndUnban", func(t *testing.T) {
		clearTables(ctx, t, db)

		require.NoError(t, userRepo.Upsert(ctx, &models.User{JID: jid, Username: "alice"}))

		banned, err := userRepo.IsBanned(ctx, jid)
		require.NoError(t, err)
		assert.False(t, banned)

		require.NoError(t, userRepo.SetBanned(ctx, jid, true))

		banned, err = userRepo.IsBanned(ctx, jid)
		require.NoError(t, err)
		assert.True(t, banned)

		require.NoError(t, userRepo.SetBanned(ctx, jid, false))

		banned, err = userRepo.IsBanned(ctx, jid)
		require.NoError(t, err)
		assert.False(t, banned)
	})

	t.Run("IsBannedUnknownUser", func(t *testing.T) {
		clearTables(ctx, t, db)

		banned, err := userRepo.IsBanned(ctx, "нет-такого@s.whatsapp.net")
		require.NoError(t, err)
		assert.False(t, banned)
	})

	t.Run("IncrementCommandUsage", func(t *testing.T) {
		clearTables(ctx, t, db)

		require.NoError(t, userRepo.Upsert(ctx, &models.User{JID: jid, Username: "alice"}))

		require.NoError(t, userRepo.IncrementCommandUsage(ctx, jid))
		require.NoError(t, userRepo.IncrementCommandUsage(ctx, jid))

		user, err := userRepo.Find(ctx, jid)
		require.NoError(t, err)
		assert.Equal(t, int64(2), user.CommandsUsed)
	})

	t.Run("IncrementUnknownUser", func(t *testing.T) {
		clearTables(ctx, t, db)

		err := userRepo.IncrementCommandUsage(ctx, "нет-такого@s.whatsapp.net")
		require.Error(t, err)

		var notFound *customerrors.ErrUserNotFound

		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("AllJIDs", func(t *testing.T) {
		clearTables(ctx, t, db)

		require.NoError(t, userRepo.Upsert(ctx, &models.User{JID: jid, Username: "alice"}))
		require.NoError(t, userRepo.Upsert(ctx, &models.User{JID: "79007654321@s.whatsapp.net", Username: "bob"}))

		jids, err := userRepo.AllJIDs(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{jid, "79007654321@s.whatsapp.net"}, jids)
	})

	t.Run("AppendAndRecent", func(t *testing.T) {
		clearTables(ctx, t, db)

		first := &models.UsageRecord{CallerJID: jid, Command: "video", ChatJID: "120363025246125486@g.us"}
		require.NoError(t, usageRepo.Append(ctx, first))
		assert.NotZero(t, first.ID)

		second := &models.UsageRecord{CallerJID: jid, Command: "ping"}
		require.NoError(t, usageRepo.Append(ctx, second))

		records, err := usageRepo.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, records, 2)

		// Свежие записи первыми.
		assert.Equal(t, "ping", records[0].Command)
		assert.Equal(t, "", records[0].ChatJID)
		assert.Equal(t, "video", records[1].Command)
		assert.Equal(t, "120363025246125486@g.us", records[1].ChatJID)
	})

	t.Run("RecentRespectsLimit", func(t *testing.T) {
		clearTables(ctx, t, db)

		for i := 0; i < 5; i++ {
			record := &models.UsageRecord{CallerJID: jid, Command: fmt.Sprintf("cmd%d", i)}
			require.NoError(t, usageRepo.Append(ctx, record))
		}

		records, err := usageRepo.Recent(ctx, 3)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "cmd4", records[0].Command)
	})

	t.Run("TransactionRollback", func(t *testing.T) {
		clearTables(ctx, t, db)

		err := txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			if err := userRepo.Upsert(txCtx, &models.User{JID: jid, Username: "alice"}); err != nil {
				return err
			}

			if err := usageRepo.Append(txCtx, &models.UsageRecord{CallerJID: jid, Command: "video"}); err != nil {
				return err
			}

			return fmt.Errorf("искусственный сбой")
		})
		require.Error(t, err)

		_, err = userRepo.Find(ctx, jid)
		require.Error(t, err, "откат транзакции должен убрать пользователя")

		records, err := usageRepo.Recent(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("TransactionCommit", func(t *testing.T) {
		clearTables(ctx, t, db)

		err := txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			if err := userRepo.Upsert(txCtx, &models.User{JID: jid, Username: "alice"}); err != nil {
				return err
			}

			return usageRepo.Append(txCtx, &models.UsageRecord{CallerJID: jid, Command: "video"})
		})
		require.NoError(t, err)

		user, err := userRepo.Find(ctx, jid)
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)

		records, err := usageRepo.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
	})
}

func TestRepositories_SQL(t *testing.T) {
	if testing.Short() {
		t.Skip("Пропуск интеграционного теста в коротком режиме")
	}

	runTestsForConfig(t, config.SQLAccess)
}

func TestRepositories_Squirrel(t *testing.T) {
	if testing.Short() {
		t.Skip("Пропуск интеграционного теста в коротком режиме")
	}

	runTestsForConfig(t, config.SquirrelAccess)
}
