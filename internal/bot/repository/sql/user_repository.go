package sql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Matthew11K/wa-media-bot/internal/database"
	customerrors "github.com/Matthew11K/wa-media-bot/internal/domain/errors"
	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
	"github.com/Matthew11K/wa-media-bot/pkg/txs"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db *database.PostgresDB
}

func NewUserRepository(db *database.PostgresDB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Find(ctx context.Context, jid string) (*models.User, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	user := &models.User{}

	err := querier.QueryRow(ctx,
		"SELECT jid, username, banned, commands_used, created_at, updated_at FROM users WHERE jid = $1",
		jid).Scan(&user.JID, &user.Username, &user.Banned, &user.CommandsUsed, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &customerrors.ErrUserNotFound{JID: jid}
		}

		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Upsert(ctx context.Context, user *models.User) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	now := time.Now()

	_, err := querier.Exec(ctx,
		`INSERT INTO users (jid, username, banned, commands_used, created_at, updated_at)
		 VALUES ($1, $2, FALSE, 0, $3, $3)
		 ON CONFLICT (jid) DO UPDATE SET username = EXCLUDED.username, updated_at = EXCLUDED.updated_at`,
		user.JID, user.Username, now)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении пользователя: %w", err)
	}

	return nil
}

func (r *UserRepository) IsBanned(ctx context.Context, jid string) (bool, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	var banned bool

	err := querier.QueryRow(ctx, "SELECT banned FROM users WHERE jid = $1", jid).Scan(&banned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Неизвестный отправитель не забанен по умолчанию.
			return false, nil
		}

		return false, fmt.Errorf("ошибка при проверке блокировки: %w", err)
	}

	return banned, nil
}

func (r *UserRepository) SetBanned(ctx context.Context, jid string, banned bool) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	now := time.Now()

	_, err := querier.Exec(ctx,
		`INSERT INTO users (jid, username, banned, commands_used, created_at, updated_at)
		 VALUES ($1, '', $2, 0, $3, $3)
		 ON CONFLICT (jid) DO UPDATE SET banned = EXCLUDED.banned, updated_at = EXCLUDED.updated_at`,
		jid, banned, now)
	if err != nil {
		return fmt.Errorf("ошибка при изменении блокировки: %w", err)
	}

	return nil
}

func (r *UserRepository) IncrementCommandUsage(ctx context.Context, jid string) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	tag, err := querier.Exec(ctx,
		"UPDATE users SET commands_used = commands_used + 1, updated_at = $1 WHERE jid = $2",
		time.Now(), jid)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении счётчика команд: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &customerrors.ErrUserNotFound{JID: jid}
	}

	return nil
}

func (r *UserRepository) AllJIDs(ctx context.Context) ([]string, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	rows, err := querier.Query(ctx, "SELECT jid FROM users ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка пользователей: %w", err)
	}
	defer rows.Close()

	var jids []string

	for rows.Next() {
		var jid string

		if err := rows.Scan(&jid); err != nil {
			return nil, &customerrors.ErrSQLScan{Entity: "пользователь", Cause: err}
		}

		jids = append(jids, jid)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при чтении списка пользователей: %w", err)
	}

	return jids, nil
}
