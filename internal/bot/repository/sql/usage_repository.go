package sql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Matthew11K/wa-media-bot/internal/database"
	customerrors "github.com/Matthew11K/wa-media-bot/internal/domain/errors"
	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
	"github.com/Matthew11K/wa-media-bot/pkg/txs"
)

type UsageRepository struct {
	db *database.PostgresDB
}

func NewUsageRepository(db *database.PostgresDB) *UsageRepository {
	return &UsageRepository{db: db}
}

func (r *UsageRepository) Append(ctx context.Context, record *models.UsageRecord) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	// Для личных чатов идентификатор разговора хранится как NULL.
	chatJID := sql.NullString{String: record.ChatJID, Valid: record.ChatJID != ""}

	err := querier.QueryRow(ctx,
		"INSERT INTO usage_records (caller_jid, command, chat_jid, created_at) VALUES ($1, $2, $3, $4) RETURNING id",
		record.CallerJID, record.Command, chatJID, createdAt).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("ошибка при записи использования команды: %w", err)
	}

	return nil
}

func (r *UsageRepository) Recent(ctx context.Context, limit int) ([]*models.UsageRecord, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	rows, err := querier.Query(ctx,
		"SELECT id, caller_jid, command, chat_jid, created_at FROM usage_records ORDER BY id DESC LIMIT $1",
		limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении журнала команд: %w", err)
	}
	defer rows.Close()

	var records []*models.UsageRecord

	for rows.Next() {
		record := &models.UsageRecord{}

		var chatJID sql.NullString

		if err := rows.Scan(&record.ID, &record.CallerJID, &record.Command, &chatJID, &record.CreatedAt); err != nil {
			return nil, &customerrors.ErrSQLScan{Entity: "запись журнала", Cause: err}
		}

		record.ChatJID = chatJID.String
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при чтении журнала команд: %w", err)
	}

	return records, nil
}
