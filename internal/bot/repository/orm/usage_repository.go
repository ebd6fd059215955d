package orm

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/Matthew11K/wa-media-bot/internal/database"
	customerrors "github.com/Matthew11K/wa-media-bot/internal/domain/errors"
	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
	"github.com/Matthew11K/wa-media-bot/pkg/txs"
)

type UsageRepository struct {
	db *database.PostgresDB
	sq sq.StatementBuilderType
}

func NewUsageRepository(db *database.PostgresDB) *UsageRepository {
	return &UsageRepository{
		db: db,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UsageRepository) Append(ctx context.Context, record *models.UsageRecord) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	chatJID := sql.NullString{String: record.ChatJID, Valid: record.ChatJID != ""}

	insertQuery := r.sq.Insert("usage_records").
		Columns("caller_jid", "command", "chat_jid", "created_at").
		Values(record.CallerJID, record.Command, chatJID, time.Now()).
		Suffix("RETURNING id")

	query, args, err := insertQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "запись использования команды", Cause: err}
	}

	err = querier.QueryRow(ctx, query, args...).Scan(&record.ID)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: "запись использования команды", Cause: err}
	}

	return nil
}

func (r *UsageRepository) Recent(ctx context.Context, limit int) ([]*models.UsageRecord, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	selectQuery := r.sq.Select("id", "caller_jid", "command", "chat_jid", "created_at").
		From("usage_records").
		OrderBy("id DESC").
		Limit(uint64(limit))

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "получение истории команд", Cause: err}
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "получение истории команд", Cause: err}
	}
	defer rows.Close()

	var records []*models.UsageRecord

	for rows.Next() {
		record := &models.UsageRecord{}

		var chatJID sql.NullString

		if err := rows.Scan(&record.ID, &record.CallerJID, &record.Command, &chatJID, &record.CreatedAt); err != nil {
			return nil, &customerrors.ErrSQLScan{Entity: "запись использования", Cause: err}
		}

		if chatJID.Valid {
			record.ChatJID = chatJID.String
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "чтение истории команд", Cause: err}
	}

	return records, nil
}
