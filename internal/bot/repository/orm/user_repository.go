package orm

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/Matthew11K/wa-media-bot/internal/database"
	customerrors "github.com/Matthew11K/wa-media-bot/internal/domain/errors"
	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
	"github.com/Matthew11K/wa-media-bot/pkg/txs"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db *database.PostgresDB
	sq sq.StatementBuilderType
}

func NewUserRepository(db *database.PostgresDB) *UserRepository {
	return &UserRepository{
		db: db,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UserRepository) Find(ctx context.Context, jid string) (*models.User, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	selectQuery := r.sq.Select("jid", "username", "banned", "commands_used", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"jid": jid})

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "получение пользователя", Cause: err}
	}

	user := &models.User{}

	err = querier.QueryRow(ctx, query, args...).
		Scan(&user.JID, &user.Username, &user.Banned, &user.CommandsUsed, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &customerrors.ErrUserNotFound{JID: jid}
		}

		return nil, &customerrors.ErrSQLExecution{Operation: "получение пользователя", Cause: err}
	}

	return user, nil
}

func (r *UserRepository) Upsert(ctx context.Context, user *models.User) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	now := time.Now()
	upsertQuery := r.sq.Insert("users").
		Columns("jid", "username", "banned", "commands_used", "created_at", "updated_at").
		Values(user.JID, user.Username, false, 0, now, now).
		Suffix("ON CONFLICT (jid) DO UPDATE SET username = EXCLUDED.username, updated_at = EXCLUDED.updated_at")

	query, args, err := upsertQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "вставка/обновление пользователя", Cause: err}
	}

	_, err = querier.Exec(ctx, query, args...)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: "вставка/обновление пользователя", Cause: err}
	}

	return nil
}

func (r *UserRepository) IsBanned(ctx context.Context, jid string) (bool, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	selectQuery := r.sq.Select("banned").
		From("users").
		Where(sq.Eq{"jid": jid})

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return false, &customerrors.ErrBuildSQLQuery{Operation: "проверка блокировки", Cause: err}
	}

	var banned bool

	err = querier.QueryRow(ctx, query, args...).Scan(&banned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}

		return false, &customerrors.ErrSQLExecution{Operation: "проверка блокировки", Cause: err}
	}

	return banned, nil
}

func (r *UserRepository) SetBanned(ctx context.Context, jid string, banned bool) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	now := time.Now()
	upsertQuery := r.sq.Insert("users").
		Columns("jid", "username", "banned", "commands_used", "created_at", "updated_at").
		Values(jid, "", banned, 0, now, now).
		Suffix("ON CONFLICT (jid) DO UPDATE SET banned = EXCLUDED.banned, updated_at = EXCLUDED.updated_at")

	query, args, err := upsertQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "изменение блокировки", Cause: err}
	}

	_, err = querier.Exec(ctx, query, args...)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: "изменение блокировки", Cause: err}
	}

	return nil
}

func (r *UserRepository) IncrementCommandUsage(ctx context.Context, jid string) error {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	updateQuery := r.sq.Update("users").
		Set("commands_used", sq.Expr("commands_used + 1")).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"jid": jid})

	query, args, err := updateQuery.ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: "обновление счётчика команд", Cause: err}
	}

	tag, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: "обновление счётчика команд", Cause: err}
	}

	if tag.RowsAffected() == 0 {
		return &customerrors.ErrUserNotFound{JID: jid}
	}

	return nil
}

func (r *UserRepository) AllJIDs(ctx context.Context) ([]string, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	selectQuery := r.sq.Select("jid").
		From("users").
		OrderBy("created_at")

	query, args, err := selectQuery.ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: "получение списка пользователей", Cause: err}
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: "получение списка пользователей", Cause: err}
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
		return nil, &customerrors.ErrSQLExecution{Operation: "чтение списка пользователей", Cause: err}
	}

	return jids, nil
}
