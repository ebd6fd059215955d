package repository

import (
	"log/slog"

	"github.com/Matthew11K/wa-media-bot/internal/bot/repository/orm"
	sqlrepo "github.com/Matthew11K/wa-media-bot/internal/bot/repository/sql"
	"github.com/Matthew11K/wa-media-bot/internal/config"
	"github.com/Matthew11K/wa-media-bot/internal/database"
	"github.com/Matthew11K/wa-media-bot/internal/domain/errors"
	"github.com/Matthew11K/wa-media-bot/internal/domain/repositories"
)

type Factory struct {
	db     *database.PostgresDB
	config *config.Config
	logger *slog.Logger
}

func NewFactory(db *database.PostgresDB, config *config.Config, logger *slog.Logger) *Factory {
	return &Factory{
		db:     db,
		config: config,
		logger: logger,
	}
}

func (f *Factory) CreateUserRepository() (repositories.UserRepository, error) {
	switch f.config.DatabaseAccessType {
	case config.SquirrelAccess:
		f.logger.Info("Создание ORM (Squirrel) репозитория пользователей")
		return orm.NewUserRepository(f.db), nil
	case config.SQLAccess:
		f.logger.Info("Создание SQL репозитория пользователей")
		return sqlrepo.NewUserRepository(f.db), nil
	default:
		return nil, &errors.ErrUnknownDBAccessType{AccessType: string(f.config.DatabaseAccessType)}
	}
}

func (f *Factory) CreateUsageRepository() (repositories.UsageRepository, error) {
	switch f.config.DatabaseAccessType {
	case config.SquirrelAccess:
		f.logger.Info("Создание ORM (Squirrel) репозитория истории команд")
		return orm.NewUsageRepository(f.db), nil
	case config.SQLAccess:
		f.logger.Info("Создание SQL репозитория истории команд")
		return sqlrepo.NewUsageRepository(f.db), nil
	default:
		return nil, &errors.ErrUnknownDBAccessType{AccessType: string(f.config.DatabaseAccessType)}
	}
}
