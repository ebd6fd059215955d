package service

import (
	"context"
	"log/slog"

	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
	"github.com/Matthew11K/wa-media-bot/internal/domain/repositories"
)

type Transactor interface {
	WithTransaction(ctx context.Context, txFunc func(ctx context.Context) error) error
}

// UsageService пишет журнал использования команд. Профиль отправителя и
// запись журнала фиксируются в одной транзакции, счётчик команд
// обновляется после неё и его сбой не считается ошибкой записи.
type UsageService struct {
	userRepo  repositories.UserRepository
	usageRepo repositories.UsageRepository
	txManager Transactor
	logger    *slog.Logger
}

func NewUsageService(
	userRepo repositories.UserRepository,
	usageRepo repositories.UsageRepository,
	txManager Transactor,
	logger *slog.Logger,
) *UsageService {
	return &UsageService{
		userRepo:  userRepo,
		usageRepo: usageRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (s *UsageService) Record(ctx context.Context, caller *models.CallerContext, commandName string) error {
	chatJID := ""
	if caller.IsGroup {
		chatJID = caller.ChatJID
	}

	err := s.txManager.WithTransaction(ctx, func(ctx context.Context) error {
		user := &models.User{
			JID:      caller.CallerJID,
			Username: caller.Username,
		}

		if err := s.userRepo.Upsert(ctx, user); err != nil {
			return err
		}

		record := &models.UsageRecord{
			CallerJID: caller.CallerJID,
			Command:   commandName,
			ChatJID:   chatJID,
		}

		return s.usageRepo.Append(ctx, record)
	})
	if err != nil {
		return err
	}

	if err := s.userRepo.IncrementCommandUsage(ctx, caller.CallerJID); err != nil {
		s.logger.Warn("Не удалось обновить счётчик команд пользователя",
			"error", err,
			"caller", caller.CallerJID,
		)
	}

	return nil
}
