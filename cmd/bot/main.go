package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Matthew11K/wa-media-bot/internal/bot/cache"
	"github.com/Matthew11K/wa-media-bot/internal/bot/clients"
	"github.com/Matthew11K/wa-media-bot/internal/bot/clients/kafka"
	"github.com/Matthew11K/wa-media-bot/internal/bot/command"
	"github.com/Matthew11K/wa-media-bot/internal/bot/dispatcher"
	"github.com/Matthew11K/wa-media-bot/internal/bot/repository"
	"github.com/Matthew11K/wa-media-bot/internal/bot/selection"
	botservice "github.com/Matthew11K/wa-media-bot/internal/bot/service"
	"github.com/Matthew11K/wa-media-bot/internal/bot/whatsapp"
	"github.com/Matthew11K/wa-media-bot/internal/common/metrics"
	"github.com/Matthew11K/wa-media-bot/internal/common/middleware"
	"github.com/Matthew11K/wa-media-bot/internal/config"
	"github.com/Matthew11K/wa-media-bot/internal/database"
	"github.com/Matthew11K/wa-media-bot/internal/scheduler"
	"github.com/Matthew11K/wa-media-bot/pkg"
	"github.com/Matthew11K/wa-media-bot/pkg/txs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка запуска сервиса: %v\n", err)
		os.Exit(1)
	}
}

//nolint:funlen // Длина функции обусловлена необходимостью последовательной инициализации всех компонентов.
func run() error {
	appLogger := pkg.NewLogger(os.Stdout)

	cfg := config.LoadConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.NewPostgresDB(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при подключении к базе данных",
			"error", err,
		)

		return fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	defer db.Close()

	txManager := txs.NewTxManager(db.Pool, appLogger)

	repoFactory := repository.NewFactory(db, cfg, appLogger)

	userRepo, err := repoFactory.CreateUserRepository()
	if err != nil {
		appLogger.Error("Ошибка при создании репозитория пользователей",
			"error", err,
		)

		return fmt.Errorf("ошибка создания репозитория пользователей: %w", err)
	}

	usageRepo, err := repoFactory.CreateUsageRepository()
	if err != nil {
		appLogger.Error("Ошибка при создании репозитория истории команд",
			"error", err,
		)

		return fmt.Errorf("ошибка создания репозитория истории команд: %w", err)
	}

	searchCache, err := cache.NewRedisSearchCache(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB, cfg.RedisCacheTTL, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при подключении к Redis",
			"error", err,
		)

		return fmt.Errorf("ошибка подключения к Redis: %w", err)
	}

	defer func() {
		if err := searchCache.Close(); err != nil {
			appLogger.Error("Ошибка при закрытии соединения с Redis",
				"error", err,
			)
		}
	}()

	videoClient := clients.NewVideoClient(cfg.VideoAPIBaseURL, cfg, appLogger)
	movieClient := clients.NewMovieClient(cfg.MovieAPIBaseURL, cfg.MovieAPIToken, cfg, appLogger)
	subtitleClient := clients.NewSubtitleClient(cfg.SubtitleAPIBaseURL, cfg.SubtitleAPIToken, cfg, appLogger)
	downloaderClient := clients.NewDownloaderClient(cfg.DownloaderBaseURL, cfg, appLogger)

	registry := command.NewRegistry()
	selections := selection.NewStore(cfg.SelectionTTL)

	usageService := botservice.NewUsageService(userRepo, usageRepo, txManager, appLogger)

	limiter := middleware.NewCallerRateLimiter(ctx, cfg.RateLimitMessages, cfg.RateLimitWindow, appLogger)

	// Сервис и транспорт зависят друг от друга: сначала собираем сервис
	// с отложенной привязкой мессенджера через диспетчер.
	var waClient *whatsapp.Client

	messenger := &deferredMessenger{}
	groups := &deferredGroups{}

	botSvc := botservice.NewBotService(
		registry,
		selections,
		messenger,
		groups,
		videoClient,
		movieClient,
		subtitleClient,
		downloaderClient,
		searchCache,
		userRepo,
		usageRepo,
		cfg.SearchResultsLimit,
		cfg.CommandPrefix,
		appLogger,
	)

	botSvc.RegisterCommands()

	disp := dispatcher.NewDispatcher(
		registry,
		selections,
		botSvc,
		messenger,
		userRepo,
		usageService,
		limiter,
		cfg.CommandPrefix,
		cfg.OwnerJID,
		appLogger,
	)

	waClient, err = whatsapp.NewClient(ctx, cfg.DatabaseURL, cfg.WhatsAppDeviceName, disp, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при создании клиента WhatsApp",
			"error", err,
		)

		return fmt.Errorf("ошибка создания клиента WhatsApp: %w", err)
	}

	messenger.bind(waClient)
	groups.bind(waClient)

	if err := waClient.Connect(ctx); err != nil {
		appLogger.Error("Ошибка при подключении к WhatsApp",
			"error", err,
		)

		return fmt.Errorf("ошибка подключения к WhatsApp: %w", err)
	}

	defer waClient.Disconnect()

	brokers := strings.Split(cfg.KafkaBrokers, ",")
	kafkaConsumer := kafka.NewConsumer(
		brokers,
		"wa-media-bot-group",
		cfg.TopicDownloadReady,
		cfg.TopicDeadLetterQueue,
		botSvc,
		appLogger,
	)

	kafkaConsumer.Start(ctx)
	appLogger.Info("Kafka консьюмер успешно запущен")

	defer func() {
		if err := kafkaConsumer.Close(); err != nil {
			appLogger.Error("Ошибка при закрытии Kafka консьюмера",
				"error", err,
			)
		}
	}()

	sweepScheduler := scheduler.NewScheduler(selections, cfg.SelectionSweepInterval, appLogger)
	sweepScheduler.Start()

	defer sweepScheduler.Stop()

	metricsServer := metrics.NewMetricsServer(cfg.MetricsPort, appLogger)

	go func() {
		if err := metricsServer.Start(ctx); err != nil {
			appLogger.Error("Ошибка при запуске сервера метрик",
				"error", err,
			)
		}
	}()

	appLogger.Info("Бот запущен и ожидает сообщения")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	appLogger.Info("Получен сигнал завершения",
		"signal", sig.String(),
	)

	cancel()

	return nil
}

// deferredMessenger разрывает цикл инициализации сервис -> транспорт ->
// диспетчер -> сервис: методы доступны после bind.
type deferredMessenger struct {
	client *whatsapp.Client
}

func (m *deferredMessenger) bind(client *whatsapp.Client) {
	m.client = client
}

func (m *deferredMessenger) SendText(ctx context.Context, chatJID, text string) error {
	return m.client.SendText(ctx, chatJID, text)
}

func (m *deferredMessenger) SendMention(ctx context.Context, chatJID, text string, mentionJIDs []string) error {
	return m.client.SendMention(ctx, chatJID, text, mentionJIDs)
}

type deferredGroups struct {
	client *whatsapp.Client
}

func (g *deferredGroups) bind(client *whatsapp.Client) {
	g.client = client
}

func (g *deferredGroups) GroupParticipants(ctx context.Context, chatJID string) ([]string, error) {
	return g.client.GroupParticipants(ctx, chatJID)
}
