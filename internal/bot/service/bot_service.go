package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Matthew11K/wa-media-bot/internal/bot/command"
	"github.com/Matthew11K/wa-media-bot/internal/bot/selection"
	domainerrors "github.com/Matthew11K/wa-media-bot/internal/domain/errors"
	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
	"github.com/Matthew11K/wa-media-bot/internal/domain/repositories"
)

type Messenger interface {
	SendText(ctx context.Context, chatJID, text string) error

	SendMention(ctx context.Context, chatJID, text string, mentionJIDs []string) error
}

type GroupDirectory interface {
	GroupParticipants(ctx context.Context, chatJID string) ([]string, error)
}

type VideoSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]*models.VideoResult, error)

	Formats(ctx context.Context, videoID string) ([]*models.QualityOption, error)
}

type MovieSearcher interface {
	SearchMovies(ctx context.Context, query string, limit int) ([]*models.MovieResult, error)

	SearchTVShows(ctx context.Context, query string, limit int) ([]*models.TVResult, error)
}

type SubtitleSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]*models.SubtitleResult, error)
}

type DownloadEnqueuer interface {
	Enqueue(ctx context.Context, job *models.DownloadJob) (string, error)
}

type SearchCache interface {
	GetVideos(ctx context.Context, query string) ([]*models.VideoResult, error)
	SetVideos(ctx context.Context, query string, results []*models.VideoResult) error
	GetMovies(ctx context.Context, query string) ([]*models.MovieResult, error)
	SetMovies(ctx context.Context, query string, results []*models.MovieResult) error
	GetTVShows(ctx context.Context, query string) ([]*models.TVResult, error)
	SetTVShows(ctx context.Context, query string, results []*models.TVResult) error
	GetSubtitles(ctx context.Context, query string) ([]*models.SubtitleResult, error)
	SetSubtitles(ctx context.Context, query string, results []*models.SubtitleResult) error
}

// BotService содержит обработчики всех команд и логику разрешения
// ожидающих выборов. Диспетчер видит обработчики как непрозрачные
// функции, поэтому вся доменная логика собрана здесь.
type BotService struct {
	registry    *command.Registry
	selections  *selection.Store
	messenger   Messenger
	groups      GroupDirectory
	videos      VideoSearcher
	movies      MovieSearcher
	subtitles   SubtitleSearcher
	downloader  DownloadEnqueuer
	cache       SearchCache
	userRepo    repositories.UserRepository
	usageRepo   repositories.UsageRepository
	resultLimit int
	prefix      string
	logger      *slog.Logger
}

func NewBotService(
	registry *command.Registry,
	selections *selection.Store,
	messenger Messenger,
	groups GroupDirectory,
	videos VideoSearcher,
	movies MovieSearcher,
	subtitles SubtitleSearcher,
	downloader DownloadEnqueuer,
	cache SearchCache,
	userRepo repositories.UserRepository,
	usageRepo repositories.UsageRepository,
	resultLimit int,
	prefix string,
	logger *slog.Logger,
) *BotService {
	return &BotService{
		registry:    registry,
		selections:  selections,
		messenger:   messenger,
		groups:      groups,
		videos:      videos,
		movies:      movies,
		subtitles:   subtitles,
		downloader:  downloader,
		cache:       cache,
		userRepo:    userRepo,
		usageRepo:   usageRepo,
		resultLimit: resultLimit,
		prefix:      prefix,
		logger:      logger,
	}
}

// RegisterCommands наполняет реестр всеми командами бота.
func (s *BotService) RegisterCommands() {
	s.registry.Register(&models.CommandDefinition{
		Name:        "ping",
		Category:    models.CategoryGeneral,
		Aliases:     []string{"p"},
		Description: "Проверить, что бот работает",
		Handler:     s.handlePing,
	})

	s.registry.Register(&models.CommandDefinition{
		Name:        "help",
		Category:    models.CategoryGeneral,
		Aliases:     []string{"h", "menu"},
		Description: "Показать список доступных команд",
		Handler:     s.handleHelp,
	})

	s.registry.Register(&models.CommandDefinition{
		Name:        "video",
		Category:    models.CategoryGeneral,
		Aliases:     []string{"v", "yt"},
		Description: "Найти видео по запросу",
		Handler:     s.handleVideoSearch,
	})

	s.registry.Register(&models.CommandDefinition{
		Name:        "movie",
		Category:    models.CategoryGeneral,
		Aliases:     []string{"m"},
		Description: "Найти фильм по названию",
		Handler:     s.handleMovieSearch,
	})

	s.registry.Register(&models.CommandDefinition{
		Name:        "tv",
		Category:    models.CategoryGeneral,
		Aliases:     []string{"series"},
		Description: "Найти сериал по названию",
		Handler:     s.handleTVSearch,
	})

	s.registry.Register(&models.CommandDefinition{
		Name:        "sub",
		Category:    models.CategoryGeneral,
		Aliases:     []string{"subtitle", "subs"},
		Description: "Найти субтитры по названию",
		Handler:     s.handleSubtitleSearch,
	})

	s.registry.Register(&models.CommandDefinition{
		Name:        "tagall",
		Category:    models.CategoryGroup,
		Aliases:     []string{"everyone"},
		GroupOnly:   true,
		AdminOnly:   true,
		Description: "Упомянуть всех участников группы",
		Handler:     s.handleTagAll,
	})

	s.registry.Register(&models.CommandDefinition{
		Name:        "ban",
		Category:    models.CategoryModeration,
		OwnerOnly:   true,
		Description: "Заблокировать пользователя",
		Handler:     s.handleBan,
	})

	s.registry.Register(&models.CommandDefinition{
		Name:        "unban",
		Category:    models.CategoryModeration,
		OwnerOnly:   true,
		Description: "Разблокировать пользователя",
		Handler:     s.handleUnban,
	})

	s.registry.Register(&models.CommandDefinition{
		Name:        "stats",
		Category:    models.CategoryOwner,
		OwnerOnly:   true,
		Description: "Показать статистику использования",
		Handler:     s.handleStats,
	})

	s.registry.Register(&models.CommandDefinition{
		Name:        "broadcast",
		Category:    models.CategoryOwner,
		Aliases:     []string{"bc"},
		OwnerOnly:   true,
		Description: "Разослать сообщение всем пользователям",
		Handler:     s.handleBroadcast,
	})
}

// handlePing измеряет обращение к хранилищу пользователей и отвечает
// замером как показателем отклика бота.
func (s *BotService) handlePing(ctx context.Context, caller *models.CallerContext, _ []string) error {
	start := time.Now()

	if _, err := s.userRepo.IsBanned(ctx, caller.CallerJID); err != nil {
		s.logger.Warn("Не удалось измерить обращение к хранилищу",
			"error", err,
			"caller", caller.CallerJID,
		)
	}

	elapsed := float64(time.Since(start).Microseconds()) / 1000

	return s.messenger.SendText(ctx, caller.ChatJID,
		fmt.Sprintf("Понг! Бот на связи. Время отклика: %.2f мс.", elapsed))
}

func (s *BotService) handleHelp(ctx context.Context, caller *models.CallerContext, _ []string) error {
	var sb strings.Builder

	sb.WriteString("Доступные команды:\n")

	categories := []struct {
		category models.Category
		title    string
	}{
		{models.CategoryGeneral, "Общие"},
		{models.CategoryGroup, "Группы"},
		{models.CategoryModeration, "Модерация"},
		{models.CategorySettings, "Настройки"},
		{models.CategoryOwner, "Владелец"},
	}

	for _, c := range categories {
		defs := s.registry.ListByCategory(c.category)
		if len(defs) == 0 {
			continue
		}

		visible := make([]*models.CommandDefinition, 0, len(defs))

		for _, def := range defs {
			if def.OwnerOnly && !caller.IsOwner {
				continue
			}

			visible = append(visible, def)
		}

		if len(visible) == 0 {
			continue
		}

		sb.WriteString("\n*" + c.title + "*\n")

		for _, def := range visible {
			sb.WriteString(fmt.Sprintf("%s%s - %s\n", s.prefix, def.Name, def.Description))
		}
	}

	return s.messenger.SendText(ctx, caller.ChatJID, sb.String())
}

func (s *BotService) handleVideoSearch(ctx context.Context, caller *models.CallerContext, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return s.messenger.SendText(ctx, caller.ChatJID,
			fmt.Sprintf("Укажите поисковый запрос: %svideo <название>", s.prefix))
	}

	results, err := s.searchVideos(ctx, query)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		return s.messenger.SendText(ctx, caller.ChatJID, "По вашему запросу ничего не найдено.")
	}

	payload := models.VideoSearchPayload{Query: query, Results: derefVideos(results)}
	s.selections.Put(caller.CallerJID, payload)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Результаты поиска по запросу «%s»:\n\n", query))

	for i, r := range results {
		sb.WriteString(fmt.Sprintf("%d. %s (%s) - %s\n", i+1, r.Title, r.Duration, r.Channel))
	}

	sb.WriteString("\nОтправьте номер, чтобы выбрать видео.")

	return s.messenger.SendText(ctx, caller.ChatJID, sb.String())
}

func (s *BotService) searchVideos(ctx context.Context, query string) ([]*models.VideoResult, error) {
	cached, err := s.cache.GetVideos(ctx, query)
	if err != nil {
		s.logger.Warn("Не удалось прочитать кэш поиска видео",
			"error", err,
			"query", query,
		)
	}

	if cached != nil {
		return cached, nil
	}

	results, err := s.videos.Search(ctx, query, s.resultLimit)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetVideos(ctx, query, results); err != nil {
		s.logger.Warn("Не удалось сохранить результаты поиска видео в кэш",
			"error", err,
			"query", query,
		)
	}

	return results, nil
}

func (s *BotService) handleMovieSearch(ctx context.Context, caller *models.CallerContext, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return s.messenger.SendText(ctx, caller.ChatJID,
			fmt.Sprintf("Укажите название фильма: %smovie <название>", s.prefix))
	}

	results, err := s.cache.GetMovies(ctx, query)
	if err != nil {
		s.logger.Warn("Не удалось прочитать кэш поиска фильмов",
			"error", err,
			"query", query,
		)
	}

	if results == nil {
		results, err = s.movies.SearchMovies(ctx, query, s.resultLimit)
		if err != nil {
			return err
		}

		if err := s.cache.SetMovies(ctx, query, results); err != nil {
			s.logger.Warn("Не удалось сохранить результаты поиска фильмов в кэш",
				"error", err,
				"query", query,
			)
		}
	}

	if len(results) == 0 {
		return s.messenger.SendText(ctx, caller.ChatJID, "По вашему запросу ничего не найдено.")
	}

	payload := models.MovieSearchPayload{Query: query, Results: derefMovies(results)}
	s.selections.Put(caller.CallerJID, payload)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Найденные фильмы по запросу «%s»:\n\n", query))

	for i, r := range results {
		sb.WriteString(fmt.Sprintf("%d. %s (%d) ★%s\n", i+1, r.Title, r.Year, r.Rating))
	}

	sb.WriteString("\nОтправьте номер, чтобы выбрать фильм.")

	return s.messenger.SendText(ctx, caller.ChatJID, sb.String())
}

func (s *BotService) handleTVSearch(ctx context.Context, caller *models.CallerContext, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return s.messenger.SendText(ctx, caller.ChatJID,
			fmt.Sprintf("Укажите название сериала: %stv <название>", s.prefix))
	}

	results, err := s.cache.GetTVShows(ctx, query)
	if err != nil {
		s.logger.Warn("Не удалось прочитать кэш поиска сериалов",
			"error", err,
			"query", query,
		)
	}

	if results == nil {
		results, err = s.movies.SearchTVShows(ctx, query, s.resultLimit)
		if err != nil {
			return err
		}

		if err := s.cache.SetTVShows(ctx, query, results); err != nil {
			s.logger.Warn("Не удалось сохранить результаты поиска сериалов в кэш",
				"error", err,
				"query", query,
			)
		}
	}

	if len(results) == 0 {
		return s.messenger.SendText(ctx, caller.ChatJID, "По вашему запросу ничего не найдено.")
	}

	payload := models.TVSearchPayload{Query: query, Results: derefTVShows(results)}
	s.selections.Put(caller.CallerJID, payload)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Найденные сериалы по запросу «%s»:\n\n", query))

	for i, r := range results {
		sb.WriteString(fmt.Sprintf("%d. %s (%d), сезонов: %d\n", i+1, r.Title, r.Year, r.Seasons))
	}

	sb.WriteString("\nОтправьте номер, чтобы выбрать сериал.")

	return s.messenger.SendText(ctx, caller.ChatJID, sb.String())
}

func (s *BotService) handleSubtitleSearch(ctx context.Context, caller *models.CallerContext, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return s.messenger.SendText(ctx, caller.ChatJID,
			fmt.Sprintf("Укажите название: %ssub <название>", s.prefix))
	}

	results, err := s.cache.GetSubtitles(ctx, query)
	if err != nil {
		s.logger.Warn("Не удалось прочитать кэш поиска субтитров",
			"error", err,
			"query", query,
		)
	}

	if results == nil {
		results, err = s.subtitles.Search(ctx, query, s.resultLimit)
		if err != nil {
			return err
		}

		if err := s.cache.SetSubtitles(ctx, query, results); err != nil {
			s.logger.Warn("Не удалось сохранить результаты поиска субтитров в кэш",
				"error", err,
				"query", query,
			)
		}
	}

	if len(results) == 0 {
		return s.messenger.SendText(ctx, caller.ChatJID, "По вашему запросу ничего не найдено.")
	}

	payload := models.SubtitleSearchPayload{Query: query, Results: derefSubtitles(results)}
	s.selections.Put(caller.CallerJID, payload)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Найденные субтитры по запросу «%s»:\n\n", query))

	for i, r := range results {
		sb.WriteString(fmt.Sprintf("%d. %s [%s]\n", i+1, r.Title, r.Language))
	}

	sb.WriteString("\nОтправьте номер, чтобы выбрать субтитры.")

	return s.messenger.SendText(ctx, caller.ChatJID, sb.String())
}

func (s *BotService) handleTagAll(ctx context.Context, caller *models.CallerContext, args []string) error {
	participants, err := s.groups.GroupParticipants(ctx, caller.ChatJID)
	if err != nil {
		return err
	}

	note := strings.TrimSpace(strings.Join(args, " "))
	if note == "" {
		note = "Внимание всем!"
	}

	var sb strings.Builder

	sb.WriteString(note + "\n\n")

	for _, jid := range participants {
		sb.WriteString("@" + strings.SplitN(jid, "@", 2)[0] + " ")
	}

	return s.messenger.SendMention(ctx, caller.ChatJID, sb.String(), participants)
}

func (s *BotService) handleBan(ctx context.Context, caller *models.CallerContext, args []string) error {
	if len(args) == 0 {
		return s.messenger.SendText(ctx, caller.ChatJID,
			fmt.Sprintf("Укажите пользователя: %sban <jid>", s.prefix))
	}

	target := args[0]

	if err := s.userRepo.SetBanned(ctx, target, true); err != nil {
		return err
	}

	return s.messenger.SendText(ctx, caller.ChatJID, fmt.Sprintf("Пользователь %s заблокирован.", target))
}

func (s *BotService) handleUnban(ctx context.Context, caller *models.CallerContext, args []string) error {
	if len(args) == 0 {
		return s.messenger.SendText(ctx, caller.ChatJID,
			fmt.Sprintf("Укажите пользователя: %sunban <jid>", s.prefix))
	}

	target := args[0]

	if err := s.userRepo.SetBanned(ctx, target, false); err != nil {
		return err
	}

	return s.messenger.SendText(ctx, caller.ChatJID, fmt.Sprintf("Пользователь %s разблокирован.", target))
}

func (s *BotService) handleStats(ctx context.Context, caller *models.CallerContext, _ []string) error {
	jids, err := s.userRepo.AllJIDs(ctx)
	if err != nil {
		return err
	}

	records, err := s.usageRepo.Recent(ctx, 10)
	if err != nil {
		return err
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Пользователей: %d\n", len(jids)))
	sb.WriteString(fmt.Sprintf("Ожидающих выборов: %d\n", s.selections.Len()))

	if len(records) > 0 {
		sb.WriteString("\nПоследние команды:\n")

		for _, r := range records {
			sb.WriteString(fmt.Sprintf("%s - %s%s\n", r.CallerJID, s.prefix, r.Command))
		}
	}

	return s.messenger.SendText(ctx, caller.ChatJID, sb.String())
}

func (s *BotService) handleBroadcast(ctx context.Context, caller *models.CallerContext, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return s.messenger.SendText(ctx, caller.ChatJID,
			fmt.Sprintf("Укажите текст рассылки: %sbroadcast <текст>", s.prefix))
	}

	jids, err := s.userRepo.AllJIDs(ctx)
	if err != nil {
		return err
	}

	sent := 0

	for _, jid := range jids {
		if err := s.messenger.SendText(ctx, jid, text); err != nil {
			s.logger.Warn("Не удалось отправить рассылку пользователю",
				"error", err,
				"jid", jid,
			)

			continue
		}

		sent++
	}

	return s.messenger.SendText(ctx, caller.ChatJID, fmt.Sprintf("Рассылка отправлена %d из %d пользователей.", sent, len(jids)))
}

// Resolve исполняет изъятый из хранилища слот выбора. Номер вне диапазона
// возвращает ErrInvalidSelection; слот при этом уже потреблён и повторная
// попытка требует нового поиска.
func (s *BotService) Resolve(ctx context.Context, caller *models.CallerContext, sel *models.PendingSelection, choice int) error {
	if choice < 1 || choice > sel.Payload.Len() {
		return &domainerrors.ErrInvalidSelection{Number: choice, Max: sel.Payload.Len()}
	}

	switch payload := sel.Payload.(type) {
	case models.VideoSearchPayload:
		return s.resolveVideoChoice(ctx, caller, payload.Results[choice-1])
	case models.VideoQualityPayload:
		return s.resolveQualityChoice(ctx, caller, payload.Video, payload.Options[choice-1])
	case models.MovieSearchPayload:
		return s.resolveMovieChoice(ctx, caller, payload.Results[choice-1])
	case models.TVSearchPayload:
		return s.resolveTVChoice(ctx, caller, payload.Results[choice-1])
	case models.SubtitleSearchPayload:
		return s.resolveSubtitleChoice(ctx, caller, payload.Results[choice-1])
	default:
		return &domainerrors.ErrUnknownSelectionKind{Kind: string(sel.Payload.Kind())}
	}
}

func (s *BotService) resolveVideoChoice(ctx context.Context, caller *models.CallerContext, video models.VideoResult) error {
	options, err := s.videos.Formats(ctx, video.ID)
	if err != nil {
		return err
	}

	if len(options) == 0 {
		return s.enqueueDownload(ctx, caller, &models.DownloadJob{
			ChatJID:   caller.ChatJID,
			CallerJID: caller.CallerJID,
			Kind:      "video",
			Title:     video.Title,
			SourceURL: video.URL,
		})
	}

	payload := models.VideoQualityPayload{Video: video, Options: derefQualities(options)}
	s.selections.Put(caller.CallerJID, payload)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Выберите качество для «%s»:\n\n", video.Title))

	for i, o := range options {
		sb.WriteString(fmt.Sprintf("%d. %s (%s, %s)\n", i+1, o.Label, o.Format, o.Size))
	}

	sb.WriteString("\nОтправьте номер варианта.")

	return s.messenger.SendText(ctx, caller.ChatJID, sb.String())
}

func (s *BotService) resolveQualityChoice(
	ctx context.Context,
	caller *models.CallerContext,
	video models.VideoResult,
	option models.QualityOption,
) error {
	return s.enqueueDownload(ctx, caller, &models.DownloadJob{
		ChatJID:   caller.ChatJID,
		CallerJID: caller.CallerJID,
		Kind:      "video",
		Title:     video.Title,
		SourceURL: video.URL,
		Quality:   option.Label,
	})
}

func (s *BotService) resolveMovieChoice(ctx context.Context, caller *models.CallerContext, movie models.MovieResult) error {
	return s.enqueueDownload(ctx, caller, &models.DownloadJob{
		ChatJID:   caller.ChatJID,
		CallerJID: caller.CallerJID,
		Kind:      "movie",
		Title:     movie.Title,
		SourceURL: movie.URL,
	})
}

func (s *BotService) resolveTVChoice(ctx context.Context, caller *models.CallerContext, show models.TVResult) error {
	return s.enqueueDownload(ctx, caller, &models.DownloadJob{
		ChatJID:   caller.ChatJID,
		CallerJID: caller.CallerJID,
		Kind:      "tv",
		Title:     show.Title,
		SourceURL: show.URL,
	})
}

func (s *BotService) resolveSubtitleChoice(ctx context.Context, caller *models.CallerContext, subtitle models.SubtitleResult) error {
	return s.enqueueDownload(ctx, caller, &models.DownloadJob{
		ChatJID:   caller.ChatJID,
		CallerJID: caller.CallerJID,
		Kind:      "subtitle",
		Title:     subtitle.Title,
		SourceURL: subtitle.URL,
	})
}

func (s *BotService) enqueueDownload(ctx context.Context, caller *models.CallerContext, job *models.DownloadJob) error {
	jobID, err := s.downloader.Enqueue(ctx, job)
	if err != nil {
		return err
	}

	s.logger.Info("Загрузка поставлена в очередь",
		"jobID", jobID,
		"kind", job.Kind,
		"caller", caller.CallerJID,
	)

	return s.messenger.SendText(ctx, caller.ChatJID,
		fmt.Sprintf("Загрузка «%s» началась. Я пришлю файл, когда всё будет готово.", job.Title))
}

// HandleDownloadReady доставляет результат завершённой загрузки в чат.
func (s *BotService) HandleDownloadReady(ctx context.Context, event *models.DownloadReady) error {
	if event.Error != "" {
		s.logger.Warn("Загрузка завершилась ошибкой",
			"error", &domainerrors.ErrDownloadFailed{JobID: event.JobID, Message: event.Error},
			"jobID", event.JobID,
		)

		return s.messenger.SendText(ctx, event.ChatJID,
			fmt.Sprintf("Не удалось загрузить «%s»: %s", event.Title, event.Error))
	}

	return s.messenger.SendText(ctx, event.ChatJID,
		fmt.Sprintf("Загрузка завершена: «%s»\n%s", event.Title, event.FileURL))
}

func derefVideos(in []*models.VideoResult) []models.VideoResult {
	out := make([]models.VideoResult, 0, len(in))
	for _, v := range in {
		out = append(out, *v)
	}

	return out
}

func derefMovies(in []*models.MovieResult) []models.MovieResult {
	out := make([]models.MovieResult, 0, len(in))
	for _, v := range in {
		out = append(out, *v)
	}

	return out
}

func derefTVShows(in []*models.TVResult) []models.TVResult {
	out := make([]models.TVResult, 0, len(in))
	for _, v := range in {
		out = append(out, *v)
	}

	return out
}

func derefSubtitles(in []*models.SubtitleResult) []models.SubtitleResult {
	out := make([]models.SubtitleResult, 0, len(in))
	for _, v := range in {
		out = append(out, *v)
	}

	return out
}

func derefQualities(in []*models.QualityOption) []models.QualityOption {
	out := make([]models.QualityOption, 0, len(in))
	for _, v := range in {
		out = append(out, *v)
	}

	return out
}
