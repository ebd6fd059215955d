package dispatcher

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	stderrors "errors"

	"github.com/Matthew11K/wa-media-bot/internal/bot/command"
	"github.com/Matthew11K/wa-media-bot/internal/bot/permission"
	"github.com/Matthew11K/wa-media-bot/internal/bot/selection"
	"github.com/Matthew11K/wa-media-bot/internal/common/metrics"
	"github.com/Matthew11K/wa-media-bot/internal/domain/errors"
	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
)

const (
	genericFailureMessage   = "Произошла ошибка при обработке вашего сообщения. Пожалуйста, попробуйте позже."
	invalidSelectionMessage = "Некорректный номер выбора. Отправьте команду поиска заново."
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

type Messenger interface {
	SendText(ctx context.Context, chatJID, text string) error
}

type UserDirectory interface {
	IsBanned(ctx context.Context, jid string) (bool, error)
}

type UsageRecorder interface {
	Record(ctx context.Context, caller *models.CallerContext, commandName string) error
}

// SelectionResolver исполняет логику разрешения номера для конкретного вида
// ожидающего выбора. Слот к моменту вызова уже изъят из хранилища.
type SelectionResolver interface {
	Resolve(ctx context.Context, caller *models.CallerContext, sel *models.PendingSelection, choice int) error
}

type RateLimiter interface {
	Allow(callerJID string) bool
}

// Dispatcher - точка входа для каждого входящего текстового события:
// отличает числовой ответ на выбор от вызова команды, проверяет права,
// пишет журнал использования и вызывает обработчик, перехватывая его сбои.
type Dispatcher struct {
	registry   *command.Registry
	selections *selection.Store
	resolver   SelectionResolver
	messenger  Messenger
	users      UserDirectory
	usage      UsageRecorder
	limiter    RateLimiter
	prefix     string
	ownerJID   string
	logger     *slog.Logger
}

func NewDispatcher(
	registry *command.Registry,
	selections *selection.Store,
	resolver SelectionResolver,
	messenger Messenger,
	users UserDirectory,
	usage UsageRecorder,
	limiter RateLimiter,
	prefix string,
	ownerJID string,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		registry:   registry,
		selections: selections,
		resolver:   resolver,
		messenger:  messenger,
		users:      users,
		usage:      usage,
		limiter:    limiter,
		prefix:     prefix,
		ownerJID:   ownerJID,
		logger:     logger,
	}
}

// HandleMessage обрабатывает одно входящее событие. Ошибка никогда не
// возвращается наружу: сбой одной команды не должен останавливать цикл
// обработки последующих сообщений.
func (d *Dispatcher) HandleMessage(ctx context.Context, msg *models.IncomingMessage) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	caller := msg.Caller
	if d.ownerJID != "" && caller.CallerJID == d.ownerJID {
		caller.IsOwner = true
	}

	if d.limiter != nil && !d.limiter.Allow(caller.CallerJID) {
		return
	}

	// Сообщение из одних цифр - всегда ветка выбора: командой оно не
	// считается, даже если ожидающего слота нет.
	if digitsOnly.MatchString(text) {
		metrics.RecordMessage("selection")
		d.handleSelectionReply(ctx, &caller, text)

		return
	}

	if !strings.HasPrefix(text, d.prefix) {
		metrics.RecordMessage("chat")
		return
	}

	metrics.RecordMessage("command")

	fields := strings.Fields(strings.TrimPrefix(text, d.prefix))
	if len(fields) == 0 {
		return
	}

	token := strings.ToLower(fields[0])
	args := fields[1:]

	def, ok := d.registry.Resolve(token)
	if !ok {
		// Неизвестные команды игнорируются молча: это защита от случайных
		// совпадений с префиксом, а не ошибка пользователя.
		return
	}

	d.invoke(ctx, def, &caller, token, args)
}

func (d *Dispatcher) handleSelectionReply(ctx context.Context, caller *models.CallerContext, text string) {
	sel, ok := d.selections.Take(caller.CallerJID)
	if !ok {
		return
	}

	kind := string(sel.Payload.Kind())

	choice, err := strconv.Atoi(text)
	if err != nil {
		choice = 0
	}

	err = d.resolver.Resolve(ctx, caller, sel, choice)

	switch {
	case err == nil:
		metrics.RecordSelection(kind, "resolved")
	case stderrors.Is(err, &errors.ErrInvalidSelection{}):
		metrics.RecordSelection(kind, "invalid")
		d.reply(ctx, caller.ChatJID, invalidSelectionMessage)
	default:
		metrics.RecordSelection(kind, "error")
		d.logger.Error("Ошибка при разрешении выбора",
			"error", err,
			"caller", caller.CallerJID,
			"kind", kind,
		)
		d.reply(ctx, caller.ChatJID, genericFailureMessage)
	}
}

func (d *Dispatcher) invoke(
	ctx context.Context,
	def *models.CommandDefinition,
	caller *models.CallerContext,
	token string,
	args []string,
) {
	banned, err := d.users.IsBanned(ctx, caller.CallerJID)
	if err != nil {
		// Недоступность хранилища не должна блокировать бота целиком:
		// считаем отправителя не забаненным и записываем предупреждение.
		d.logger.Warn("Не удалось проверить статус блокировки",
			"error", err,
			"caller", caller.CallerJID,
		)
	} else {
		caller.IsBanned = banned
	}

	decision, err := permission.Evaluate(ctx, def, caller)
	if err != nil {
		d.logger.Error("Ошибка при проверке прав",
			"error", err,
			"command", def.Name,
			"caller", caller.CallerJID,
		)
		d.reply(ctx, caller.ChatJID, genericFailureMessage)

		return
	}

	if !decision.Allowed {
		metrics.RecordPermissionDenial(string(decision.Reason))
		d.reply(ctx, caller.ChatJID, permission.DenialMessage(decision.Reason))

		return
	}

	// Журнал пишется до запуска обработчика; сбой записи не отменяет
	// выполнение команды.
	if err := d.usage.Record(ctx, caller, token); err != nil {
		d.logger.Warn("Не удалось записать использование команды",
			"error", err,
			"command", token,
			"caller", caller.CallerJID,
		)
	}

	start := time.Now()

	if err := d.runHandler(ctx, def, caller, args); err != nil {
		metrics.RecordCommand(def.Name, "error", time.Since(start))
		d.logger.Error("Ошибка при выполнении команды",
			"error", err,
			"command", def.Name,
			"caller", caller.CallerJID,
		)
		d.reply(ctx, caller.ChatJID, genericFailureMessage)

		return
	}

	metrics.RecordCommand(def.Name, "success", time.Since(start))
}

func (d *Dispatcher) runHandler(
	ctx context.Context,
	def *models.CommandDefinition,
	caller *models.CallerContext,
	args []string,
) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &errors.ErrHandlerPanic{Command: def.Name, Value: r}
		}
	}()

	return def.Handler(ctx, caller, args)
}

func (d *Dispatcher) reply(ctx context.Context, chatJID, text string) {
	if err := d.messenger.SendText(ctx, chatJID, text); err != nil {
		d.logger.Error("Ошибка при отправке ответа",
			"error", err,
			"chat", chatJID,
		)
	}
}
