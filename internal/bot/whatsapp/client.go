package whatsapp

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mdp/qrterminal/v3"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	waLog "go.mau.fi/whatsmeow/util/log"
	"google.golang.org/protobuf/proto"

	"github.com/Matthew11K/wa-media-bot/internal/domain/models"
)

// MessageHandler получает нормализованное входящее текстовое сообщение.
type MessageHandler interface {
	HandleMessage(ctx context.Context, msg *models.IncomingMessage)
}

// Client - адаптер над whatsmeow: держит сессию, нормализует входящие
// события в доменную модель и отправляет исходящие сообщения.
type Client struct {
	wa      *whatsmeow.Client
	handler MessageHandler
	logger  *slog.Logger
}

func NewClient(ctx context.Context, databaseURL, deviceName string, handler MessageHandler, logger *slog.Logger) (*Client, error) {
	waLogger := waLog.Stdout("WhatsApp", "ERROR", true)

	container, err := sqlstore.New(ctx, "pgx", databaseURL, waLogger)
	if err != nil {
		return nil, fmt.Errorf("ошибка при инициализации хранилища сессии WhatsApp: %w", err)
	}

	device, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении устройства WhatsApp: %w", err)
	}

	store.DeviceProps.Os = proto.String(deviceName)

	client := &Client{
		wa:      whatsmeow.NewClient(device, waLogger),
		handler: handler,
		logger:  logger,
	}

	client.wa.AddEventHandler(client.handleEvent)

	return client, nil
}

// Connect устанавливает соединение; для непривязанной сессии печатает
// QR-код в терминал и ждёт сканирования.
func (c *Client) Connect(ctx context.Context) error {
	if c.wa.Store.ID == nil {
		qrChan, err := c.wa.GetQRChannel(ctx)
		if err != nil {
			return fmt.Errorf("ошибка при получении QR-канала: %w", err)
		}

		if err := c.wa.Connect(); err != nil {
			return fmt.Errorf("ошибка при подключении к WhatsApp: %w", err)
		}

		for evt := range qrChan {
			switch evt.Event {
			case "code":
				qrterminal.GenerateHalfBlock(evt.Code, qrterminal.L, os.Stdout)
				c.logger.Info("Отсканируйте QR-код в приложении WhatsApp")
			case "success":
				c.logger.Info("Сессия WhatsApp успешно привязана")
			default:
				c.logger.Warn("Событие QR-канала",
					"event", evt.Event,
				)
			}
		}

		return nil
	}

	if err := c.wa.Connect(); err != nil {
		return fmt.Errorf("ошибка при подключении к WhatsApp: %w", err)
	}

	c.logger.Info("Соединение с WhatsApp установлено")

	return nil
}

func (c *Client) Disconnect() {
	c.wa.Disconnect()
}

func (c *Client) handleEvent(evt interface{}) {
	msg, ok := evt.(*events.Message)
	if !ok {
		return
	}

	if msg.Info.IsFromMe {
		return
	}

	text := extractText(msg)
	if text == "" {
		return
	}

	sender := msg.Info.Sender.ToNonAD()
	chat := msg.Info.Chat

	caller := models.CallerContext{
		CallerJID: sender.String(),
		ChatJID:   chat.String(),
		Username:  msg.Info.PushName,
		IsGroup:   msg.Info.IsGroup,
	}

	if caller.IsGroup {
		caller.ResolveAdmin = func(ctx context.Context) (bool, error) {
			return c.isGroupAdmin(ctx, chat, sender)
		}
	}

	c.handler.HandleMessage(context.Background(), &models.IncomingMessage{
		Text:   text,
		Caller: caller,
	})
}

func extractText(msg *events.Message) string {
	if conv := msg.Message.GetConversation(); conv != "" {
		return conv
	}

	if ext := msg.Message.GetExtendedTextMessage(); ext != nil {
		return ext.GetText()
	}

	return ""
}

func (c *Client) isGroupAdmin(ctx context.Context, chat, sender types.JID) (bool, error) {
	info, err := c.wa.GetGroupInfo(ctx, chat)
	if err != nil {
		return false, fmt.Errorf("ошибка при получении информации о группе: %w", err)
	}

	for _, p := range info.Participants {
		if p.JID.User == sender.User && (p.IsAdmin || p.IsSuperAdmin) {
			return true, nil
		}
	}

	return false, nil
}

func (c *Client) SendText(ctx context.Context, chatJID, text string) error {
	jid, err := types.ParseJID(chatJID)
	if err != nil {
		return fmt.Errorf("некорректный JID получателя: %w", err)
	}

	_, err = c.wa.SendMessage(ctx, jid, &waE2E.Message{
		Conversation: proto.String(text),
	})
	if err != nil {
		return fmt.Errorf("ошибка при отправке сообщения: %w", err)
	}

	return nil
}

func (c *Client) SendMention(ctx context.Context, chatJID, text string, mentionJIDs []string) error {
	jid, err := types.ParseJID(chatJID)
	if err != nil {
		return fmt.Errorf("некорректный JID получателя: %w", err)
	}

	_, err = c.wa.SendMessage(ctx, jid, &waE2E.Message{
		ExtendedTextMessage: &waE2E.ExtendedTextMessage{
			Text: proto.String(text),
			ContextInfo: &waE2E.ContextInfo{
				MentionedJID: mentionJIDs,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ошибка при отправке сообщения с упоминаниями: %w", err)
	}

	return nil
}

func (c *Client) GroupParticipants(ctx context.Context, chatJID string) ([]string, error) {
	jid, err := types.ParseJID(chatJID)
	if err != nil {
		return nil, fmt.Errorf("некорректный JID группы: %w", err)
	}

	info, err := c.wa.GetGroupInfo(ctx, jid)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении информации о группе: %w", err)
	}

	participants := make([]string, 0, len(info.Participants))
	for _, p := range info.Participants {
		participants = append(participants, p.JID.ToNonAD().String())
	}

	return participants, nil
}
