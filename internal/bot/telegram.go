package bot

import (
	"context"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const updateTimeout = 30

// sender is the part of tgbotapi.BotAPI the loop needs.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot long-polls Telegram and feeds text messages to the Dispatcher.
type Bot struct {
	api        *tgbotapi.BotAPI
	dispatcher *Dispatcher
	logger     *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(token string, debug bool, dispatcher *Dispatcher, logger *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	api.Debug = debug

	return &Bot{
		api:        api,
		dispatcher: dispatcher,
		logger:     logger,
	}, nil
}

func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// Start begins polling in the background. Stop ends it.
func (b *Bot) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = updateTimeout
	updates := b.api.GetUpdatesChan(cfg)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		serve(ctx, updates, b.dispatcher, b.api, b.logger)
	}()
}

func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
	if b.cancel != nil {
		b.cancel()
	}
	b.wg.Wait()
}

func serve(ctx context.Context, updates tgbotapi.UpdatesChannel, d *Dispatcher, out sender, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			handleUpdate(ctx, update, d, out, logger)
		}
	}
}

func handleUpdate(ctx context.Context, update tgbotapi.Update, d *Dispatcher, out sender, logger *slog.Logger) {
	m := update.Message
	if m == nil || m.From == nil || m.Text == "" {
		return
	}

	reply := d.Handle(ctx, Message{
		ChatID:     m.Chat.ID,
		TelegramID: m.From.ID,
		Text:       m.Text,
	})
	if reply == "" {
		return
	}

	if _, err := out.Send(tgbotapi.NewMessage(m.Chat.ID, reply)); err != nil {
		logger.Warn("failed to send telegram reply",
			slog.Int64("chat_id", m.Chat.ID),
			slog.String("error", err.Error()))
	}
}
