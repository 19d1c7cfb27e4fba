package bootstrap

import (
	"context"
	"log/slog"

	"room-booking/internal/bot"
	"room-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var BotModule = fx.Module("bot",
	fx.Provide(
		bot.NewDispatcher,
	),
	fx.Invoke(startBot),
)

func startBot(lc fx.Lifecycle, cfg config.Config, dispatcher *bot.Dispatcher, logger *slog.Logger) error {
	if cfg.Telegram.Token == "" {
		logger.Info("TELEGRAM_BOT_TOKEN が未設定のためボットは起動しません")
		return nil
	}

	b, err := bot.New(cfg.Telegram.Token, cfg.Telegram.Debug, dispatcher, logger)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("🤖 Telegram ボットを起動します", "username", b.Username())
			b.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("🛑 Telegram ボットを停止します")
			b.Stop()
			return nil
		},
	})
	return nil
}
