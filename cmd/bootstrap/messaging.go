package bootstrap

import (
	"context"
	"log/slog"

	"room-booking/internal/bot"
	"room-booking/internal/infra/events"
	"room-booking/internal/infra/redisstore"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
		NewSessionStore,
	),
)

// NewEventPublisher falls back to a no-op publisher without a broker; events are best effort.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.EventPublisher {
	if cfg.AMQP.URL == "" {
		logger.Info("AMQP_URL が未設定のため予約イベントは配信しません")
		return shared.NewNoopPublisher()
	}

	publisher, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, logger)
	if err != nil {
		logger.Warn("AMQP への接続に失敗したため予約イベントは配信しません", "error", err)
		return shared.NewNoopPublisher()
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	logger.Info("予約イベントを配信します", "exchange", cfg.AMQP.Exchange)
	return publisher
}

// NewSessionStore keeps bot drafts in Redis when reachable, in process otherwise.
func NewSessionStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) bot.SessionStore {
	if cfg.Redis.Addr == "" {
		return bot.NewMemorySessionStore()
	}

	client, err := redisstore.Connect(context.Background(), cfg.Redis)
	if err != nil {
		logger.Warn("Redis に接続できないためボットのセッションはメモリに保持します", "error", err)
		return bot.NewMemorySessionStore()
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return redisstore.NewSessionStore(client, cfg.Redis.SessionTTL)
}
