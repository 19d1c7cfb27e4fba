package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"room-booking/internal/infra/db"
	"room-booking/internal/infra/memory"
	"room-booking/internal/infra/uow"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork picks the interval store backend from STORAGE_DRIVER.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (shared.UnitOfWork, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		logger.Warn("インメモリストレージで起動します（再起動でデータは消えます）")
		return memory.NewUoW(clk, logger), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	logger.Info("PostgreSQL に接続しました", "host", cfg.DB.Host, "database", cfg.DB.DBName)
	return uow.NewPostgresUoW(pool, logger), nil
}
