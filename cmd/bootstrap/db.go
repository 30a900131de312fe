package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"service-broker/internal/infra/db"
	"service-broker/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const dbConnectTimeout = 15 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB fails startup when the database is unreachable within dbConnectTimeout.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "host", cfg.DB.Host, "db", cfg.DB.DBName, "max_conns", cfg.DB.MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("database pool draining",
				"acquired", stat.AcquiredConns(),
				"total", stat.TotalConns(),
				"acquire_count", stat.AcquireCount(),
			)
			cleanup()
			return nil
		},
	})

	return pool, nil
}
