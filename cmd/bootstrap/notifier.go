package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"service-broker/internal/infra/notifier"
	"service-broker/internal/infra/repository"
	"service-broker/internal/pkg/config"
	"service-broker/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
	),
)

type notifierParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.NotifyConfig
	Logger    *slog.Logger
	Jobs      *repository.NotificationRepository
}

// NewNotifier picks the delivery sink named by NOTIFY_BACKEND.
func NewNotifier(p notifierParams) (shared.Notifier, error) {
	switch p.Config.Backend {
	case config.NotifyBackendLog:
		return notifier.NewLogNotifier(p.Logger), nil
	case config.NotifyBackendPostgres:
		return notifier.NewOutboxNotifier(p.Jobs), nil
	case config.NotifyBackendMongo:
		return newMongoNotifier(p)
	default:
		return nil, fmt.Errorf("unknown notify backend %q", p.Config.Backend)
	}
}

func newMongoNotifier(p notifierParams) (shared.Notifier, error) {
	ctx := context.Background()
	client, err := notifier.ConnectMongo(ctx, p.Config.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	n := notifier.NewMongoNotifier(client, p.Config.MongoDB)
	if err := n.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ensure notification indexes: %w", err)
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})
	p.Logger.Info("notifications stored in mongo", "db", p.Config.MongoDB)
	return n, nil
}
