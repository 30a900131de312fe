package bootstrap

import (
	"log/slog"

	"service-broker/internal/handler/middleware"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		middleware.NewLogger,
		func(l *middleware.Logger) *slog.Logger { return l.GetSlogLogger() },
	),
)
