package bootstrap

import (
	"service-broker/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	NotifierModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
