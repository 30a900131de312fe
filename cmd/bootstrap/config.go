package bootstrap

import (
	"service-broker/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigSections hands out the parts of Config that components depend on
// directly. Any module that provides a Config must include it.
var ConfigSections = fx.Provide(
	func(c config.Config) config.QuoteConfig { return c.Quote },
	func(c config.Config) config.LogConfig { return c.Log },
	func(c config.Config) config.NotifyConfig { return c.Notify },
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigSections,
)
