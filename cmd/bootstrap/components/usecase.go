package components

import (
	"service-broker/internal/domain/commission"
	"service-broker/internal/pkg/clock"
	"service-broker/internal/usecase"
	"service-broker/internal/usecase/commands"
	"service-broker/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		commission.NewDefaultCalculator,
		fx.As(new(commission.Calculator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewRequestCommands,
		commands.NewQuoteCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewRequestQueries,
		queries.NewQuoteQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
