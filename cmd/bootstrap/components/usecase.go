package components

import (
	"runesse/internal/pkg/clock"
	"runesse/internal/usecase"
	"runesse/internal/usecase/commands"
	"runesse/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseSessionModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRequestCommands,
		usecase.NewAdminDeviceTrust,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRequestQueries,
		queries.NewCardQueries,
	),
)

var usecaseSessionModule = fx.Module("usecase/session",
	fx.Provide(
		usecase.NewSessionResolver,
	),
)
