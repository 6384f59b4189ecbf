package components

import (
	"sneakdrop/internal/pkg/clock"
	"sneakdrop/internal/usecase"
	"sneakdrop/internal/usecase/commands"
	"sneakdrop/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewTokenValidator,
	usecase.NewAuthUseCase,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewVoteUseCase,
		commands.NewProductUseCase,
		commands.NewSubmissionUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVoteQueries,
		queries.NewProductQueries,
		queries.NewSubmissionQueries,
	),
)
