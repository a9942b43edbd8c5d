package components

import (
	"runesse/internal/infra/readstore"
	"runesse/internal/infra/repository"
	sqlc "runesse/internal/infra/sqlc/generated"
	"runesse/internal/usecase"
	"runesse/internal/usecase/commands"
	"runesse/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Request
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RequestViewQueries)),
		),
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
		// Card
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CardViewQueries)),
		),
		fx.Annotate(
			readstore.NewCardReadStore,
			fx.As(new(queries.CardReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Request
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.RequestWriteQueries)),
		),
		fx.Annotate(
			repository.NewRequestRepository,
			fx.As(new(commands.RequestRepository)),
		),
		// AdminDevice
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.AdminDeviceQueries)),
		),
		fx.Annotate(
			repository.NewAdminDeviceRepository,
			fx.As(new(usecase.AdminDeviceStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
