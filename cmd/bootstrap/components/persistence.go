package components

import (
	"service-broker/internal/infra/readstore"
	"service-broker/internal/infra/repository"
	sqlc "service-broker/internal/infra/sqlc/generated"
	"service-broker/internal/infra/uow"
	"service-broker/internal/usecase/queries"

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

// Read stores and pool-bound repositories; transactional repositories are
// built per transaction inside the unit of work.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Request
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RequestReadQueries)),
		),
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
		// Catalog
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.CatalogQueries)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		// Quote
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.QuoteReadQueries)),
		),
		fx.Annotate(
			readstore.NewQuoteReadStore,
			fx.As(new(queries.QuoteReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Lazy expiry on the read path
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.QuoteWriteQueries)),
		),
		fx.Annotate(
			repository.NewQuoteRepository,
			fx.As(new(queries.QuoteExpirer)),
		),
		// Notification outbox
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.NotificationWriteQueries)),
		),
		repository.NewNotificationRepository,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
