package components

import (
	"travel-booking/internal/infra/readstore"
	"travel-booking/internal/infra/sqlstore"
	"travel-booking/internal/infra/uow"
	"travel-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// CustomTour
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CustomTourReadQueries)),
		),
		fx.Annotate(
			readstore.NewCustomTourReadStore,
			fx.As(new(queries.CustomTourReadStore)),
		),
	),
)

// write-side repositories are created per transaction by the unit of work
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlstore.Queries {
	return sqlstore.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlstore.DBTX {
	return pool
}
