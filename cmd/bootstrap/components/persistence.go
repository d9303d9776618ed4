package components

import (
	"room-reservation/internal/infra/readstore"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/infra/uow"
	"room-reservation/internal/usecase/queries"

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
		// Room
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RoomViewQueries)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// BlockedSlot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BlockedSlotViewQueries)),
		),
		fx.Annotate(
			readstore.NewBlockedSlotReadStore,
			fx.As(new(queries.BlockedSlotReadStore)),
		),
		// Calendar backs both the availability check and the day schedule
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CalendarQueries)),
		),
		fx.Annotate(
			readstore.NewCalendarReadStore,
			fx.As(new(queries.OccupancyReadStore)),
			fx.As(new(queries.ScheduleReadStore)),
		),
		// Report
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReportQueries)),
		),
		fx.Annotate(
			readstore.NewReportReadStore,
			fx.As(new(queries.ReportReadStore)),
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

// Repositories are bound per transaction inside the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
