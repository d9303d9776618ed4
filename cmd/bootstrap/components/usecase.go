package components

import (
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/pkg/policy"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) (*policy.Policy, error) {
		return policy.Load(cfg.Policy.File)
	},
	func(p *policy.Policy) (reservation.OperatingHours, error) {
		return p.Hours()
	},
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewRoomCommands,
		commands.NewBlockedSlotCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReservationQueries,
		queries.NewRoomQueries,
		queries.NewAvailabilityQueries,
		queries.NewScheduleQueries,
		queries.NewBlockedSlotQueries,
		queries.NewReportQueries,
	),
)
