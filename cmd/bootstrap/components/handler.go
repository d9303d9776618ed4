package components

import (
	"room-reservation/internal/handler"
	"room-reservation/internal/handler/api"
	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/pkg/config"
	"room-reservation/internal/pkg/jwt"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewReservationHandler,
		api.NewRoomHandler,
		api.NewBlockedSlotHandler,
		api.NewReportHandler,
		NewAuthMiddleware,
		func(cfg config.Config) *middleware.ResponseCache {
			return middleware.NewResponseCache(cfg.Cache)
		},
		func(c *middleware.ResponseCache) api.CacheFlusher {
			return c
		},
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

// The JWT service doubles as the token TTL source and the token validator.
func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, svc *jwt.Service, cfg config.Config) *api.AuthHandler {
	return api.NewAuthHandler(cmds, users, svc, cfg)
}

func NewAuthMiddleware(svc *jwt.Service) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(svc)
}

type handlerParams struct {
	fx.In

	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Room        *api.RoomHandler
	BlockedSlot *api.BlockedSlotHandler
	Report      *api.ReportHandler
	AuthMw      *middleware.AuthMiddleware
	RoomCache   *middleware.ResponseCache
	RateLimiter *middleware.RateLimiter
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:        p.Auth,
		Reservation: p.Reservation,
		Room:        p.Room,
		BlockedSlot: p.BlockedSlot,
		Report:      p.Report,
		AuthMw:      p.AuthMw,
		RoomCache:   p.RoomCache,
		RateLimiter: p.RateLimiter,
	}
}
