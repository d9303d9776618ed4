package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/handler/api"
	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Room        *api.RoomHandler
	BlockedSlot *api.BlockedSlotHandler
	Report      *api.ReportHandler
	AuthMw      *middleware.AuthMiddleware
	RoomCache   *middleware.ResponseCache
	RateLimiter *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) error {
	if err := middleware.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{h.RateLimiter.Handler()}
	adminOnly := h.AuthMw.RequireRole(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: limited},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: limited},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(h.AuthMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		rooms := apiGroup.Group("/rooms")
		rooms.Use(h.AuthMw.RequireAuth())
		{
			cached := []gin.HandlerFunc{h.RoomCache.Handler()}
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.List, Mw: cached},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get, Mw: cached},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Room.Availability},
				{Method: http.MethodGet, Path: "/:id/schedule", Handler: h.Room.Schedule},
				{Method: http.MethodPost, Path: "", Handler: h.Room.Create, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Room.Update, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.Delete, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(h.AuthMw.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Submit, Mw: limited},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Reservation.Approve, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Reservation.Reject, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		blocked := apiGroup.Group("/blocked-slots")
		blocked.Use(h.AuthMw.RequireAuth())
		{
			addRoutes(blocked, []route{
				{Method: http.MethodGet, Path: "", Handler: h.BlockedSlot.List},
				{Method: http.MethodPost, Path: "", Handler: h.BlockedSlot.Create, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.BlockedSlot.Delete, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(h.AuthMw.RequireAuth(), adminOnly)
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/reservations/pending", Handler: h.Reservation.ListPending},
				{Method: http.MethodGet, Path: "/reports/summary", Handler: h.Report.Summary},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// addRoutes mounts per-route middleware ahead of the handler in gin's own
// chain so that c.Next() inside a middleware reaches the handler.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		hs := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		hs = append(hs, r.Mw...)
		hs = append(hs, r.Handler)
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, hs...)
		case http.MethodPost:
			g.POST(r.Path, hs...)
		case http.MethodPut:
			g.PUT(r.Path, hs...)
		case http.MethodPatch:
			g.PATCH(r.Path, hs...)
		case http.MethodDelete:
			g.DELETE(r.Path, hs...)
		default:
			g.Any(r.Path, hs...)
		}
	}
}
