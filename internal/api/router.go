package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MadeCbt/roombooking/internal/api/handler"
	"github.com/MadeCbt/roombooking/internal/core/service"
	"github.com/MadeCbt/roombooking/internal/infrastructure/config"
	mongodb "github.com/MadeCbt/roombooking/internal/infrastructure/db/mongo"
	redisdb "github.com/MadeCbt/roombooking/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("roombooking"))

	// Static fallback: anything that is not an API route serves the SPA
	// assets, with index.html for unmatched paths.
	e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
		Root:  cfg.StaticDir,
		HTML5: true,
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return strings.HasPrefix(p, "/api") ||
				strings.HasPrefix(p, "/health") ||
				strings.HasPrefix(p, "/metrics") ||
				strings.HasPrefix(p, "/swagger")
		},
	}))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	roomRepo := mongodb.NewRoomRepository(db)
	roomsCache := redisdb.NewRoomsCache(rdb, cfg.CacheTTL)

	authService := service.NewAuthService(authRepo)
	bookingService := service.NewBookingService(roomRepo, roomsCache, log)

	authHandler := handler.NewAuthHandler(authService)
	roomHandler := handler.NewRoomHandler(bookingService)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Admin routes (role is advisory; no access check by design) ---
	e.POST("/api/admin/rooms", roomHandler.Create)
	e.GET("/api/admin/rooms", roomHandler.List)
	e.DELETE("/api/admin/rooms/:id", roomHandler.Delete)
	e.POST("/api/admin/book", roomHandler.Book)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
