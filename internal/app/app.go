package app

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"tradex-backend/internal/auth"
	"tradex-backend/internal/config"
	"tradex-backend/internal/database"
	"tradex-backend/internal/health"
	"tradex-backend/internal/holdings"
	"tradex-backend/internal/middleware"
	"tradex-backend/internal/orders"
	"tradex-backend/internal/pkg/response"
	"tradex-backend/internal/positions"
)

// CreateApp builds the Fiber app with all global middleware and route
// registration. The returned DB and Redis client may be nil when their URLs
// are not configured (e.g. tests).
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(cfg.Env),
	})

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		rdb = redis.NewClient(opt)
	}

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		Env:            cfg.Env,
	}))
	app.Use(middleware.RateLimit(rdb, cfg.RateLimitMax, cfg.RateLimitWindow))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
	}

	var pinger health.DBPinger
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			pinger = sqlDB
		}
	}
	healthHandlers := &health.Handlers{Rdb: rdb, DB: pinger}
	app.Get("/health/json", healthHandlers.JSON)

	if db != nil {
		authHandlers := &auth.Handlers{Service: &auth.Service{DB: db, TokenSecret: cfg.TokenSecret}}
		app.Post("/auth/signup", authHandlers.Signup)
		app.Get("/auth/me", middleware.RequireAuth(cfg.TokenSecret), authHandlers.Me)

		holdingsHandlers := &holdings.Handlers{Service: &holdings.Service{DB: db}}
		app.Get("/addholdings", holdingsHandlers.ListHoldings)
		app.Get("/holding/:stockName", holdingsHandlers.GetHolding)

		positionsHandlers := &positions.Handlers{Service: &positions.Service{DB: db}}
		app.Get("/addpositions", positionsHandlers.ListPositions)

		ordersHandlers := &orders.Handlers{Service: &orders.Service{DB: db}}
		app.Post("/newOrder", ordersHandlers.NewOrder)
		app.Get("/addOrders", ordersHandlers.ListOrders)
		app.Get("/getOrders", ordersHandlers.ListOrders)
	}

	// Unknown routes return 404 JSON through the standard envelope.
	app.Use(func(c *fiber.Ctx) error {
		return response.Error(c, "Route not found", fiber.StatusNotFound, nil)
	})

	return app, db, rdb, nil
}
