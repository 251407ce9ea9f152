package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/Induma-Magammana/FitLife-Tracker/config"
	"github.com/Induma-Magammana/FitLife-Tracker/db"
	authdomain "github.com/Induma-Magammana/FitLife-Tracker/internal/auth/domain"
	authhandler "github.com/Induma-Magammana/FitLife-Tracker/internal/auth/handler"
	authmemory "github.com/Induma-Magammana/FitLife-Tracker/internal/auth/repository/memory"
	authpostgres "github.com/Induma-Magammana/FitLife-Tracker/internal/auth/repository/postgres"
	"github.com/Induma-Magammana/FitLife-Tracker/internal/auth/service"
	excatalog "github.com/Induma-Magammana/FitLife-Tracker/internal/exercises/catalog"
	exhandler "github.com/Induma-Magammana/FitLife-Tracker/internal/exercises/handler"
	favdomain "github.com/Induma-Magammana/FitLife-Tracker/internal/favourites/domain"
	favhandler "github.com/Induma-Magammana/FitLife-Tracker/internal/favourites/handler"
	favmemory "github.com/Induma-Magammana/FitLife-Tracker/internal/favourites/repository/memory"
	favpostgres "github.com/Induma-Magammana/FitLife-Tracker/internal/favourites/repository/postgres"
	favservice "github.com/Induma-Magammana/FitLife-Tracker/internal/favourites/service"
	tipscatalog "github.com/Induma-Magammana/FitLife-Tracker/internal/tips/catalog"
	tipshandler "github.com/Induma-Magammana/FitLife-Tracker/internal/tips/handler"
	"github.com/Induma-Magammana/FitLife-Tracker/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Env != "production")
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	ctx := logger.ToContext(context.Background(), zlog)

	userStore, favStore, err := buildStores(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatalf("failed to initialize storage: %v", err)
	}

	tokens := service.NewTokenService(cfg.TokenSecret, cfg.TokenLifetime())
	userService := service.NewUserService(userStore, tokens, cfg)
	favService := favservice.NewService(favStore)

	exercises, err := excatalog.New()
	if err != nil {
		zlog.Fatalf("failed to load exercise catalog: %v", err)
	}
	tips, err := tipscatalog.New()
	if err != nil {
		zlog.Fatalf("failed to load tips catalog: %v", err)
	}

	app := newApp(zlog)
	requireAuth := authhandler.RequireAuth(tokens)
	authhandler.RegisterRoutes(app, authhandler.NewAuthHandler(userService), requireAuth)
	exhandler.RegisterRoutes(app, exhandler.NewHandler(exercises))
	favhandler.RegisterRoutes(app, favhandler.NewHandler(favService), requireAuth)
	tipshandler.RegisterRoutes(app, tipshandler.NewHandler(tips))

	// Anything not matched above is a 404 in the standard envelope.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Route not found",
		})
	})

	go func() {
		zlog.Infof("FitLife Tracker API listening on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			zlog.Fatalf("server stopped: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zlog.Infof("shutdown signal received, closing HTTP server")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		zlog.Errorf("graceful shutdown failed: %v", err)
	}
}

// newApp builds the Fiber app with the shared middleware: CORS, request
// logging, and the request-scoped logger context.
func newApp(zlog *zap.SugaredLogger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "FitLife Tracker API",
	})

	app.Use(cors.New())
	app.Use(func(c *fiber.Ctx) error {
		c.SetUserContext(logger.ToContext(c.UserContext(), zlog))

		start := time.Now()
		err := c.Next()
		zlog.Infow("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
		)
		return err
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "FitLife Tracker API",
			"version": "1.0.0",
			"status":  "running",
			"endpoints": fiber.Map{
				"auth":       "/api/auth",
				"exercises":  "/api/exercises",
				"favourites": "/api/favourites",
				"tips":       "/api/tips",
				"users":      "/api/users",
			},
		})
	})

	return app
}

// buildStores picks the storage backend: PostgreSQL when DB_URL is set,
// otherwise the in-memory stores for local development.
func buildStores(ctx context.Context, cfg *config.Config, zlog *zap.SugaredLogger) (authdomain.UserStore, favdomain.Store, error) {
	if cfg.DBURL == "" {
		zlog.Infof("DB_URL not set, using in-memory storage")
		return authmemory.NewUserStore(), favmemory.NewStore(), nil
	}

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		return nil, nil, err
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		return nil, nil, err
	}

	zlog.Infof("connected to PostgreSQL")
	return authpostgres.NewUserRepository(pool), favpostgres.NewRepository(pool), nil
}
