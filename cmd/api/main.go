package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-wholesale-console/internal/apiclient"
	"go-wholesale-console/internal/handler"
	"go-wholesale-console/internal/i18n"
	"go-wholesale-console/internal/middleware"
	"go-wholesale-console/internal/model"
	"go-wholesale-console/internal/repository"
	"go-wholesale-console/internal/service"
	"go-wholesale-console/internal/ws"
	"go-wholesale-console/pkg/config"
	"go-wholesale-console/pkg/database"
	"go-wholesale-console/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	// 1. Load Env
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(logger.Config{Env: "development", Level: "info"})
		bootLog.Fatal().Err(err).Msg("Invalid configuration")
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	if envErr != nil {
		log.Debug().Msg(".env file not found, using environment")
	}

	// 2. Preferences store
	prefRepo := openPreferenceRepo(cfg, log)

	// 3. Language bundle and navigation table
	bundle, err := i18n.Load(log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load language catalogs")
	}
	nav, err := service.NewDefaultNavigationService()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid navigation table")
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub(log)
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	client := apiclient.New(cfg.API.BaseURL, cfg.API.Timeout, log)
	sessions := service.NewSessionService(cfg.Session.Secret, cfg.Session.TTL)

	prefService := service.NewPreferenceService(prefRepo, log)
	authService := service.NewAuthService(client, sessions, log)
	storeService := service.NewStoreService(client, wsHub, log)
	userService := service.NewUserService(client, wsHub, log)
	dashService := service.NewDashboardService()
	siteService := service.NewSiteService(client, log)

	cookies := handler.CookieConfig{Secure: cfg.Session.CookieSecure}
	router := &handler.Router{
		Nav:         nav,
		Sessions:    sessions,
		Hub:         wsHub,
		Auth:        handler.NewAuthHandler(authService, sessions, prefService, nav, cookies, log),
		Navigation:  handler.NewNavigationHandler(nav, bundle),
		Dashboard:   handler.NewDashboardHandler(dashService),
		Stores:      handler.NewStoreHandler(storeService),
		Users:       handler.NewUserHandler(userService),
		Preferences: handler.NewPreferenceHandler(prefService, cookies),
		Site:        handler.NewSiteHandler(siteService, bundle),
		Pages:       handler.NewPageHandler(nav, dashService, storeService, userService, bundle),
	}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env != "development",
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New())
	app.Use(middleware.Metrics())
	app.Use(middleware.RequestLogger(log))

	// 7. Routes
	router.Register(app)

	// Every navigation entry must point at a mounted page
	if err := nav.ValidateRoutes(handler.RegisteredPages(app)); err != nil {
		log.Fatal().Err(err).Msg("Navigation table references unknown routes")
	}
	log.Info().
		Int("pages", len(handler.RegisteredPages(app))).
		Int("roles", len(model.AllRoles)).
		Msg("Navigation table validated")

	// 8. Graceful Shutdown
	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Str("api", cfg.API.BaseURL).Msg("Console listening")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("Server stopped")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	wsHub.Stop()

	log.Info().Msg("Server exited")
}

// openPreferenceRepo picks the preferences backend from configuration.
func openPreferenceRepo(cfg *config.Config, log zerolog.Logger) repository.PreferenceRepository {
	if cfg.DB.Store != config.StorePostgres {
		log.Warn().Msg("PREFERENCES_STORE=memory, preferences are lost on restart")
		return repository.NewMemoryPreferenceRepo()
	}

	db, err := database.ConnectDB(cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to preferences database")
	}
	// Auto Migrate (only the console's own table)
	if err := db.AutoMigrate(&model.Preference{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate preferences table")
	}
	return repository.NewPreferenceRepo(db)
}
