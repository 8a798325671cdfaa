// main.go
//
// Multi-step job application form state service.
// HTTP server entry point: config, database, cache and route wiring.

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/hireflow/formstate/internal/cache"
	"github.com/hireflow/formstate/internal/config"
	"github.com/hireflow/formstate/internal/database"
	"github.com/hireflow/formstate/internal/handlers"
	"github.com/hireflow/formstate/internal/logger"
	"github.com/hireflow/formstate/internal/middleware"
	"github.com/hireflow/formstate/internal/services"
	"github.com/hireflow/formstate/internal/types"
	"github.com/hireflow/formstate/internal/utils"
	"go.uber.org/zap"

	_ "github.com/hireflow/formstate/docs/api" // Swagger docs
)

// @title Form State API
// @version 1.0.0
// @description Multi-step job application form wizard backend

// @contact.name API Support

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer zlog.Sync()

	db, err := database.Connect(cfg, zlog)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		zlog.Fatal("migrations failed", zap.Error(err))
	}

	referenceCache := cache.New(cfg.CacheTTL)
	referenceService := services.NewReferenceService(db, referenceCache, zlog, cfg.RoleSearchLimit)

	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("formstate")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	formHandler := &handlers.FormHandler{DB: db, Log: zlog}
	referenceHandler := &handlers.ReferenceHandler{Service: referenceService, Log: zlog}
	applicantHandler := &handlers.ApplicantHandler{DB: db, Log: zlog}
	healthHandler := &handlers.HealthHandler{Cfg: cfg, DB: db, Log: zlog}

	api.Get("/health", healthHandler.Check)

	form := api.Group("/form")
	form.Post("/save-state", formHandler.SaveState)
	form.Get("/state/:sessionId", formHandler.GetState)
	form.Put("/update-step", formHandler.UpdateStep)
	form.Post("/submit", formHandler.Submit)

	reference := api.Group("/reference")
	reference.Get("/all", referenceHandler.All)
	reference.Get("/categories", referenceHandler.Categories)
	reference.Get("/locations", referenceHandler.Locations)
	reference.Get("/skill-categories", referenceHandler.SkillCategories)
	reference.Post("/roles/search", referenceHandler.SearchRoles)
	reference.Get("/roles/:categoryId?", referenceHandler.Roles)
	reference.Get("/skills/:skillCategoryId?", referenceHandler.Skills)
	reference.Post("/refresh-cache", middleware.AuthAdmin(cfg), referenceHandler.RefreshCache)

	api.Get("/applicants", middleware.AuthAdmin(cfg), applicantHandler.List)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "Resource not found")
	})

	// Graceful shutdown
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigs
		zlog.Info("shutting down")
		_ = app.Shutdown()
	}()

	zlog.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server failed", zap.Error(err))
	}

	zlog.Info("server stopped")
}

// customErrorHandler renders uncaught errors as envelopes.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}
	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
	}

	return utils.ErrorResponse(c, code, message)
}
