package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/cartorio-digital/apostille-platform-server/internal/config"
	"github.com/cartorio-digital/apostille-platform-server/internal/database"
	"github.com/cartorio-digital/apostille-platform-server/internal/module/batch"
	"github.com/cartorio-digital/apostille-platform-server/internal/module/document"
	"github.com/cartorio-digital/apostille-platform-server/internal/module/user"
	"github.com/cartorio-digital/apostille-platform-server/internal/services"
	"github.com/cartorio-digital/apostille-platform-server/package/jwt"
	"github.com/cartorio-digital/apostille-platform-server/package/log"
)

// New wires the whole server together and blocks until shutdown.
func New() {
	logger := log.New()
	cfg := config.Load()

	manager, err := database.NewManager(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize backing stores")
	}

	tokens, err := jwt.NewService(jwt.Config{
		SecretKey:     cfg.Auth.JWTSecret,
		TokenDuration: cfg.Auth.JWTExpiration,
		Issuer:        cfg.Auth.JWTIssuer,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize token service")
	}

	splitter := services.NewSplitterService()
	extractor := services.NewExtractorService()
	analyzer := services.NewAnalyzerService()

	documentRepository := document.NewDocumentRepository(manager.Mongo)
	documentService := document.NewDocumentService(documentRepository, manager.MinIO, extractor, analyzer, logger)
	documentHandler := document.NewDocumentHandler(documentService)

	batchRepository := batch.NewBatchRepository(manager.Mongo)
	batchService := batch.NewBatchService(batchRepository, documentRepository, splitter, extractor, analyzer, manager.MinIO, logger)
	batchHandler := batch.NewBatchHandler(batchService)

	userRepository := user.NewUserRepository(manager.Mongo)
	userService := user.NewUserService(userRepository, tokens, logger)
	userHandler := user.NewUserHandler(userService)
	userMiddleware := user.NewUserMiddleware(userService)

	app := fiber.New(fiber.Config{
		AppName:   cfg.Server.AppName,
		BodyLimit: cfg.Server.UploadMaxSizeMB * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
				"code":  code,
			})
		},
	})

	app.Use(requestLogger(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Requested-With",
	}))
	app.Use(recover.New())

	setupRoutes(app, manager, userHandler, userMiddleware, batchHandler, documentHandler)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info().Str("address", address).Msg("server starting")
		if err := app.Listen(address); err != nil {
			logger.Error().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}

	if err := manager.Close(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to close backing stores")
	}

	logger.Info().Msg("server exited")
}

// requestLogger emits one structured line per request.
func requestLogger(logger zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		logger.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")

		return err
	}
}

func setupRoutes(
	app *fiber.App,
	manager *database.Manager,
	userHandler *user.UserHandler,
	userMiddleware *user.UserMiddleware,
	batchHandler *batch.BatchHandler,
	documentHandler *document.DocumentHandler,
) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"services": manager.HealthCheck(c.Context()),
		})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", userHandler.Login)
	auth.Get("/me", userMiddleware.RequireAuth(), userHandler.Me)

	batches := v1.Group("/batches", userMiddleware.RequireAuth())
	batches.Get("/", batchHandler.ListBatches)
	batches.Post("/", batchHandler.UploadBatch)
	batches.Get("/:id", batchHandler.GetBatch)
	batches.Patch("/:id", batchHandler.UpdateBatch)
	batches.Delete("/:id", batchHandler.DeleteBatch)

	documents := v1.Group("/documents", userMiddleware.RequireAuth())
	documents.Get("/", documentHandler.ListDocuments)
	documents.Post("/", documentHandler.UploadDocument)
	documents.Get("/:id", documentHandler.GetDocument)
	documents.Patch("/:id", documentHandler.UpdateDocument)
	documents.Delete("/:id", documentHandler.DeleteDocument)
	documents.Post("/:id/complete", documentHandler.CompleteDocument)
	documents.Post("/:id/apostilled", userMiddleware.RequireRole(user.RoleEmployee, user.RoleTranslator), documentHandler.UploadApostilled)
}
