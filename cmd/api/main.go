package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/Madhavladani/adeptjs64/interfaces/api/handlers"
	"github.com/Madhavladani/adeptjs64/interfaces/api/middleware"
	"github.com/Madhavladani/adeptjs64/interfaces/api/routes"
	"github.com/Madhavladani/adeptjs64/pkg/di"
	"github.com/Madhavladani/adeptjs64/pkg/logger"
)

func main() {
	container := di.NewContainer()

	// Initialize all dependencies (including logger)
	if err := container.Initialize(); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	cfg := container.GetConfig()

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		AppName:      cfg.App.Name,

		// multipart overhead นอกจากไฟล์ svg
		BodyLimit:             int(cfg.Storage.MaxUploadSize) + 1024*1024,
		DisableStartupMessage: cfg.IsProduction(),
	})

	setupGracefulShutdown(app, container)

	// Setup middleware (order matters!)
	app.Use(middleware.RequestIDMiddleware()) // ต้องมาก่อน logger
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware(cfg.AllowedOrigins()))

	// logo ที่อัปโหลดเข้า local storage
	if basePath := container.LocalStorageBasePath(); basePath != "" {
		app.Static("/files", basePath)
	}

	h := handlers.NewHandlers(container.GetHandlerServices())
	routes.SetupRoutes(app, h)

	port := cfg.App.Port
	logger.Info("Server starting",
		"port", port,
		"env", cfg.App.Env,
		"app", cfg.App.Name,
	)
	logger.Info("Endpoints available",
		"health", "http://localhost:"+port+"/health",
		"api", "http://localhost:"+port+"/api",
	)

	if err := app.Listen(":" + port); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func setupGracefulShutdown(app *fiber.App, container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")

		if err := app.Shutdown(); err != nil {
			logger.Error("Error shutting down server", "error", err)
		}

		if err := container.Cleanup(); err != nil {
			logger.Error("Error during cleanup", "error", err)
		}

		logger.Info("Shutdown complete")
		os.Exit(0)
	}()
}
