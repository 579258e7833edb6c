package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"

	"github.com/wiralabs/client-console/internal/handlers"
	"github.com/wiralabs/client-console/internal/repository"
	"github.com/wiralabs/client-console/internal/services"
	"github.com/wiralabs/client-console/internal/shared/config"
	"github.com/wiralabs/client-console/internal/shared/utils"

	_ "github.com/wiralabs/client-console/cmd/console-api/docs"
)

// @title Client Console API
// @version 1.0
// @description Management console service for AI client configuration records and their knowledge bases
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Printf("🚀 Starting console-api on port %s", cfg.Port)
	log.Printf("🔗 Client repository: %s", cfg.RepositoryURL)

	// Session carries the bearer credential into every repository call.
	// An empty token omits the header; the backend decides authorization.
	session := repository.Session{Token: cfg.RepositoryToken}

	// Init repository clients
	clientRepo := repository.NewClientRepo(cfg.RepositoryURL, session, cfg.HTTPTimeout)
	kbRepo := repository.NewKBRepo(cfg.RepositoryURL, session, cfg.HTTPTimeout)

	// Init services
	clientService := services.NewClientService(clientRepo)
	kbService := services.NewKBService(kbRepo)

	// Init handlers
	clientHandler := handlers.NewClientHandler(clientService)
	kbHandler := handlers.NewKBHandler(kbService)
	metaHandler := handlers.NewMetaHandler()
	healthHandler := handlers.NewHealthHandler(cfg.Env)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Client Console API",
	})

	// Middleware
	app.Use(cors.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	app.Get("/health", healthHandler.GetHealth)

	// Client routes
	app.Get("/clients", clientHandler.GetClients)
	app.Post("/clients", clientHandler.CreateClient)
	app.Get("/clients/search", clientHandler.GetClients)
	app.Get("/clients/:id", clientHandler.GetClientByID)
	app.Get("/clients/:id/masked", clientHandler.GetClientMasked)
	app.Put("/clients/:id", clientHandler.UpdateClient)
	app.Delete("/clients/:id", clientHandler.DeleteClient)

	// Knowledge base routes
	app.Get("/kb/:accountId", kbHandler.GetKnowledgeBase)
	app.Post("/kb/:accountId/upload", kbHandler.UploadFile)
	app.Post("/kb/:accountId/url", kbHandler.ProcessURL)
	app.Delete("/kb/:accountId/documents/:documentId", kbHandler.DeleteDocument)
	app.Delete("/kb/:accountId/urls", kbHandler.DeleteURL)
	app.Get("/kb/:accountId/download/:documentId", kbHandler.DownloadDocument)

	// Form metadata routes
	app.Get("/meta/timezones", metaHandler.GetTimeZones)
	app.Get("/meta/models", metaHandler.GetModels)

	log.Printf("✅ console-api running at :%s", cfg.Port)
	log.Printf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
