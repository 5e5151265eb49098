package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/stockpilot-api/internal/application/auth"
	"github.com/jhoicas/stockpilot-api/internal/application/chat"
	"github.com/jhoicas/stockpilot-api/internal/application/ingest"
	"github.com/jhoicas/stockpilot-api/internal/application/inventory"
	"github.com/jhoicas/stockpilot-api/internal/application/ports"
	"github.com/jhoicas/stockpilot-api/internal/application/query"
	infraai "github.com/jhoicas/stockpilot-api/internal/infrastructure/ai"
	"github.com/jhoicas/stockpilot-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stockpilot-api/internal/interfaces/http"
	"github.com/jhoicas/stockpilot-api/pkg/config"
	"github.com/jhoicas/stockpilot-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool
	tenantRepo := postgres.NewTenantRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	stockView := postgres.NewStockViewRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Adaptador NLP según proveedor configurado
	var nlpSvc ports.NLPService
	switch cfg.AI.Provider {
	case "gemini":
		nlpSvc = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	default:
		nlpSvc = infraai.NewGroqService(cfg.AI.GroqAPIKey, cfg.AI.GroqModel)
	}
	log.Info().Str("provider", cfg.AI.Provider).Msg("adaptador NLP configurado")

	// Casos de uso
	msgs := query.MessagesFor(cfg.App.Locale)
	queryUC := query.NewUseCase(stockView, msgs)
	chatUC := chat.NewUseCase(nlpSvc, queryUC, msgs, log)
	ingestUC := ingest.NewUseCase(txRunner, log)
	inventoryUC := inventory.NewUseCase(productRepo, warehouseRepo, movementRepo)
	authUC := auth.NewUseCase(userRepo, tenantRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockPilot API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ChatUC:       chatUC,
		IngestUC:     ingestUC,
		InventoryUC:  inventoryUC,
		StockView:    stockView,
		ProductRepo:  productRepo,
		SupplierRepo: supplierRepo,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
