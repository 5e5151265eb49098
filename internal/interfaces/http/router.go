package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockpilot-api/internal/application/auth"
	"github.com/jhoicas/stockpilot-api/internal/application/chat"
	"github.com/jhoicas/stockpilot-api/internal/application/ingest"
	"github.com/jhoicas/stockpilot-api/internal/application/inventory"
	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	ChatUC       *chat.UseCase
	IngestUC     *ingest.UseCase
	InventoryUC  *inventory.UseCase
	StockView    repository.StockViewRepository
	ProductRepo  repository.ProductRepository
	SupplierRepo repository.SupplierRepository
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Chat (protegido): cualquier rol puede consultar
	chatHandler := NewChatHandler(deps.ChatUC)
	protected.Post("/chat", chatHandler.Chat)

	// Products (protegido, solo lectura sobre la vista de stock)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.StockView, deps.ProductRepo)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierRepo)
	suppliers.Get("/", supplierHandler.List)

	// Imports (protegido; solo roles de escritura)
	imports := protected.Group("/imports", RequireRole(entity.RoleAdmin, entity.RoleUser))
	importHandler := NewImportHandler(deps.IngestUC)
	imports.Post("/", importHandler.Import)

	// Inventory movements (protegido; escritura solo roles de escritura)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/movements", RequireRole(entity.RoleAdmin, entity.RoleUser), inventoryHandler.RegisterMovement)
	invGroup.Get("/movements/:productID", inventoryHandler.History)
}
