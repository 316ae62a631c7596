package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/itsales/pos-api/internal/application/auth"
	"github.com/itsales/pos-api/internal/application/inventory"
	"github.com/itsales/pos-api/internal/application/reports"
	"github.com/itsales/pos-api/internal/application/sales"
	"github.com/itsales/pos-api/internal/application/usecase"
	"github.com/itsales/pos-api/internal/application/workflow"
	"github.com/itsales/pos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	UserUC           *usecase.UserUseCase
	CategoryUC       *usecase.CategoryUseCase
	ProductUC        *usecase.ProductUseCase
	SettingUC        *usecase.SettingUseCase
	SaleUC           *sales.UseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ListMovements    *inventory.ListMovementsUseCase
	WorkflowUC       *workflow.UseCase
	ReportUC         *reports.UseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)

	workflowHandler := NewWorkflowHandler(deps.WorkflowUC)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", workflowHandler.Delete(entity.TargetCategory))
	categories.Post("/:id/request-deletion", workflowHandler.RequestDeletion(entity.TargetCategory))
	categories.Post("/:id/request-restoration", workflowHandler.RequestRestoration(entity.TargetCategory))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", workflowHandler.Delete(entity.TargetProduct))
	products.Post("/:id/request-deletion", workflowHandler.RequestDeletion(entity.TargetProduct))
	products.Post("/:id/request-restoration", workflowHandler.RequestRestoration(entity.TargetProduct))

	// Stock movements (protegido)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.RegisterMovement, deps.ListMovements)
	stock.Post("/movements", stockHandler.RegisterMovement)
	stock.Get("/movements", stockHandler.ListMovements)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Delete("/:id", workflowHandler.Delete(entity.TargetSale))
	salesGroup.Post("/:id/request-deletion", workflowHandler.RequestDeletion(entity.TargetSale))
	salesGroup.Post("/:id/request-restoration", workflowHandler.RequestRestoration(entity.TargetSale))

	// Validations (solo admin)
	validations := protected.Group("/validations", RequireRole(entity.RoleAdmin))
	validationHandler := NewValidationHandler(deps.WorkflowUC)
	validations.Get("/", validationHandler.List)
	validations.Post("/:id/approve", validationHandler.Approve)
	validations.Post("/:id/reject", validationHandler.Reject)

	// Settings (lectura general, escritura admin)
	settings := protected.Group("/settings")
	settingHandler := NewSettingHandler(deps.SettingUC)
	settings.Get("/", settingHandler.Get)
	settings.Put("/", RequireRole(entity.RoleAdmin), settingHandler.Update)

	// Dashboard y reportes (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/dashboard", reportHandler.Dashboard)
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/sales", reportHandler.SalesReport)
	reportsGroup.Get("/stock", reportHandler.StockReport)
	reportsGroup.Get("/export", reportHandler.Export)
}
