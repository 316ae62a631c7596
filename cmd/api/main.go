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

	"github.com/itsales/pos-api/internal/application/auth"
	"github.com/itsales/pos-api/internal/application/inventory"
	"github.com/itsales/pos-api/internal/application/reports"
	"github.com/itsales/pos-api/internal/application/sales"
	"github.com/itsales/pos-api/internal/application/usecase"
	"github.com/itsales/pos-api/internal/application/workflow"
	"github.com/itsales/pos-api/internal/infrastructure/export"
	"github.com/itsales/pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/itsales/pos-api/internal/interfaces/http"
	"github.com/itsales/pos-api/pkg/config"
	"github.com/itsales/pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: "pos-api",
		Env:     cfg.App.Env,
		Level:   "info",
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

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	validationRepo := postgres.NewValidationRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	settingUC := usecase.NewSettingUseCase(settingRepo)
	saleUC := sales.NewUseCase(txRunner, saleRepo, settingRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, movementRepo)
	listMovementsUC := inventory.NewListMovementsUseCase(movementRepo)
	workflowUC := workflow.NewUseCase(txRunner, validationRepo, categoryRepo, productRepo, saleRepo)

	companyName := cfg.App.Name
	if setting, err := settingRepo.Get(); err == nil && setting != nil {
		companyName = setting.CompanyName
	}
	reportUC := reports.NewUseCase(reportRepo, map[string]reports.Exporter{
		reports.FormatExcel: export.NewExcelExporter(),
		reports.FormatPDF:   export.NewPDFExporter(companyName),
		reports.FormatCSV:   export.NewCSVExporter(),
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		UserUC:           userUC,
		CategoryUC:       categoryUC,
		ProductUC:        productUC,
		SettingUC:        settingUC,
		SaleUC:           saleUC,
		RegisterMovement: registerMovementUC,
		ListMovements:    listMovementsUC,
		WorkflowUC:       workflowUC,
		ReportUC:         reportUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	httpLog := log.Component("http")
	go func() {
		httpLog.Info().Str("addr", cfg.HTTP.Addr()).Msg("escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			httpLog.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		httpLog.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
