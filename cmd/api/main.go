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

	_ "github.com/jhoicas/mobile-inventory/docs"
	"github.com/jhoicas/mobile-inventory/internal/application/auth"
	"github.com/jhoicas/mobile-inventory/internal/application/inventory"
	"github.com/jhoicas/mobile-inventory/internal/application/report"
	"github.com/jhoicas/mobile-inventory/internal/application/usecase"
	infraexcel "github.com/jhoicas/mobile-inventory/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/mobile-inventory/internal/infrastructure/pdf"
	"github.com/jhoicas/mobile-inventory/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/mobile-inventory/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/mobile-inventory/internal/interfaces/http"
	"github.com/jhoicas/mobile-inventory/pkg/config"
	"github.com/jhoicas/mobile-inventory/pkg/logger"
	"github.com/jhoicas/mobile-inventory/pkg/metrics"
	"github.com/jhoicas/mobile-inventory/pkg/migrate"
)

// devJWTSecret solo se usa en development cuando JWT_SECRET no está definido.
const devJWTSecret = "dev-only-insecure-secret"

// @title       Mobile Inventory API
// @version     1.0
// @description Panel de inventario: stock de productos y materias primas, lotes FIFO, producción, ventas, gastos y reporte mensual.
// @BasePath    /
// @securityDefinitions.apikey Bearer
// @in          header
// @name        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío, usando secreto de desarrollo")
		cfg.JWT.Secret = devJWTSecret
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	db := postgres.OpenDB(pool)
	if err := migrate.MaybeRunDev(ctx, cfg, log, db); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	// Redis opcional: revocación de sesiones y límite de intentos de login.
	var sessionStore auth.SessionStore
	if cfg.Redis.Enabled() {
		store, err := infraredis.New(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, sesiones sin revocación ni límite de intentos")
		} else {
			defer store.Close()
			sessionStore = store
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	historyRepo := postgres.NewHistoryLogRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	levelRepo := postgres.NewInventoryLevelRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	changeRepo := postgres.NewStockChangeRepository(pool)
	withdrawalRepo := postgres.NewWithdrawalRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	financeRepo := postgres.NewFinanceRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, historyRepo, sessionStore, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	recorderUC := inventory.NewRecorderUseCase(txRunner, log)
	stockUC := usecase.NewStockUseCase(catalogRepo, batchRepo, levelRepo)
	auditUC := usecase.NewAuditUseCase(changeRepo, withdrawalRepo, historyRepo, catalogRepo, infraexcel.NewStockChangeExporter())
	catalogUC := usecase.NewCatalogUseCase(catalogRepo, levelRepo, historyRepo, log)
	financeUC := usecase.NewFinanceUseCase(financeRepo, historyRepo, log)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, catalogRepo)
	dashboardUC := usecase.NewDashboardUseCase(levelRepo, notificationRepo, financeRepo)
	reportUC := report.NewMonthlyReportUseCase(reportRepo, infrapdf.NewMarotoPDFGenerator(), cfg.Report.DefaultMonths, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		Views:        httpRouter.NewViews(),
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(metrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Mobile Inventory API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", metrics.Handler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		RecorderUC:     recorderUC,
		StockUC:        stockUC,
		AuditUC:        auditUC,
		CatalogUC:      catalogUC,
		FinanceUC:      financeUC,
		NotificationUC: notificationUC,
		DashboardUC:    dashboardUC,
		ReportUC:       reportUC,
		SecureCookie:   !cfg.App.IsDev(),
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
