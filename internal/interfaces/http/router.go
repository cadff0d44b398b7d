package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mobile-inventory/internal/application/inventory"
	"github.com/jhoicas/mobile-inventory/internal/application/report"
	"github.com/jhoicas/mobile-inventory/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         AuthService
	RecorderUC     *inventory.RecorderUseCase
	StockUC        *usecase.StockUseCase
	AuditUC        *usecase.AuditUseCase
	CatalogUC      *usecase.CatalogUseCase
	FinanceUC      *usecase.FinanceUseCase
	NotificationUC *usecase.NotificationUseCase
	DashboardUC    *usecase.DashboardUseCase
	ReportUC       *report.MonthlyReportUseCase
	SecureCookie   bool
}

// Router registra páginas y API. Todo salvo /login exige sesión.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.SecureCookie)
	app.Get("/login", authHandler.LoginPage)
	app.Post("/login", authHandler.Login)

	// Rutas protegidas (cookie de sesión o Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.AuthUC))
	protected.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/dashboard", fiber.StatusSeeOther) })
	protected.Get("/logout", authHandler.Logout)
	protected.Post("/logout", authHandler.Logout)

	// Páginas de consulta
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.StockUC, deps.AuditUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
	protected.Get("/products/stock", dashboardHandler.ProductStock)
	protected.Get("/products/batches", dashboardHandler.ProductBatches)
	protected.Get("/raw/stock", dashboardHandler.RawStock)
	protected.Get("/raw/batches", dashboardHandler.RawBatches)
	protected.Get("/replenishment", dashboardHandler.Replenishment)
	protected.Get("/stock-changes", dashboardHandler.StockChanges)
	protected.Get("/stock-changes/export", dashboardHandler.ExportStockChanges)
	protected.Get("/history-log", dashboardHandler.History)

	financeHandler := NewFinanceHandler(deps.FinanceUC)
	protected.Get("/sales", financeHandler.Sales)
	protected.Get("/expenses", financeHandler.Expenses)

	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/monthly-report", reportHandler.Page)
	protected.Get("/monthly-report/data", reportHandler.Data)
	protected.Get("/monthly-report/pdf", reportHandler.PDF)

	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	protected.Get("/notifications", notificationHandler.List)
	protected.Post("/notifications/:id/read", notificationHandler.MarkRead)

	// API JSON
	api := protected.Group("/api")

	inventoryHandler := NewInventoryHandler(deps.RecorderUC, deps.AuditUC, deps.CatalogUC)
	api.Post("/stock-changes", inventoryHandler.RecordChange)
	api.Get("/withdrawals", inventoryHandler.ListWithdrawals)
	api.Post("/withdrawals", inventoryHandler.RecordWithdrawal)
	api.Post("/batches", inventoryHandler.ReceiveBatch)
	api.Post("/production", inventoryHandler.Produce)
	api.Put("/inventory/:item_type/:id/threshold", inventoryHandler.SetThreshold)

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Post("/products", catalogHandler.CreateProduct)
	api.Delete("/products/:id", catalogHandler.DeleteProduct)
	api.Put("/products/:id/recipe", catalogHandler.SetRecipe)
	api.Post("/raw-materials", catalogHandler.CreateRawMaterial)
	api.Delete("/raw-materials/:id", catalogHandler.DeleteRawMaterial)

	api.Post("/sales", financeHandler.RecordSale)
	api.Post("/expenses", financeHandler.RecordExpense)
}
