package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mobile-inventory/internal/application/usecase"
	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
)

// DashboardHandler páginas de consulta: resumen, stock y auditoría.
type DashboardHandler struct {
	dashboard *usecase.DashboardUseCase
	stock     *usecase.StockUseCase
	audit     *usecase.AuditUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashboard *usecase.DashboardUseCase, stock *usecase.StockUseCase, audit *usecase.AuditUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, stock: stock, audit: audit}
}

// Summary godoc
// @Summary      Resumen del panel
// @Description  Ítems con stock bajo, notificaciones sin leer y totales del mes en curso.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json,html
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.dashboard.Summary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, "dashboard", fiber.Map{"Title": "Dashboard"}, out)
}

// ProductStock godoc
// @Summary      Stock de productos
// @Tags         stock
// @Security     Bearer
// @Produce      json,html
// @Param        page  query  int  false  "página (1-based)"
// @Success      200   {object}  dto.ProductStockPage
// @Router       /products/stock [get]
func (h *DashboardHandler) ProductStock(c *fiber.Ctx) error {
	out, err := h.stock.ListProductStock(c.UserContext(), pageRequest(c))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, "products_stock", fiber.Map{"Title": "Product Stock"}, out)
}

// RawStock godoc
// @Summary      Stock de materias primas
// @Tags         stock
// @Security     Bearer
// @Produce      json,html
// @Param        page  query  int  false  "página (1-based)"
// @Success      200   {object}  dto.RawStockPage
// @Router       /raw/stock [get]
func (h *DashboardHandler) RawStock(c *fiber.Ctx) error {
	out, err := h.stock.ListRawStock(c.UserContext(), pageRequest(c))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, "raw_stock", fiber.Map{"Title": "Raw Material Stock"}, out)
}

// ProductBatches godoc
// @Summary      Lotes de productos
// @Tags         stock
// @Security     Bearer
// @Produce      json,html
// @Param        page  query  int  false  "página (1-based)"
// @Success      200   {object}  dto.BatchPage
// @Router       /products/batches [get]
func (h *DashboardHandler) ProductBatches(c *fiber.Ctx) error {
	return h.batches(c, entity.ItemTypeProduct, "Product Batches")
}

// RawBatches godoc
// @Summary      Lotes de materias primas
// @Tags         stock
// @Security     Bearer
// @Produce      json,html
// @Param        page  query  int  false  "página (1-based)"
// @Success      200   {object}  dto.BatchPage
// @Router       /raw/batches [get]
func (h *DashboardHandler) RawBatches(c *fiber.Ctx) error {
	return h.batches(c, entity.ItemTypeRawMaterial, "Raw Material Batches")
}

func (h *DashboardHandler) batches(c *fiber.Ctx, itemType, title string) error {
	out, err := h.stock.ListBatches(c.UserContext(), itemType, pageRequest(c))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, "batches", fiber.Map{"Title": title}, out)
}

// Replenishment godoc
// @Summary      Lista de reposición
// @Description  Ítems en o bajo su umbral con la cantidad sugerida para volver a 1.5 veces el umbral.
// @Tags         stock
// @Security     Bearer
// @Produce      json,html
// @Success      200  {object}  dto.LowStockList
// @Router       /replenishment [get]
func (h *DashboardHandler) Replenishment(c *fiber.Ctx) error {
	out, err := h.stock.Replenishment(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, "replenishment", fiber.Map{"Title": "Replenishment"}, out)
}

// StockChanges godoc
// @Summary      Cambios de stock
// @Tags         audit
// @Security     Bearer
// @Produce      json,html
// @Param        page  query  int  false  "página (1-based)"
// @Success      200   {object}  dto.StockChangePage
// @Router       /stock-changes [get]
func (h *DashboardHandler) StockChanges(c *fiber.Ctx) error {
	out, err := h.audit.ListStockChanges(c.UserContext(), pageRequest(c))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, "stock_changes", fiber.Map{"Title": "Stock Changes"}, out)
}

// ExportStockChanges godoc
// @Summary      Exportar cambios de stock a Excel
// @Tags         audit
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /stock-changes/export [get]
func (h *DashboardHandler) ExportStockChanges(c *fiber.Ctx) error {
	b, err := h.audit.ExportStockChanges(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock_changes.xlsx"`)
	return c.Send(b)
}

// History godoc
// @Summary      Historial de acciones
// @Tags         audit
// @Security     Bearer
// @Produce      json,html
// @Param        page  query  int  false  "página (1-based)"
// @Success      200   {object}  dto.HistoryLogPage
// @Router       /history-log [get]
func (h *DashboardHandler) History(c *fiber.Ctx) error {
	out, err := h.audit.ListHistory(c.UserContext(), pageRequest(c))
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, "history_log", fiber.Map{"Title": "History Log"}, out)
}
