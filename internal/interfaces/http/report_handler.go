package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mobile-inventory/internal/application/report"
)

// ReportHandler reporte mensual de ingresos, gastos y utilidad.
type ReportHandler struct {
	uc *report.MonthlyReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.MonthlyReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Page muestra la página; los datos se cargan desde /monthly-report/data.
func (h *ReportHandler) Page(c *fiber.Ctx) error {
	return c.Render("monthly_report", fiber.Map{
		"Title":  "Monthly Report",
		"Actor":  GetActor(c),
		"Months": c.QueryInt("months", 0),
	}, layout)
}

// Data godoc
// @Summary      Datos del reporte mensual
// @Description  Meses de más reciente a más antiguo con variación contra el mes anterior. 503 si la base no responde.
// @Tags         report
// @Security     Bearer
// @Produce      json
// @Param        months  query  int  false  "cantidad de meses (por defecto la configurada)"
// @Success      200     {object}  dto.MonthlyReportDTO
// @Failure      503     {object}  dto.ErrorResponse
// @Router       /monthly-report/data [get]
func (h *ReportHandler) Data(c *fiber.Ctx) error {
	out, err := h.uc.MonthlyReport(c.UserContext(), c.QueryInt("months", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Reporte mensual en PDF
// @Tags         report
// @Security     Bearer
// @Produce      application/pdf
// @Param        months  query  int  false  "cantidad de meses"
// @Success      200     {file}  file
// @Failure      503     {object}  dto.ErrorResponse
// @Router       /monthly-report/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	b, filename, err := h.uc.MonthlyReportPDF(c.UserContext(), c.QueryInt("months", 0))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(b)
}
