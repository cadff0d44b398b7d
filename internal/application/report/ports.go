package report

import (
	"context"

	"github.com/jhoicas/mobile-inventory/internal/application/dto"
)

// PDFGenerator puerto para la representación PDF del reporte mensual.
type PDFGenerator interface {
	GenerateMonthlyReportPDF(ctx context.Context, r *dto.MonthlyReportDTO) ([]byte, error)
}
