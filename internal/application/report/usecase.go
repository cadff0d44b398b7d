package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mobile-inventory/internal/application/dto"
	"github.com/jhoicas/mobile-inventory/internal/domain"
	"github.com/jhoicas/mobile-inventory/internal/domain/repository"
	"github.com/jhoicas/mobile-inventory/pkg/logger"
)

// MaxMonths tope de meses que se pueden pedir en un reporte.
const MaxMonths = 120

// MonthlyReportUseCase serie mensual de ingresos, gastos y utilidad con variaciones mes a mes.
type MonthlyReportUseCase struct {
	repo          repository.ReportRepository
	pdf           PDFGenerator
	defaultMonths int
	log           *logger.Logger
}

// NewMonthlyReportUseCase construye el caso de uso. pdf puede ser nil si no se exporta.
func NewMonthlyReportUseCase(repo repository.ReportRepository, pdf PDFGenerator, defaultMonths int, log *logger.Logger) *MonthlyReportUseCase {
	if defaultMonths <= 0 {
		defaultMonths = 12
	}
	if log == nil {
		log = logger.Nop()
	}
	return &MonthlyReportUseCase{repo: repo, pdf: pdf, defaultMonths: defaultMonths, log: log.Named("report")}
}

// MonthlyReport devuelve los `limit` meses más recientes (de más reciente a más antiguo).
// Se pide un mes extra para que la variación del mes más antiguo de la ventana se calcule
// contra su predecesor real; ese mes extra se descarta después.
// Un error del repositorio se devuelve como domain.ErrUpstreamUnavailable.
func (uc *MonthlyReportUseCase) MonthlyReport(ctx context.Context, limit int) (*dto.MonthlyReportDTO, error) {
	if limit <= 0 {
		limit = uc.defaultMonths
	}
	if limit > MaxMonths {
		limit = MaxMonths
	}

	rows, err := uc.repo.MonthlyTotals(ctx, limit+1)
	if err != nil {
		uc.log.Error().Err(err).Int("limit", limit).Msg("monthly totals query failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	return Build(rows, limit), nil
}

// MonthlyReportPDF genera el PDF del mismo reporte.
func (uc *MonthlyReportUseCase) MonthlyReportPDF(ctx context.Context, limit int) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("pdf generator not configured")
	}
	r, err := uc.MonthlyReport(ctx, limit)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.GenerateMonthlyReportPDF(ctx, r)
	if err != nil {
		return nil, "", fmt.Errorf("generate monthly report pdf: %w", err)
	}
	filename := "monthly-report.pdf"
	if len(r.MonthlyData) > 0 {
		filename = fmt.Sprintf("monthly-report-%s.pdf", r.MonthlyData[0].Month)
	}
	return b, filename, nil
}

// Build arma el reporte a partir de filas ordenadas de más reciente a más antiguo.
// Cada fila compara contra la siguiente (su mes anterior en la serie); la última fila
// de la serie completa no tiene predecesor y queda con variaciones nil.
func Build(rows []repository.MonthlyTotal, limit int) *dto.MonthlyReportDTO {
	out := &dto.MonthlyReportDTO{MonthlyData: []dto.MonthDTO{}}

	n := len(rows)
	if n > limit {
		n = limit
	}
	totalRevenue := decimal.Zero
	totalProfit := decimal.Zero
	for i := 0; i < n; i++ {
		cur := rows[i]
		profit := cur.Revenue.Sub(cur.Expenses)
		m := dto.MonthDTO{
			Month:    cur.Month.Format("2006-01"),
			Revenue:  cur.Revenue,
			Expenses: cur.Expenses,
			Profit:   profit,
		}
		if i+1 < len(rows) {
			prev := rows[i+1]
			rc := cur.Revenue.Sub(prev.Revenue)
			pc := profit.Sub(prev.Revenue.Sub(prev.Expenses))
			m.RevenueChange = &rc
			m.ProfitChange = &pc
		}
		out.MonthlyData = append(out.MonthlyData, m)
		totalRevenue = totalRevenue.Add(cur.Revenue)
		totalProfit = totalProfit.Add(profit)
	}

	out.Summary = dto.ReportSummaryDTO{
		TotalRevenue: totalRevenue,
		TotalProfit:  totalProfit,
		AvgProfit:    decimal.Zero,
	}
	if n > 0 {
		out.Summary.AvgProfit = totalProfit.Div(decimal.NewFromInt(int64(n))).Round(2)
	}
	return out
}
