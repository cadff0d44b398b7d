// Package pdf genera la versión PDF del reporte mensual de ventas y gastos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + rango de meses  │  Fecha de generación    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ingresos totales / Ganancia total / Promedio      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Mes | Ingresos | Gastos | Ganancia | Variaciones    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/mobile-inventory/internal/application/dto"
	"github.com/jhoicas/mobile-inventory/internal/application/report"
)

var _ report.PDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorGreen   = &props.Color{Red: 20, Green: 120, Blue: 60}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	printer *message.Printer
	now     func() time.Time
}

// NewMarotoPDFGenerator construye el generador. Los montos se formatean con separador de miles en inglés.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{printer: message.NewPrinter(language.English), now: time.Now}
}

// GenerateMonthlyReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateMonthlyReportPDF(_ context.Context, r *dto.MonthlyReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Monthly Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(r.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(r.MonthlyData) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No sales recorded yet.", props.Text{Size: 9, Align: align.Center, Top: 3, Color: colorGray}),
		)))
	}
	for _, mo := range r.MonthlyData {
		m.AddRows(g.monthRow(mo))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Changes compare each month with the previous month that has sales. Amounts in store currency.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) headerRow(r *dto.MonthlyReportDTO) core.Row {
	period := "No data"
	if n := len(r.MonthlyData); n > 0 {
		period = r.MonthlyData[n-1].Month + " to " + r.MonthlyData[0].Month
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New("MONTHLY SALES & EXPENSES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Period: "+period, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generated "+g.now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func (g *MarotoPDFGenerator) summaryRow(s dto.ReportSummaryDTO) core.Row {
	box := func(label string, v decimal.Decimal) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Center}),
			text.New(g.money(v), props.Text{Style: fontstyle.Bold, Size: 11, Top: 6, Align: align.Center}),
		)
	}
	return row.New(14).Add(
		box("TOTAL REVENUE", s.TotalRevenue),
		box("TOTAL PROFIT", s.TotalProfit),
		box("AVERAGE PROFIT", s.AvgProfit),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Month", 2, align.Left),
		h("Revenue", 2, align.Right),
		h("Expenses", 2, align.Right),
		h("Profit", 2, align.Right),
		h("Rev. change", 2, align.Right),
		h("Profit change", 2, align.Right),
	)
}

func (g *MarotoPDFGenerator) monthRow(mo dto.MonthDTO) core.Row {
	cell := func(s string, a align.Type, c *props.Color) core.Col {
		return col.New(2).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: c}))
	}
	profitColor := colorGreen
	if mo.Profit.IsNegative() {
		profitColor = colorRed
	}
	return row.New(7).Add(
		cell(mo.Month, align.Left, nil),
		cell(g.money(mo.Revenue), align.Right, nil),
		cell(g.money(mo.Expenses), align.Right, nil),
		cell(g.money(mo.Profit), align.Right, profitColor),
		cell(g.change(mo.RevenueChange), align.Right, changeColor(mo.RevenueChange)),
		cell(g.change(mo.ProfitChange), align.Right, changeColor(mo.ProfitChange)),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money formatea con dos decimales y separador de miles: 1234.5 → "1,234.50".
func (g *MarotoPDFGenerator) money(d decimal.Decimal) string {
	return g.printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// change "—" cuando no hay mes anterior; con signo explícito en otro caso.
func (g *MarotoPDFGenerator) change(d *decimal.Decimal) string {
	if d == nil {
		return "—"
	}
	if d.IsPositive() {
		return "+" + g.money(*d)
	}
	return g.money(*d)
}

func changeColor(d *decimal.Decimal) *props.Color {
	switch {
	case d == nil:
		return colorGray
	case d.IsNegative():
		return colorRed
	default:
		return colorGreen
	}
}
