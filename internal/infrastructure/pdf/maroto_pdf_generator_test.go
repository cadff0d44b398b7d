package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mobile-inventory/internal/application/dto"
)

func TestMoney(t *testing.T) {
	g := NewMarotoPDFGenerator()
	assert.Equal(t, "0.00", g.money(decimal.Zero))
	assert.Equal(t, "1,234.50", g.money(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "-400.00", g.money(decimal.NewFromInt(-400)))
	assert.Equal(t, "1,000,000.01", g.money(decimal.RequireFromString("1000000.006")))
}

func TestChange(t *testing.T) {
	g := NewMarotoPDFGenerator()
	up := decimal.NewFromInt(200)
	down := decimal.NewFromInt(-400)
	assert.Equal(t, "—", g.change(nil))
	assert.Equal(t, "+200.00", g.change(&up))
	assert.Equal(t, "-400.00", g.change(&down))
}

func TestGenerateMonthlyReportPDF(t *testing.T) {
	change := decimal.NewFromInt(200)
	r := &dto.MonthlyReportDTO{
		Summary: dto.ReportSummaryDTO{
			TotalRevenue: decimal.NewFromInt(2200),
			TotalProfit:  decimal.NewFromInt(800),
			AvgProfit:    decimal.NewFromInt(400),
		},
		MonthlyData: []dto.MonthDTO{
			{Month: "2024-02", Revenue: decimal.NewFromInt(1200), Expenses: decimal.NewFromInt(1000), Profit: decimal.NewFromInt(200), RevenueChange: &change},
			{Month: "2024-01", Revenue: decimal.NewFromInt(1000), Expenses: decimal.NewFromInt(400), Profit: decimal.NewFromInt(600)},
		},
	}

	b, err := NewMarotoPDFGenerator().GenerateMonthlyReportPDF(context.Background(), r)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestGenerateMonthlyReportPDF_SinDatos(t *testing.T) {
	b, err := NewMarotoPDFGenerator().GenerateMonthlyReportPDF(context.Background(), &dto.MonthlyReportDTO{})
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
