package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mobile-inventory/internal/application/dto"
	"github.com/jhoicas/mobile-inventory/internal/domain"
	"github.com/jhoicas/mobile-inventory/internal/domain/repository"
)

type fakeReportRepo struct {
	rows      []repository.MonthlyTotal
	err       error
	lastLimit int
}

func (f *fakeReportRepo) MonthlyTotals(ctx context.Context, limit int) ([]repository.MonthlyTotal, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if len(f.rows) > limit {
		return f.rows[:limit], nil
	}
	return f.rows, nil
}

type fakePDF struct {
	got *dto.MonthlyReportDTO
}

func (f *fakePDF) GenerateMonthlyReportPDF(ctx context.Context, r *dto.MonthlyReportDTO) ([]byte, error) {
	f.got = r
	return []byte("%PDF-1.3"), nil
}

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestMonthlyReport_SoloEnero(t *testing.T) {
	repo := &fakeReportRepo{rows: []repository.MonthlyTotal{
		{Month: month(2024, time.January), Revenue: d(1000), Expenses: d(400)},
	}}
	uc := NewMonthlyReportUseCase(repo, nil, 12, nil)

	r, err := uc.MonthlyReport(context.Background(), 12)
	require.NoError(t, err)

	assert.Equal(t, 13, repo.lastLimit)
	require.Len(t, r.MonthlyData, 1)
	jan := r.MonthlyData[0]
	assert.Equal(t, "2024-01", jan.Month)
	assert.True(t, d(600).Equal(jan.Profit))
	assert.Nil(t, jan.RevenueChange, "el primer mes de la serie no tiene predecesor")
	assert.Nil(t, jan.ProfitChange)

	assert.True(t, d(1000).Equal(r.Summary.TotalRevenue))
	assert.True(t, d(600).Equal(r.Summary.TotalProfit))
	assert.True(t, d(600).Equal(r.Summary.AvgProfit))
}

func TestMonthlyReport_EneroFebrero(t *testing.T) {
	repo := &fakeReportRepo{rows: []repository.MonthlyTotal{
		{Month: month(2024, time.February), Revenue: d(1200), Expenses: d(1000)},
		{Month: month(2024, time.January), Revenue: d(1000), Expenses: d(400)},
	}}
	uc := NewMonthlyReportUseCase(repo, nil, 12, nil)

	r, err := uc.MonthlyReport(context.Background(), 12)
	require.NoError(t, err)

	require.Len(t, r.MonthlyData, 2)
	feb := r.MonthlyData[0]
	assert.Equal(t, "2024-02", feb.Month)
	assert.True(t, d(200).Equal(feb.Profit))
	require.NotNil(t, feb.RevenueChange)
	assert.True(t, d(200).Equal(*feb.RevenueChange))
	require.NotNil(t, feb.ProfitChange)
	assert.True(t, d(-400).Equal(*feb.ProfitChange))
	assert.Nil(t, r.MonthlyData[1].ProfitChange)
}

func TestMonthlyReport_MesSinGastos(t *testing.T) {
	repo := &fakeReportRepo{rows: []repository.MonthlyTotal{
		{Month: month(2024, time.February), Revenue: d(800), Expenses: decimal.Zero},
		{Month: month(2024, time.January), Revenue: d(1000), Expenses: d(200)},
	}}
	uc := NewMonthlyReportUseCase(repo, nil, 12, nil)

	r, err := uc.MonthlyReport(context.Background(), 12)
	require.NoError(t, err)

	feb := r.MonthlyData[0]
	assert.True(t, d(800).Equal(feb.Profit), "un mes sin gastos tiene expenses 0")
	assert.True(t, d(-200).Equal(*feb.RevenueChange))
	assert.True(t, d(0).Equal(*feb.ProfitChange))
}

func TestMonthlyReport_VentanaUsaPredecesorReal(t *testing.T) {
	repo := &fakeReportRepo{rows: []repository.MonthlyTotal{
		{Month: month(2024, time.March), Revenue: d(300), Expenses: d(0)},
		{Month: month(2024, time.February), Revenue: d(200), Expenses: d(50)},
		{Month: month(2024, time.January), Revenue: d(100), Expenses: d(0)},
	}}
	uc := NewMonthlyReportUseCase(repo, nil, 12, nil)

	r, err := uc.MonthlyReport(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, 3, repo.lastLimit)
	require.Len(t, r.MonthlyData, 2)
	assert.Equal(t, "2024-03", r.MonthlyData[0].Month)
	assert.Equal(t, "2024-02", r.MonthlyData[1].Month)
	require.NotNil(t, r.MonthlyData[1].RevenueChange, "febrero se compara contra enero aunque enero quede fuera")
	assert.True(t, d(100).Equal(*r.MonthlyData[1].RevenueChange))
	assert.True(t, d(50).Equal(*r.MonthlyData[1].ProfitChange))
	assert.True(t, d(500).Equal(r.Summary.TotalRevenue))
	assert.True(t, d(450).Equal(r.Summary.TotalProfit))
	assert.True(t, decimal.NewFromFloat(225).Equal(r.Summary.AvgProfit))
}

func TestMonthlyReport_SinDatos(t *testing.T) {
	uc := NewMonthlyReportUseCase(&fakeReportRepo{}, nil, 12, nil)

	r, err := uc.MonthlyReport(context.Background(), 0)
	require.NoError(t, err)

	assert.NotNil(t, r.MonthlyData)
	assert.Empty(t, r.MonthlyData)
	assert.True(t, r.Summary.AvgProfit.IsZero())
	assert.True(t, r.Summary.TotalRevenue.IsZero())
}

func TestMonthlyReport_LimiteFueraDeRango(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := NewMonthlyReportUseCase(repo, nil, 6, nil)

	_, err := uc.MonthlyReport(context.Background(), -1)
	require.NoError(t, err)
	assert.Equal(t, 7, repo.lastLimit)

	_, err = uc.MonthlyReport(context.Background(), 10000)
	require.NoError(t, err)
	assert.Equal(t, MaxMonths+1, repo.lastLimit)
}

func TestMonthlyReport_ErrorDeRepositorio(t *testing.T) {
	uc := NewMonthlyReportUseCase(&fakeReportRepo{err: errors.New("dial tcp: connection refused")}, nil, 12, nil)

	_, err := uc.MonthlyReport(context.Background(), 12)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestMonthlyReportPDF(t *testing.T) {
	repo := &fakeReportRepo{rows: []repository.MonthlyTotal{
		{Month: month(2024, time.May), Revenue: d(10), Expenses: d(1)},
	}}
	pdf := &fakePDF{}
	uc := NewMonthlyReportUseCase(repo, pdf, 12, nil)

	b, name, err := uc.MonthlyReportPDF(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "monthly-report-2024-05.pdf", name)
	assert.Equal(t, []byte("%PDF-1.3"), b)
	require.NotNil(t, pdf.got)
	assert.Len(t, pdf.got.MonthlyData, 1)
}
