package dto

import "github.com/shopspring/decimal"

// MonthlyReportDTO respuesta de GET /monthly-report/data.
type MonthlyReportDTO struct {
	Summary     ReportSummaryDTO `json:"summary"`
	MonthlyData []MonthDTO       `json:"monthly_data"`
}

// ReportSummaryDTO totales sobre la ventana devuelta.
type ReportSummaryDTO struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
	AvgProfit    decimal.Decimal `json:"avg_profit"`
}

// MonthDTO fila mensual (meses de más reciente a más antiguo).
// Los cambios son nil para el primer mes de la serie completa.
type MonthDTO struct {
	Month         string           `json:"month"` // YYYY-MM
	Revenue       decimal.Decimal  `json:"revenue"`
	Expenses      decimal.Decimal  `json:"expenses"`
	Profit        decimal.Decimal  `json:"profit"`
	RevenueChange *decimal.Decimal `json:"revenue_change"`
	ProfitChange  *decimal.Decimal `json:"profit_change"`
}
