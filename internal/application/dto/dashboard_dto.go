package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO datos de GET /dashboard.
type DashboardSummaryDTO struct {
	LowStockProducts     int             `json:"low_stock_products"`
	LowStockRawMaterials int             `json:"low_stock_raw_materials"`
	UnreadNotifications  int             `json:"unread_notifications"`
	MonthRevenue         decimal.Decimal `json:"month_revenue"`
	MonthExpenses        decimal.Decimal `json:"month_expenses"`
	MonthProfit          decimal.Decimal `json:"month_profit"`
	StockDrift           int             `json:"stock_drift"` // ítems cuyo total no coincide con sus lotes
	DateLabel            string          `json:"date_label"`  // ej: "March 2024"
}
