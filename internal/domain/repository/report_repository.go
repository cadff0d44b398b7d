package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyTotal ingresos y gastos de un mes calendario.
type MonthlyTotal struct {
	Month    time.Time // primer día del mes
	Revenue  decimal.Decimal
	Expenses decimal.Decimal
}

// ReportRepository consultas de solo lectura para el reporte mensual.
type ReportRepository interface {
	// MonthlyTotals devuelve los `limit` meses más recientes con ventas, de más reciente a más
	// antiguo. Un mes sin gastos trae Expenses = 0.
	MonthlyTotals(ctx context.Context, limit int) ([]MonthlyTotal, error)
}
