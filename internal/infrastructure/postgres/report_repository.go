package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/mobile-inventory/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo agregados mensuales de ventas y gastos.
type ReportRepo struct {
	q Querier
}

func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// MonthlyTotals la serie la definen los meses con ventas; los gastos se unen por mes (0 si no hay).
// El LEFT JOIN solo existe en este SQL: los tests de report.Build reciben filas ya unidas y no lo cubren.
func (r *ReportRepo) MonthlyTotals(ctx context.Context, limit int) ([]repository.MonthlyTotal, error) {
	query := `
		WITH sales_by_month AS (
			SELECT date_trunc('month', date)::date AS month, SUM(amount) AS revenue
			FROM sales
			GROUP BY 1
		), expenses_by_month AS (
			SELECT date_trunc('month', date)::date AS month, SUM(amount) AS expenses
			FROM expenses
			GROUP BY 1
		)
		SELECT s.month, s.revenue, COALESCE(e.expenses, 0)
		FROM sales_by_month s
		LEFT JOIN expenses_by_month e ON e.month = s.month
		ORDER BY s.month DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("monthly totals: %w", err)
	}
	defer rows.Close()
	var list []repository.MonthlyTotal
	for rows.Next() {
		var m repository.MonthlyTotal
		if err := rows.Scan(&m.Month, &m.Revenue, &m.Expenses); err != nil {
			return nil, fmt.Errorf("scan monthly total: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
