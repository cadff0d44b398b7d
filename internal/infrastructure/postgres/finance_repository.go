package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
	"github.com/jhoicas/mobile-inventory/internal/domain/repository"
)

var _ repository.FinanceRepository = (*FinanceRepo)(nil)

// FinanceRepo ventas y gastos. Los montos viajan como NUMERIC vía pgx-shopspring-decimal.
type FinanceRepo struct {
	q Querier
}

func NewFinanceRepository(q Querier) *FinanceRepo {
	return &FinanceRepo{q: q}
}

func (r *FinanceRepo) CreateSale(ctx context.Context, s *entity.Sale) error {
	id, err := r.insert(ctx, "sales", s.Category, s.Amount, s.Date, s.ActorID, s.Description)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	s.ID = id
	return nil
}

func (r *FinanceRepo) CreateExpense(ctx context.Context, e *entity.Expense) error {
	id, err := r.insert(ctx, "expenses", e.Category, e.Amount, e.Date, e.ActorID, e.Description)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	e.ID = id
	return nil
}

func (r *FinanceRepo) insert(ctx context.Context, table, category string, amount decimal.Decimal, date time.Time, actorID int64, description string) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (category, amount, date, user_id, description)
		VALUES ($1, $2, $3, NULLIF($4::bigint, 0), $5)
		RETURNING id`, table)
	var id int64
	err := r.q.QueryRow(ctx, query, category, amount, date, actorID, description).Scan(&id)
	return id, err
}

func (r *FinanceRepo) ListSales(ctx context.Context, limit, offset int) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, listFinanceQuery("sales"), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Category, &s.Amount, &s.Date, &s.ActorID, &s.ActorName, &s.Description); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *FinanceRepo) ListExpenses(ctx context.Context, limit, offset int) ([]*entity.Expense, error) {
	rows, err := r.q.Query(ctx, listFinanceQuery("expenses"), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.Category, &e.Amount, &e.Date, &e.ActorID, &e.ActorName, &e.Description); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func listFinanceQuery(table string) string {
	return fmt.Sprintf(`
		SELECT f.id, f.category, f.amount, f.date, COALESCE(f.user_id, 0), COALESCE(u.username, ''), f.description
		FROM %s f
		LEFT JOIN users u ON u.id = f.user_id
		ORDER BY f.date DESC, f.id DESC
		LIMIT $1 OFFSET $2`, table)
}

func (r *FinanceRepo) CountSales(ctx context.Context) (int, error) {
	return r.count(ctx, "sales")
}

func (r *FinanceRepo) CountExpenses(ctx context.Context) (int, error) {
	return r.count(ctx, "expenses")
}

func (r *FinanceRepo) count(ctx context.Context, table string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// PeriodTotals suma ventas y gastos con fecha en [from, to).
func (r *FinanceRepo) PeriodTotals(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(amount) FROM sales WHERE date >= $1 AND date < $2), 0),
			COALESCE((SELECT SUM(amount) FROM expenses WHERE date >= $1 AND date < $2), 0)`
	var revenue, expenses decimal.Decimal
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&revenue, &expenses); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("period totals: %w", err)
	}
	return revenue, expenses, nil
}
