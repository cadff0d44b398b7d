package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
)

// FinanceRepository ventas y gastos (append-only).
type FinanceRepository interface {
	CreateSale(ctx context.Context, s *entity.Sale) error
	CreateExpense(ctx context.Context, e *entity.Expense) error
	ListSales(ctx context.Context, limit, offset int) ([]*entity.Sale, error)
	CountSales(ctx context.Context) (int, error)
	ListExpenses(ctx context.Context, limit, offset int) ([]*entity.Expense, error)
	CountExpenses(ctx context.Context) (int, error)
	// PeriodTotals suma ventas y gastos en [from, to).
	PeriodTotals(ctx context.Context, from, to time.Time) (revenue, expenses decimal.Decimal, err error)
}
