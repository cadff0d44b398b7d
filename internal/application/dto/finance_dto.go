package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinanceEntryRequest body para POST /api/sales y POST /api/expenses.
type FinanceEntryRequest struct {
	Category    string          `json:"category" validate:"required,max=100"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Description string          `json:"description" validate:"max=1000"`
}

// FinanceEntryDTO venta o gasto.
type FinanceEntryDTO struct {
	ID          int64           `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Actor       string          `json:"actor"`
	Description string          `json:"description,omitempty"`
}

// FinancePage página de ventas o gastos.
type FinancePage struct {
	Items []FinanceEntryDTO `json:"items"`
	Total decimal.Decimal   `json:"total_amount"`
	Page  PageResponse      `json:"page"`
}
