package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale hecho financiero de venta (append-only).
type Sale struct {
	ID          int64
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
	ActorID     int64
	ActorName   string
	Description string
}

// Expense hecho financiero de gasto (append-only).
type Expense struct {
	ID          int64
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
	ActorID     int64
	ActorName   string
	Description string
}
