package entity

import "time"

// Categorías de cambio de stock.
const (
	ChangeCategoryBatchReceived = "batch_received"
	ChangeCategoryProduction    = "production"
	ChangeCategoryConsumption   = "consumption"
	ChangeCategorySale          = "sale"
	ChangeCategoryWithdrawal    = "withdrawal"
	ChangeCategoryAdjustment    = "adjustment"
)

// StockChange registro inmutable de un delta de stock (ledger de auditoría).
type StockChange struct {
	ID             int64
	ItemType       string
	ItemID         int64
	QuantityChange int64 // positivo entrada, negativo salida
	Category       string
	Date           time.Time
	ActorID        int64
	ActorName      string
}

// Withdrawal retiro de stock con motivo obligatorio; siempre acompaña a un StockChange.
type Withdrawal struct {
	ID            int64
	StockChangeID int64
	ItemType      string
	ItemID        int64
	Quantity      int64
	Reason        string
	Date          time.Time
	ActorID       int64
	ActorName     string
}

// ValidChangeCategory indica si c es una categoría de cambio conocida.
func ValidChangeCategory(c string) bool {
	switch c {
	case ChangeCategoryBatchReceived, ChangeCategoryProduction, ChangeCategoryConsumption,
		ChangeCategorySale, ChangeCategoryWithdrawal, ChangeCategoryAdjustment:
		return true
	}
	return false
}
