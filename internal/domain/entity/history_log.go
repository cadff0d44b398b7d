package entity

import "time"

// Tipos de entrada del historial administrativo (tabla history_log_types).
const (
	LogTypeLogin           = "login"
	LogTypeLogout          = "logout"
	LogTypeSaleRecorded    = "sale_recorded"
	LogTypeExpenseRecorded = "expense_recorded"
	LogTypeCatalogCreated  = "catalog_created"
	LogTypeCatalogDeleted  = "catalog_deleted"
	LogTypeThresholdSet    = "threshold_set"
)

// HistoryLog entrada de auditoría para acciones administrativas fuera del ledger de stock.
type HistoryLog struct {
	ID        int64
	ActorID   int64
	ActorName string
	LogType   string
	Timestamp time.Time
}
