package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockChangeRequest body para POST /api/stock-changes.
type StockChangeRequest struct {
	ItemType string `json:"item_type" validate:"required,item_type"`
	ItemID   int64  `json:"item_id" validate:"required,gt=0"`
	Delta    int64  `json:"quantity_change" validate:"required"`
	Category string `json:"category" validate:"required,oneof=consumption sale adjustment"`
}

// WithdrawalRequest body para POST /api/withdrawals.
type WithdrawalRequest struct {
	ItemType string `json:"item_type" validate:"required,item_type"`
	ItemID   int64  `json:"item_id" validate:"required,gt=0"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
	Reason   string `json:"reason" validate:"required,max=500"`
}

// BatchRequest body para POST /api/batches. Fechas en formato YYYY-MM-DD.
type BatchRequest struct {
	ItemType   string           `json:"item_type" validate:"required,item_type"`
	ItemID     int64            `json:"item_id" validate:"required,gt=0"`
	Quantity   int64            `json:"quantity" validate:"required,gt=0"`
	BatchDate  string           `json:"batch_date" validate:"omitempty,datetime=2006-01-02"`
	ProducedOn string           `json:"produced_on" validate:"omitempty,datetime=2006-01-02"`
	ExpiresOn  string           `json:"expires_on" validate:"omitempty,datetime=2006-01-02"`
	UnitCost   *decimal.Decimal `json:"unit_cost,omitempty"`
}

// ProduceRequest body para POST /api/production.
type ProduceRequest struct {
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	BatchDate string `json:"batch_date" validate:"omitempty,datetime=2006-01-02"`
	ExpiresOn string `json:"expires_on" validate:"omitempty,datetime=2006-01-02"`
}

// ThresholdRequest body para PUT /api/inventory/:item_type/:id/threshold.
type ThresholdRequest struct {
	Threshold int64 `json:"threshold" validate:"gte=0"`
}

// StockChangeDTO fila del listado de cambios de stock con la etiqueta del ítem resuelta.
type StockChangeDTO struct {
	ID             int64     `json:"id"`
	ItemType       string    `json:"item_type"`
	ItemID         int64     `json:"item_id"`
	ItemLabel      string    `json:"item_label"`
	QuantityChange int64     `json:"quantity_change"`
	Category       string    `json:"category"`
	Date           time.Time `json:"date"`
	Actor          string    `json:"actor"`
}

// StockChangePage página de cambios de stock.
type StockChangePage struct {
	Items []StockChangeDTO `json:"items"`
	Page  PageResponse     `json:"page"`
}

// WithdrawalDTO fila del listado de retiros.
type WithdrawalDTO struct {
	ID            int64     `json:"id"`
	StockChangeID int64     `json:"stock_change_id"`
	ItemType      string    `json:"item_type"`
	ItemID        int64     `json:"item_id"`
	ItemLabel     string    `json:"item_label"`
	Quantity      int64     `json:"quantity"`
	Reason        string    `json:"reason"`
	Date          time.Time `json:"date"`
	Actor         string    `json:"actor"`
}

// WithdrawalPage página de retiros.
type WithdrawalPage struct {
	Items []WithdrawalDTO `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ProductStockDTO fila de GET /products/stock.
type ProductStockDTO struct {
	ID          int64           `json:"id"`
	Label       string          `json:"label"`
	Type        string          `json:"type"`
	Variant     string          `json:"variant"`
	Size        string          `json:"size"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	SrpPrice    decimal.Decimal `json:"srp_price"`
	TotalStock  int64           `json:"total_stock"`
	Threshold   int64           `json:"threshold"`
	LowStock    bool            `json:"low_stock"`
	Description string          `json:"description,omitempty"`
}

// ProductStockPage página de stock de productos.
type ProductStockPage struct {
	Items []ProductStockDTO `json:"items"`
	Page  PageResponse      `json:"page"`
}

// RawStockDTO fila de GET /raw/stock.
type RawStockDTO struct {
	ID           int64           `json:"id"`
	Label        string          `json:"label"`
	Name         string          `json:"name"`
	Size         string          `json:"size"`
	Unit         string          `json:"unit"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	TotalStock   int64           `json:"total_stock"`
	Threshold    int64           `json:"threshold"`
	LowStock     bool            `json:"low_stock"`
}

// RawStockPage página de stock de materias primas.
type RawStockPage struct {
	Items []RawStockDTO `json:"items"`
	Page  PageResponse  `json:"page"`
}

// BatchDTO lote creado, fabricado o listado. ItemLabel solo viene en los listados.
type BatchDTO struct {
	ID         int64      `json:"id"`
	ItemType   string     `json:"item_type"`
	ItemID     int64      `json:"item_id"`
	ItemLabel  string     `json:"item_label,omitempty"`
	Quantity   int64      `json:"quantity"`
	BatchDate  time.Time  `json:"batch_date"`
	ProducedOn *time.Time `json:"produced_on,omitempty"`
	ExpiresOn  *time.Time `json:"expires_on,omitempty"`
	Retired    bool       `json:"retired"`
}

// BatchPage página de lotes de un tipo de ítem, más recientes primero.
type BatchPage struct {
	ItemType string       `json:"item_type"`
	Items    []BatchDTO   `json:"items"`
	Page     PageResponse `json:"page"`
}

// LowStockDTO ítem en o bajo su umbral con la cantidad sugerida de pedido.
type LowStockDTO struct {
	ItemType       string `json:"item_type"`
	ItemID         int64  `json:"item_id"`
	ItemLabel      string `json:"item_label"`
	TotalStock     int64  `json:"total_stock"`
	Threshold      int64  `json:"threshold"`
	SuggestedOrder int64  `json:"suggested_order"`
}

// LowStockList lista de reposición.
type LowStockList struct {
	Items []LowStockDTO `json:"items"`
}

// ProduceResponse resultado de POST /api/production.
type ProduceResponse struct {
	Batch   BatchDTO `json:"batch"`
	Changes []int64  `json:"stock_change_ids"`
}

// NotificationDTO notificación de stock bajo.
type NotificationDTO struct {
	ID        int64     `json:"id"`
	ItemType  string    `json:"item_type"`
	ItemID    int64     `json:"item_id"`
	ItemLabel string    `json:"item_label"`
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"is_read"`
}

// NotificationPage página de notificaciones.
type NotificationPage struct {
	Items  []NotificationDTO `json:"items"`
	Unread int               `json:"unread"`
	Page   PageResponse      `json:"page"`
}

// HistoryLogDTO entrada del historial.
type HistoryLogDTO struct {
	ID        int64     `json:"id"`
	Actor     string    `json:"actor"`
	LogType   string    `json:"log_type"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryLogPage página del historial.
type HistoryLogPage struct {
	Items []HistoryLogDTO `json:"items"`
	Page  PageResponse    `json:"page"`
}
