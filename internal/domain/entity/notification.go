package entity

import "time"

// Tipos de notificación.
const (
	NotificationLowStock = "low_stock"
)

// Notification aviso generado por el recorder al cruzar el umbral.
type Notification struct {
	ID        int64
	ItemType  string
	ItemID    int64
	Kind      string
	Timestamp time.Time
	IsRead    bool
}
