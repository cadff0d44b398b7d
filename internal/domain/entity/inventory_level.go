package entity

import "time"

// InventoryLevel stock actual de un ítem de catálogo (una fila por ítem).
// Denormalizado: solo el recorder de movimientos lo modifica.
type InventoryLevel struct {
	ItemType   string
	ItemID     int64
	TotalStock int64
	Threshold  int64
	UpdatedAt  time.Time
}

// IsLow indica si el nivel está en o por debajo del umbral.
func (l *InventoryLevel) IsLow() bool {
	return l.TotalStock <= l.Threshold
}
