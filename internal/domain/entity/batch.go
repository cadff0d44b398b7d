package entity

import "time"

// Batch cantidad de un ítem recibida o fabricada en una fecha.
// Nunca se elimina: al consumirse por completo queda Retired.
type Batch struct {
	ID         int64
	ItemType   string
	ItemID     int64
	Quantity   int64 // cantidad restante
	BatchDate  time.Time
	ProducedOn *time.Time // fabricación (productos) o recepción (materias primas)
	ExpiresOn  *time.Time
	Retired    bool
	CreatedAt  time.Time
}

// Expired indica si el lote venció respecto de now.
func (b *Batch) Expired(now time.Time) bool {
	return b.ExpiresOn != nil && b.ExpiresOn.Before(now)
}
