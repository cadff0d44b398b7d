package repository

import (
	"context"

	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
)

// InventoryLevelRepository puerto de persistencia para los niveles de inventario.
// Fuera del recorder solo se usa para lectura y para fijar el umbral.
type InventoryLevelRepository interface {
	// GetForUpdate obtiene el nivel y bloquea la fila (SELECT FOR UPDATE).
	// Devuelve nil, nil si el ítem no existe.
	GetForUpdate(ctx context.Context, ref entity.ItemRef) (*entity.InventoryLevel, error)
	UpdateTotal(ctx context.Context, ref entity.ItemRef, total int64) error
	SetThreshold(ctx context.Context, ref entity.ItemRef, threshold int64) error
	CountLow(ctx context.Context, itemType string) (int, error)
	// ListLow ítems de ambos tipos con umbral positivo y stock en o bajo él, mayor déficit primero.
	ListLow(ctx context.Context) ([]entity.InventoryLevel, error)
	// CountDrift cuenta los ítems cuyo total_stock difiere de la suma de sus lotes abiertos.
	CountDrift(ctx context.Context) (int, error)
}
