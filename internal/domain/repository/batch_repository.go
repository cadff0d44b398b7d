package repository

import (
	"context"

	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
)

// BatchRepository lotes de productos y materias primas. Los lotes nunca se eliminan.
type BatchRepository interface {
	Create(ctx context.Context, b *entity.Batch) error
	// ListOpenForUpdate lotes no retirados del ítem, bloqueados para update.
	ListOpenForUpdate(ctx context.Context, ref entity.ItemRef) ([]*entity.Batch, error)
	// UpdateQuantity fija la cantidad restante; con cantidad 0 el lote queda retirado.
	UpdateQuantity(ctx context.Context, b *entity.Batch) error
	List(ctx context.Context, itemType string, limit, offset int) ([]*entity.Batch, error)
	Count(ctx context.Context, itemType string) (int, error)
}
