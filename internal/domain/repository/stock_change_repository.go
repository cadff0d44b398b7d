package repository

import (
	"context"

	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
)

// StockChangeRepository ledger append-only de cambios de stock. No hay Update ni Delete.
type StockChangeRepository interface {
	Create(ctx context.Context, change *entity.StockChange) error
	List(ctx context.Context, limit, offset int) ([]*entity.StockChange, error)
	Count(ctx context.Context) (int, error)
	CountByItem(ctx context.Context, ref entity.ItemRef) (int, error)
}

// WithdrawalRepository retiros con motivo (variante de StockChange).
type WithdrawalRepository interface {
	Create(ctx context.Context, w *entity.Withdrawal) error
	List(ctx context.Context, limit, offset int) ([]*entity.Withdrawal, error)
	Count(ctx context.Context) (int, error)
}
