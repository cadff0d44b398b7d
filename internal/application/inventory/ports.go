package inventory

import (
	"context"

	"github.com/jhoicas/mobile-inventory/internal/domain/repository"
)

// Repos repositorios atados a una misma transacción.
type Repos struct {
	Levels        repository.InventoryLevelRepository
	Changes       repository.StockChangeRepository
	Withdrawals   repository.WithdrawalRepository
	Batches       repository.BatchRepository
	Notifications repository.NotificationRepository
	Catalog       repository.CatalogRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback y no queda ningún registro.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
