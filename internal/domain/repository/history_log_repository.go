package repository

import (
	"context"

	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
)

// HistoryLogRepository historial de acciones administrativas.
type HistoryLogRepository interface {
	Create(ctx context.Context, actorID int64, logType string) error
	List(ctx context.Context, limit, offset int) ([]*entity.HistoryLog, error)
	Count(ctx context.Context) (int, error)
}
