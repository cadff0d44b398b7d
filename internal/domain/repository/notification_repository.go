package repository

import (
	"context"

	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
)

// NotificationRepository notificaciones de stock bajo.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	List(ctx context.Context, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)
	Count(ctx context.Context, unreadOnly bool) (int, error)
	// MarkRead devuelve domain.ErrNotFound si la notificación no existe.
	MarkRead(ctx context.Context, id int64) error
}
