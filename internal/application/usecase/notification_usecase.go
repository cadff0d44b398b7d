package usecase

import (
	"context"

	"github.com/jhoicas/mobile-inventory/internal/application/dto"
	"github.com/jhoicas/mobile-inventory/internal/domain"
	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
	"github.com/jhoicas/mobile-inventory/internal/domain/inventory"
	"github.com/jhoicas/mobile-inventory/internal/domain/repository"
)

// NotificationUseCase notificaciones de stock bajo.
type NotificationUseCase struct {
	repo    repository.NotificationRepository
	catalog repository.CatalogRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository, catalog repository.CatalogRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, catalog: catalog}
}

// List página de notificaciones, más recientes primero.
func (uc *NotificationUseCase) List(ctx context.Context, page dto.PageRequest, unreadOnly bool) (*dto.NotificationPage, error) {
	page.Normalize()
	total, err := uc.repo.Count(ctx, unreadOnly)
	if err != nil {
		return nil, err
	}
	unread := total
	if !unreadOnly {
		if unread, err = uc.repo.Count(ctx, true); err != nil {
			return nil, err
		}
	}
	list, err := uc.repo.List(ctx, unreadOnly, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	refs := make([]entity.ItemRef, 0, len(list))
	for _, n := range list {
		refs = append(refs, entity.ItemRef{Type: n.ItemType, ID: n.ItemID})
	}
	labels, err := resolveLabels(ctx, uc.catalog, refs)
	if err != nil {
		return nil, err
	}
	out := &dto.NotificationPage{Items: make([]dto.NotificationDTO, 0, len(list)), Unread: unread, Page: dto.NewPageResponse(page, total)}
	for _, n := range list {
		out.Items = append(out.Items, dto.NotificationDTO{
			ID:        n.ID,
			ItemType:  n.ItemType,
			ItemID:    n.ItemID,
			ItemLabel: inventory.ItemLabel(entity.ItemRef{Type: n.ItemType, ID: n.ItemID}, labels),
			Kind:      n.Kind,
			Timestamp: n.Timestamp,
			IsRead:    n.IsRead,
		})
	}
	return out, nil
}

// MarkRead marca la notificación como leída.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.MarkRead(ctx, id)
}
