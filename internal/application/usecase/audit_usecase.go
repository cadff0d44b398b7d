package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/mobile-inventory/internal/application/dto"
	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
	"github.com/jhoicas/mobile-inventory/internal/domain/inventory"
	"github.com/jhoicas/mobile-inventory/internal/domain/repository"
)

// ExportMaxRows tope de filas del export de cambios de stock.
const ExportMaxRows = 10000

// StockChangeExporter puerto para exportar el ledger a hoja de cálculo.
type StockChangeExporter interface {
	ExportStockChanges(ctx context.Context, rows []dto.StockChangeDTO) ([]byte, error)
}

// AuditUseCase listados de auditoría: cambios de stock, retiros e historial.
type AuditUseCase struct {
	changes     repository.StockChangeRepository
	withdrawals repository.WithdrawalRepository
	history     repository.HistoryLogRepository
	catalog     repository.CatalogRepository
	exporter    StockChangeExporter
}

// NewAuditUseCase construye el caso de uso. exporter puede ser nil.
func NewAuditUseCase(
	changes repository.StockChangeRepository,
	withdrawals repository.WithdrawalRepository,
	history repository.HistoryLogRepository,
	catalog repository.CatalogRepository,
	exporter StockChangeExporter,
) *AuditUseCase {
	return &AuditUseCase{
		changes:     changes,
		withdrawals: withdrawals,
		history:     history,
		catalog:     catalog,
		exporter:    exporter,
	}
}

// ListStockChanges página de cambios de stock, más recientes primero. Los ítems borrados
// se muestran como "<Type> ID <id> (Deleted)" sin cortar el listado.
func (uc *AuditUseCase) ListStockChanges(ctx context.Context, page dto.PageRequest) (*dto.StockChangePage, error) {
	page.Normalize()
	total, err := uc.changes.Count(ctx)
	if err != nil {
		return nil, err
	}
	list, err := uc.changes.List(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	items, err := uc.stockChangeDTOs(ctx, list)
	if err != nil {
		return nil, err
	}
	return &dto.StockChangePage{Items: items, Page: dto.NewPageResponse(page, total)}, nil
}

// ListWithdrawals página de retiros, más recientes primero.
func (uc *AuditUseCase) ListWithdrawals(ctx context.Context, page dto.PageRequest) (*dto.WithdrawalPage, error) {
	page.Normalize()
	total, err := uc.withdrawals.Count(ctx)
	if err != nil {
		return nil, err
	}
	list, err := uc.withdrawals.List(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	refs := make([]entity.ItemRef, 0, len(list))
	for _, w := range list {
		refs = append(refs, entity.ItemRef{Type: w.ItemType, ID: w.ItemID})
	}
	labels, err := resolveLabels(ctx, uc.catalog, refs)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WithdrawalDTO, 0, len(list))
	for _, w := range list {
		items = append(items, dto.WithdrawalDTO{
			ID:            w.ID,
			StockChangeID: w.StockChangeID,
			ItemType:      w.ItemType,
			ItemID:        w.ItemID,
			ItemLabel:     inventory.ItemLabel(entity.ItemRef{Type: w.ItemType, ID: w.ItemID}, labels),
			Quantity:      w.Quantity,
			Reason:        w.Reason,
			Date:          w.Date,
			Actor:         actorName(w.ActorName, w.ActorID),
		})
	}
	return &dto.WithdrawalPage{Items: items, Page: dto.NewPageResponse(page, total)}, nil
}

// ListHistory página del historial administrativo.
func (uc *AuditUseCase) ListHistory(ctx context.Context, page dto.PageRequest) (*dto.HistoryLogPage, error) {
	page.Normalize()
	total, err := uc.history.Count(ctx)
	if err != nil {
		return nil, err
	}
	list, err := uc.history.List(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistoryLogDTO, 0, len(list))
	for _, h := range list {
		items = append(items, dto.HistoryLogDTO{
			ID:        h.ID,
			Actor:     actorName(h.ActorName, h.ActorID),
			LogType:   h.LogType,
			Timestamp: h.Timestamp,
		})
	}
	return &dto.HistoryLogPage{Items: items, Page: dto.NewPageResponse(page, total)}, nil
}

// ExportStockChanges exporta los últimos ExportMaxRows cambios de stock (XLSX).
func (uc *AuditUseCase) ExportStockChanges(ctx context.Context) ([]byte, error) {
	if uc.exporter == nil {
		return nil, fmt.Errorf("stock change exporter not configured")
	}
	list, err := uc.changes.List(ctx, ExportMaxRows, 0)
	if err != nil {
		return nil, err
	}
	items, err := uc.stockChangeDTOs(ctx, list)
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportStockChanges(ctx, items)
}

func (uc *AuditUseCase) stockChangeDTOs(ctx context.Context, list []*entity.StockChange) ([]dto.StockChangeDTO, error) {
	refs := make([]entity.ItemRef, 0, len(list))
	for _, c := range list {
		refs = append(refs, entity.ItemRef{Type: c.ItemType, ID: c.ItemID})
	}
	labels, err := resolveLabels(ctx, uc.catalog, refs)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockChangeDTO, 0, len(list))
	for _, c := range list {
		items = append(items, dto.StockChangeDTO{
			ID:             c.ID,
			ItemType:       c.ItemType,
			ItemID:         c.ItemID,
			ItemLabel:      inventory.ItemLabel(entity.ItemRef{Type: c.ItemType, ID: c.ItemID}, labels),
			QuantityChange: c.QuantityChange,
			Category:       c.Category,
			Date:           c.Date,
			Actor:          actorName(c.ActorName, c.ActorID),
		})
	}
	return items, nil
}
