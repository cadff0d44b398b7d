package usecase

import (
	"context"

	"github.com/jhoicas/mobile-inventory/internal/application/dto"
	"github.com/jhoicas/mobile-inventory/internal/domain"
	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
	"github.com/jhoicas/mobile-inventory/internal/domain/inventory"
	"github.com/jhoicas/mobile-inventory/internal/domain/repository"
)

// StockUseCase vistas de stock, lotes y reposición de productos y materias primas.
type StockUseCase struct {
	catalog repository.CatalogRepository
	batches repository.BatchRepository
	levels  repository.InventoryLevelRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	catalog repository.CatalogRepository,
	batches repository.BatchRepository,
	levels repository.InventoryLevelRepository,
) *StockUseCase {
	return &StockUseCase{catalog: catalog, batches: batches, levels: levels}
}

// ListProductStock página de productos con su stock actual.
func (uc *StockUseCase) ListProductStock(ctx context.Context, page dto.PageRequest) (*dto.ProductStockPage, error) {
	page.Normalize()
	total, err := uc.catalog.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := uc.catalog.ListProductStock(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	out := &dto.ProductStockPage{Items: make([]dto.ProductStockDTO, 0, len(rows)), Page: dto.NewPageResponse(page, total)}
	for _, r := range rows {
		p := r.Product
		out.Items = append(out.Items, dto.ProductStockDTO{
			ID:          p.ID,
			Label:       p.Label(),
			Type:        p.TypeName,
			Variant:     p.VariantName,
			Size:        p.SizeLabel,
			Unit:        p.UnitName,
			UnitPrice:   p.UnitPrice,
			SrpPrice:    p.SrpPrice,
			TotalStock:  r.TotalStock,
			Threshold:   r.Threshold,
			LowStock:    r.TotalStock <= r.Threshold,
			Description: p.Description,
		})
	}
	return out, nil
}

// ListRawStock página de materias primas con su stock actual.
func (uc *StockUseCase) ListRawStock(ctx context.Context, page dto.PageRequest) (*dto.RawStockPage, error) {
	page.Normalize()
	total, err := uc.catalog.CountRawMaterials(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := uc.catalog.ListRawStock(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	out := &dto.RawStockPage{Items: make([]dto.RawStockDTO, 0, len(rows)), Page: dto.NewPageResponse(page, total)}
	for _, r := range rows {
		m := r.Material
		out.Items = append(out.Items, dto.RawStockDTO{
			ID:           m.ID,
			Label:        m.Label(),
			Name:         m.Name,
			Size:         m.Size,
			Unit:         m.Unit,
			PricePerUnit: m.PricePerUnit,
			TotalStock:   r.TotalStock,
			Threshold:    r.Threshold,
			LowStock:     r.TotalStock <= r.Threshold,
		})
	}
	return out, nil
}

// ListBatches página de lotes del tipo de ítem, más recientes primero (incluye retirados).
func (uc *StockUseCase) ListBatches(ctx context.Context, itemType string, page dto.PageRequest) (*dto.BatchPage, error) {
	if !entity.ValidItemType(itemType) {
		return nil, domain.ErrInvalidInput
	}
	page.Normalize()
	total, err := uc.batches.Count(ctx, itemType)
	if err != nil {
		return nil, err
	}
	list, err := uc.batches.List(ctx, itemType, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	refs := make([]entity.ItemRef, 0, len(list))
	for _, b := range list {
		refs = append(refs, entity.ItemRef{Type: b.ItemType, ID: b.ItemID})
	}
	labels, err := resolveLabels(ctx, uc.catalog, refs)
	if err != nil {
		return nil, err
	}
	out := &dto.BatchPage{ItemType: itemType, Items: make([]dto.BatchDTO, 0, len(list)), Page: dto.NewPageResponse(page, total)}
	for _, b := range list {
		out.Items = append(out.Items, dto.BatchDTO{
			ID:         b.ID,
			ItemType:   b.ItemType,
			ItemID:     b.ItemID,
			ItemLabel:  inventory.ItemLabel(entity.ItemRef{Type: b.ItemType, ID: b.ItemID}, labels),
			Quantity:   b.Quantity,
			BatchDate:  b.BatchDate,
			ProducedOn: b.ProducedOn,
			ExpiresOn:  b.ExpiresOn,
			Retired:    b.Retired,
		})
	}
	return out, nil
}

// Replenishment ítems en o bajo su umbral, mayor déficit primero, con la cantidad sugerida
// para volver a 1.5 veces el umbral.
func (uc *StockUseCase) Replenishment(ctx context.Context) (*dto.LowStockList, error) {
	levels, err := uc.levels.ListLow(ctx)
	if err != nil {
		return nil, err
	}
	refs := make([]entity.ItemRef, 0, len(levels))
	for _, l := range levels {
		refs = append(refs, entity.ItemRef{Type: l.ItemType, ID: l.ItemID})
	}
	labels, err := resolveLabels(ctx, uc.catalog, refs)
	if err != nil {
		return nil, err
	}
	out := &dto.LowStockList{Items: make([]dto.LowStockDTO, 0, len(levels))}
	for _, l := range levels {
		out.Items = append(out.Items, dto.LowStockDTO{
			ItemType:       l.ItemType,
			ItemID:         l.ItemID,
			ItemLabel:      inventory.ItemLabel(entity.ItemRef{Type: l.ItemType, ID: l.ItemID}, labels),
			TotalStock:     l.TotalStock,
			Threshold:      l.Threshold,
			SuggestedOrder: inventory.SuggestedOrder(l.TotalStock, l.Threshold),
		})
	}
	return out, nil
}
