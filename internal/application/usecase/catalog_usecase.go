package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/mobile-inventory/internal/application/dto"
	"github.com/jhoicas/mobile-inventory/internal/domain"
	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
	"github.com/jhoicas/mobile-inventory/internal/domain/repository"
	"github.com/jhoicas/mobile-inventory/pkg/logger"
)

// CatalogUseCase alta y baja de productos y materias primas, recetas y umbrales.
// El stock no se toca aquí: todo movimiento pasa por el recorder.
type CatalogUseCase struct {
	catalog repository.CatalogRepository
	levels  repository.InventoryLevelRepository
	history repository.HistoryLogRepository
	log     *logger.Logger
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	catalog repository.CatalogRepository,
	levels repository.InventoryLevelRepository,
	history repository.HistoryLogRepository,
	log *logger.Logger,
) *CatalogUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CatalogUseCase{catalog: catalog, levels: levels, history: history, log: log.Named("catalog")}
}

// CreateProduct crea el producto (stock 0) y su receta si viene en la petición, de forma atómica.
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, actor entity.Actor, in dto.CreateProductRequest) (*dto.ProductDTO, error) {
	if in.UnitPrice.IsNegative() || in.SrpPrice.IsNegative() || in.Threshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	lines, err := uc.recipeLines(ctx, 0, in.Recipe)
	if err != nil {
		return nil, err
	}
	p, err := uc.catalog.CreateProduct(ctx, repository.NewProduct{
		TypeName:    strings.TrimSpace(in.Type),
		VariantName: strings.TrimSpace(in.Variant),
		SizeLabel:   strings.TrimSpace(in.Size),
		UnitName:    strings.TrimSpace(in.Unit),
		UnitPrice:   in.UnitPrice,
		SrpPrice:    in.SrpPrice,
		Description: strings.TrimSpace(in.Description),
		Threshold:   in.Threshold,
		CreatedBy:   actor.UserID,
		Recipe:      lines,
	})
	if err != nil {
		return nil, err
	}
	uc.logHistory(ctx, actor, entity.LogTypeCatalogCreated)
	return &dto.ProductDTO{
		ID:          p.ID,
		Label:       p.Label(),
		UnitPrice:   p.UnitPrice,
		SrpPrice:    p.SrpPrice,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}, nil
}

// SetRecipe reemplaza la receta del producto.
func (uc *CatalogUseCase) SetRecipe(ctx context.Context, productID int64, in dto.RecipeRequest) error {
	p, err := uc.catalog.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	lines, err := uc.recipeLines(ctx, productID, in.Lines)
	if err != nil {
		return err
	}
	return uc.catalog.SetRecipe(ctx, productID, lines)
}

// CreateRawMaterial crea la materia prima (stock 0).
func (uc *CatalogUseCase) CreateRawMaterial(ctx context.Context, actor entity.Actor, in dto.CreateRawMaterialRequest) (*dto.RawMaterialDTO, error) {
	if in.PricePerUnit.IsNegative() || in.Threshold < 0 || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	m := &entity.RawMaterial{
		Name:         strings.TrimSpace(in.Name),
		Size:         strings.TrimSpace(in.Size),
		Unit:         strings.TrimSpace(in.Unit),
		PricePerUnit: in.PricePerUnit,
		CreatedBy:    actor.UserID,
	}
	if err := uc.catalog.CreateRawMaterial(ctx, m, in.Threshold); err != nil {
		return nil, err
	}
	uc.logHistory(ctx, actor, entity.LogTypeCatalogCreated)
	return &dto.RawMaterialDTO{ID: m.ID, Label: m.Label(), PricePerUnit: m.PricePerUnit, CreatedAt: m.CreatedAt}, nil
}

// DeleteProduct borra el producto. domain.ErrConflict si tiene lotes.
// Los cambios de stock históricos se conservan y pasan a mostrarse como "(Deleted)".
func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, actor entity.Actor, id int64) error {
	if err := uc.catalog.DeleteProduct(ctx, id); err != nil {
		return err
	}
	uc.logHistory(ctx, actor, entity.LogTypeCatalogDeleted)
	return nil
}

// DeleteRawMaterial borra la materia prima. domain.ErrConflict si tiene lotes.
func (uc *CatalogUseCase) DeleteRawMaterial(ctx context.Context, actor entity.Actor, id int64) error {
	if err := uc.catalog.DeleteRawMaterial(ctx, id); err != nil {
		return err
	}
	uc.logHistory(ctx, actor, entity.LogTypeCatalogDeleted)
	return nil
}

// SetThreshold fija el umbral de stock bajo. No genera notificaciones: solo el recorder las crea.
func (uc *CatalogUseCase) SetThreshold(ctx context.Context, actor entity.Actor, itemType string, id, threshold int64) error {
	if !entity.ValidItemType(itemType) || threshold < 0 {
		return domain.ErrInvalidInput
	}
	if err := uc.levels.SetThreshold(ctx, entity.ItemRef{Type: itemType, ID: id}, threshold); err != nil {
		return err
	}
	uc.logHistory(ctx, actor, entity.LogTypeThresholdSet)
	return nil
}

func (uc *CatalogUseCase) recipeLines(ctx context.Context, productID int64, in []dto.RecipeLineRequest) ([]entity.RecipeLine, error) {
	seen := make(map[int64]bool, len(in))
	lines := make([]entity.RecipeLine, 0, len(in))
	for _, l := range in {
		if l.QuantityPerUnit <= 0 || seen[l.MaterialID] {
			return nil, domain.ErrInvalidInput
		}
		seen[l.MaterialID] = true
		m, err := uc.catalog.GetRawMaterial(ctx, l.MaterialID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, domain.ErrNotFound
		}
		lines = append(lines, entity.RecipeLine{ProductID: productID, MaterialID: l.MaterialID, QuantityPerUnit: l.QuantityPerUnit})
	}
	return lines, nil
}

func (uc *CatalogUseCase) logHistory(ctx context.Context, actor entity.Actor, logType string) {
	if uc.history == nil {
		return
	}
	if err := uc.history.Create(ctx, actor.UserID, logType); err != nil {
		uc.log.Warn().Err(err).Str("log_type", logType).Msg("history log write failed")
	}
}
