package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
)

// ProductStockRow fila de la vista de stock de productos.
type ProductStockRow struct {
	Product    entity.Product
	TotalStock int64
	Threshold  int64
}

// RawStockRow fila de la vista de stock de materias primas.
type RawStockRow struct {
	Material   entity.RawMaterial
	TotalStock int64
	Threshold  int64
}

// NewProduct datos para crear un producto; los catálogos auxiliares se buscan o crean por nombre.
// Recipe se inserta en la misma transacción que el producto.
type NewProduct struct {
	TypeName    string
	VariantName string
	SizeLabel   string
	UnitName    string
	UnitPrice   decimal.Decimal
	SrpPrice    decimal.Decimal
	Description string
	Threshold   int64
	CreatedBy   int64
	Recipe      []entity.RecipeLine
}

// CatalogRepository productos, materias primas, recetas y sus etiquetas.
type CatalogRepository interface {
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
	GetRawMaterial(ctx context.Context, id int64) (*entity.RawMaterial, error)
	// Labels resuelve etiquetas legibles; las referencias inexistentes no aparecen en el mapa.
	Labels(ctx context.Context, refs []entity.ItemRef) (map[entity.ItemRef]string, error)

	ListProductStock(ctx context.Context, limit, offset int) ([]ProductStockRow, error)
	CountProducts(ctx context.Context) (int, error)
	ListRawStock(ctx context.Context, limit, offset int) ([]RawStockRow, error)
	CountRawMaterials(ctx context.Context) (int, error)

	// CreateProduct crea el producto, su fila de inventario (stock 0) y su receta.
	CreateProduct(ctx context.Context, in NewProduct) (*entity.Product, error)
	// CreateRawMaterial crea la materia prima y su fila de inventario (stock 0).
	CreateRawMaterial(ctx context.Context, m *entity.RawMaterial, threshold int64) error
	// DeleteProduct / DeleteRawMaterial devuelven domain.ErrConflict si hay lotes que lo referencian.
	DeleteProduct(ctx context.Context, id int64) error
	DeleteRawMaterial(ctx context.Context, id int64) error

	Recipe(ctx context.Context, productID int64) ([]entity.RecipeLine, error)
	SetRecipe(ctx context.Context, productID int64, lines []entity.RecipeLine) error
	UpdateMaterialCost(ctx context.Context, id int64, cost decimal.Decimal) error
}
