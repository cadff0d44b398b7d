package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeLineRequest materia prima y cantidad por unidad de producto.
type RecipeLineRequest struct {
	MaterialID      int64 `json:"material_id" validate:"required,gt=0"`
	QuantityPerUnit int64 `json:"quantity_per_unit" validate:"required,gt=0"`
}

// CreateProductRequest body para POST /api/products. Tipo, variante, tamaño y unidad
// se buscan por nombre y se crean si no existen.
type CreateProductRequest struct {
	Type        string              `json:"type" validate:"required,max=100"`
	Variant     string              `json:"variant" validate:"max=100"`
	Size        string              `json:"size" validate:"required,max=50"`
	Unit        string              `json:"unit" validate:"required,max=20"`
	UnitPrice   decimal.Decimal     `json:"unit_price"`
	SrpPrice    decimal.Decimal     `json:"srp_price"`
	Description string              `json:"description" validate:"max=1000"`
	Threshold   int64               `json:"threshold" validate:"gte=0"`
	Recipe      []RecipeLineRequest `json:"recipe" validate:"dive"`
}

// RecipeRequest body para PUT /api/products/:id/recipe.
type RecipeRequest struct {
	Lines []RecipeLineRequest `json:"lines" validate:"dive"`
}

// CreateRawMaterialRequest body para POST /api/raw-materials.
type CreateRawMaterialRequest struct {
	Name         string          `json:"name" validate:"required,max=100"`
	Size         string          `json:"size" validate:"max=50"`
	Unit         string          `json:"unit" validate:"required,max=20"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Threshold    int64           `json:"threshold" validate:"gte=0"`
}

// ProductDTO producto creado.
type ProductDTO struct {
	ID          int64           `json:"id"`
	Label       string          `json:"label"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	SrpPrice    decimal.Decimal `json:"srp_price"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// RawMaterialDTO materia prima creada.
type RawMaterialDTO struct {
	ID           int64           `json:"id"`
	Label        string          `json:"label"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	CreatedAt    time.Time       `json:"created_at"`
}
