package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductType familia del producto (ej. "Jabón líquido").
type ProductType struct {
	ID   int64
	Name string
}

// ProductVariant variante del producto (ej. "Lavanda").
type ProductVariant struct {
	ID   int64
	Name string
}

// Size presentación (ej. "250").
type Size struct {
	ID    int64
	Label string
}

// SizeUnit unidad de la presentación (ej. "ml").
type SizeUnit struct {
	ID   int64
	Name string
}

// Product producto vendible identificado por tipo/variante/tamaño/unidad.
// La identidad no cambia una vez que hay lotes que lo referencian; solo los campos descriptivos.
type Product struct {
	ID          int64
	TypeID      int64
	TypeName    string
	VariantID   int64
	VariantName string
	SizeID      int64
	SizeLabel   string
	UnitID      int64
	UnitName    string
	UnitPrice   decimal.Decimal
	SrpPrice    decimal.Decimal // precio sugerido de venta al público
	Description string
	CreatedBy   int64
	CreatedAt   time.Time
}

// Label nombre legible: "<tipo> <variante> <tamaño><unidad>".
func (p *Product) Label() string {
	return joinLabel(p.TypeName, p.VariantName, p.SizeLabel+p.UnitName)
}

// RawMaterial materia prima consumible identificada por nombre/tamaño/unidad.
type RawMaterial struct {
	ID           int64
	Name         string
	Size         string
	Unit         string
	PricePerUnit decimal.Decimal
	CreatedBy    int64
	CreatedAt    time.Time
}

// Label nombre legible: "<nombre> <tamaño><unidad>".
func (m *RawMaterial) Label() string {
	return joinLabel(m.Name, m.Size+m.Unit)
}

// RecipeLine cantidad de una materia prima necesaria para fabricar una unidad de producto.
type RecipeLine struct {
	ProductID       int64
	MaterialID      int64
	QuantityPerUnit int64
}

func joinLabel(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p
	}
	return out
}
