package entity

// Tipos de ítem de catálogo que mueven stock.
const (
	ItemTypeProduct     = "product"
	ItemTypeRawMaterial = "raw_material"
)

// ValidItemType indica si t es un tipo de ítem conocido.
func ValidItemType(t string) bool {
	return t == ItemTypeProduct || t == ItemTypeRawMaterial
}

// ItemRef identifica un ítem de catálogo de forma polimórfica (tipo + id).
type ItemRef struct {
	Type string
	ID   int64
}

// Less ordena referencias por (tipo, id). Se usa para tomar los bloqueos de fila
// siempre en el mismo orden.
func (r ItemRef) Less(o ItemRef) bool {
	if r.Type != o.Type {
		return r.Type < o.Type
	}
	return r.ID < o.ID
}
