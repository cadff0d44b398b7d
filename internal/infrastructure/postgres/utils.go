package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/mobile-inventory/internal/domain"
	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == "23505"
}

// isForeignKeyViolation verifica si un error es una violación de FK (23503), p. ej. borrar un ítem con lotes.
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == "23503"
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// itemTables tablas de inventario y lotes de cada tipo de ítem.
type itemTables struct {
	catalog     string // products | raw_materials
	inventory   string // product_inventory | raw_material_inventory
	batches     string // product_batches | raw_material_batches
	fk          string // product_id | raw_material_id
	producedCol string // manufactured_date | received_date
}

var (
	productTables = itemTables{
		catalog:     "products",
		inventory:   "product_inventory",
		batches:     "product_batches",
		fk:          "product_id",
		producedCol: "manufactured_date",
	}
	rawMaterialTables = itemTables{
		catalog:     "raw_materials",
		inventory:   "raw_material_inventory",
		batches:     "raw_material_batches",
		fk:          "raw_material_id",
		producedCol: "received_date",
	}
)

func tablesFor(itemType string) (itemTables, error) {
	switch itemType {
	case entity.ItemTypeProduct:
		return productTables, nil
	case entity.ItemTypeRawMaterial:
		return rawMaterialTables, nil
	}
	return itemTables{}, fmt.Errorf("%w: tipo de ítem %q", domain.ErrInvalidInput, itemType)
}
