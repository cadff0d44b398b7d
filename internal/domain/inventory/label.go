package inventory

import (
	"fmt"

	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
)

// TypeDisplayName nombre visible del tipo de ítem.
func TypeDisplayName(itemType string) string {
	switch itemType {
	case entity.ItemTypeProduct:
		return "Product"
	case entity.ItemTypeRawMaterial:
		return "Raw Material"
	default:
		return itemType
	}
}

// ItemLabel etiqueta de un ítem referenciado por un movimiento. Si el ítem ya no
// existe devuelve "<Type> ID <id> (Deleted)".
func ItemLabel(ref entity.ItemRef, labels map[entity.ItemRef]string) string {
	if l, ok := labels[ref]; ok {
		return l
	}
	return fmt.Sprintf("%s ID %d (Deleted)", TypeDisplayName(ref.Type), ref.ID)
}
