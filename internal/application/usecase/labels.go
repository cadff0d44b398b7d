package usecase

import (
	"context"
	"strconv"

	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
	"github.com/jhoicas/mobile-inventory/internal/domain/repository"
)

// resolveLabels busca las etiquetas de los ítems referenciados (sin repetir referencias).
// Los ítems borrados no aparecen en el mapa; inventory.ItemLabel aplica el texto "(Deleted)".
func resolveLabels(ctx context.Context, catalog repository.CatalogRepository, refs []entity.ItemRef) (map[entity.ItemRef]string, error) {
	if len(refs) == 0 {
		return map[entity.ItemRef]string{}, nil
	}
	seen := make(map[entity.ItemRef]struct{}, len(refs))
	uniq := make([]entity.ItemRef, 0, len(refs))
	for _, r := range refs {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		uniq = append(uniq, r)
	}
	return catalog.Labels(ctx, uniq)
}

func actorName(name string, id int64) string {
	if name != "" {
		return name
	}
	if id == 0 {
		return "system"
	}
	return "user #" + strconv.FormatInt(id, 10)
}
