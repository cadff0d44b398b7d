package inventory

import (
	"sort"

	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
)

// Allocation cantidad a descontar de un lote.
type Allocation struct {
	Batch    *entity.Batch
	Quantity int64
}

// AllocateFIFO reparte qty entre los lotes abiertos: primero el que vence antes
// (los que no vencen al final), luego el más antiguo. Si los lotes no alcanzan
// se asigna lo disponible; el stock total ya fue validado por el recorder.
func AllocateFIFO(batches []*entity.Batch, qty int64) []Allocation {
	open := make([]*entity.Batch, 0, len(batches))
	for _, b := range batches {
		if !b.Retired && b.Quantity > 0 {
			open = append(open, b)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		a, b := open[i], open[j]
		switch {
		case a.ExpiresOn != nil && b.ExpiresOn != nil && !a.ExpiresOn.Equal(*b.ExpiresOn):
			return a.ExpiresOn.Before(*b.ExpiresOn)
		case a.ExpiresOn != nil && b.ExpiresOn == nil:
			return true
		case a.ExpiresOn == nil && b.ExpiresOn != nil:
			return false
		}
		if !a.BatchDate.Equal(b.BatchDate) {
			return a.BatchDate.Before(b.BatchDate)
		}
		return a.ID < b.ID
	})

	var out []Allocation
	for _, b := range open {
		if qty <= 0 {
			break
		}
		take := b.Quantity
		if take > qty {
			take = qty
		}
		out = append(out, Allocation{Batch: b, Quantity: take})
		qty -= take
	}
	return out
}
