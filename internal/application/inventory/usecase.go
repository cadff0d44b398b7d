package inventory

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mobile-inventory/internal/domain"
	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
	"github.com/jhoicas/mobile-inventory/internal/domain/inventory"
	"github.com/jhoicas/mobile-inventory/pkg/logger"
	"github.com/jhoicas/mobile-inventory/pkg/metrics"
)

// RecorderUseCase único punto de escritura del stock. Cada llamada corre en una transacción:
// bloquea la fila de inventario (SELECT FOR UPDATE), inserta el StockChange, ajusta el total,
// mueve los lotes y crea la notificación de stock bajo si el cambio cruza el umbral.
type RecorderUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
	now      func() time.Time
}

// NewRecorderUseCase construye el caso de uso.
func NewRecorderUseCase(txRunner TxRunner, log *logger.Logger) *RecorderUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &RecorderUseCase{
		txRunner: txRunner,
		log:      log.Named("recorder"),
		now:      time.Now,
	}
}

// ChangeInput entrada de RecordChange. Delta positivo entra stock, negativo sale.
type ChangeInput struct {
	ItemType string
	ItemID   int64
	Delta    int64
	Category string
	Actor    entity.Actor
}

// WithdrawalInput retiro de Quantity unidades con motivo obligatorio.
type WithdrawalInput struct {
	ItemType string
	ItemID   int64
	Quantity int64
	Reason   string
	Actor    entity.Actor
}

// BatchInput recepción (o fabricación) de un lote.
// UnitCost solo aplica a materias primas: actualiza el costo promedio ponderado.
type BatchInput struct {
	ItemType   string
	ItemID     int64
	Quantity   int64
	BatchDate  time.Time
	ProducedOn *time.Time
	ExpiresOn  *time.Time
	UnitCost   *decimal.Decimal
	Actor      entity.Actor
}

// ProduceInput fabricación de Quantity unidades de un producto según su receta.
type ProduceInput struct {
	ProductID int64
	Quantity  int64
	BatchDate time.Time
	ExpiresOn *time.Time
	Actor     entity.Actor
}

// ProduceResult lote fabricado y cambios registrados (consumos + entrada).
type ProduceResult struct {
	Batch   *entity.Batch
	Changes []*entity.StockChange
}

// effects eventos de una transacción que se publican (métricas, logs) solo tras el Commit.
type effects struct {
	changes []*entity.StockChange
	alerts  []*entity.Notification
}

// RecordChange registra un delta de stock de forma atómica.
// Errores: domain.ErrNotFound si el ítem no existe, domain.ErrInvalidQuantity si el delta es cero
// o dejaría el stock en negativo.
func (uc *RecorderUseCase) RecordChange(ctx context.Context, in ChangeInput) (*entity.StockChange, error) {
	if err := validateChange(in.ItemType, in.Category); err != nil {
		return nil, uc.reject(err)
	}
	if in.Delta == 0 {
		return nil, uc.reject(domain.ErrInvalidQuantity)
	}
	ref := entity.ItemRef{Type: in.ItemType, ID: in.ItemID}
	now := uc.now()

	var fx effects
	var out *entity.StockChange
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		fx = effects{}
		change, err := uc.apply(ctx, r, &fx, ref, in.Delta, in.Category, in.Actor, now, nil)
		out = change
		return err
	})
	if err != nil {
		return nil, uc.reject(err)
	}
	uc.publish(fx)
	return out, nil
}

// RecordWithdrawal descuenta stock con categoría withdrawal y guarda el motivo en la misma transacción.
func (uc *RecorderUseCase) RecordWithdrawal(ctx context.Context, in WithdrawalInput) (*entity.Withdrawal, error) {
	if err := validateChange(in.ItemType, entity.ChangeCategoryWithdrawal); err != nil {
		return nil, uc.reject(err)
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, uc.reject(domain.ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return nil, uc.reject(domain.ErrInvalidQuantity)
	}
	ref := entity.ItemRef{Type: in.ItemType, ID: in.ItemID}
	now := uc.now()

	var fx effects
	var out *entity.Withdrawal
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		fx = effects{}
		change, err := uc.apply(ctx, r, &fx, ref, -in.Quantity, entity.ChangeCategoryWithdrawal, in.Actor, now, nil)
		if err != nil {
			return err
		}
		w := &entity.Withdrawal{
			StockChangeID: change.ID,
			ItemType:      ref.Type,
			ItemID:        ref.ID,
			Quantity:      in.Quantity,
			Reason:        reason,
			Date:          now,
			ActorID:       in.Actor.UserID,
			ActorName:     in.Actor.Username,
		}
		if err := r.Withdrawals.Create(ctx, w); err != nil {
			return err
		}
		out = w
		return nil
	})
	if err != nil {
		return nil, uc.reject(err)
	}
	uc.publish(fx)
	return out, nil
}

// ReceiveBatch crea el lote y registra la entrada (+Quantity, batch_received).
func (uc *RecorderUseCase) ReceiveBatch(ctx context.Context, in BatchInput) (*entity.Batch, error) {
	if err := validateChange(in.ItemType, entity.ChangeCategoryBatchReceived); err != nil {
		return nil, uc.reject(err)
	}
	if in.Quantity <= 0 {
		return nil, uc.reject(domain.ErrInvalidQuantity)
	}
	if in.UnitCost != nil && (in.ItemType != entity.ItemTypeRawMaterial || in.UnitCost.IsNegative()) {
		return nil, uc.reject(domain.ErrInvalidInput)
	}
	ref := entity.ItemRef{Type: in.ItemType, ID: in.ItemID}
	now := uc.now()
	batch := &entity.Batch{
		ItemType:   ref.Type,
		ItemID:     ref.ID,
		Quantity:   in.Quantity,
		BatchDate:  dateOr(in.BatchDate, now),
		ProducedOn: in.ProducedOn,
		ExpiresOn:  in.ExpiresOn,
	}

	var fx effects
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		fx = effects{}
		if in.UnitCost != nil {
			if err := uc.updateMaterialCost(ctx, r, ref, in.Quantity, *in.UnitCost); err != nil {
				return err
			}
		}
		b := *batch
		if _, err := uc.apply(ctx, r, &fx, ref, in.Quantity, entity.ChangeCategoryBatchReceived, in.Actor, now, &b); err != nil {
			return err
		}
		batch = &b
		return nil
	})
	if err != nil {
		return nil, uc.reject(err)
	}
	uc.publish(fx)
	return batch, nil
}

// ProduceBatch consume las materias primas de la receta (qty × cantidad por unidad, categoría production)
// y recibe el lote de producto, todo en una transacción. Los bloqueos se toman en orden (tipo, id).
func (uc *RecorderUseCase) ProduceBatch(ctx context.Context, in ProduceInput) (*ProduceResult, error) {
	if in.Quantity <= 0 {
		return nil, uc.reject(domain.ErrInvalidQuantity)
	}
	product := entity.ItemRef{Type: entity.ItemTypeProduct, ID: in.ProductID}
	now := uc.now()

	var fx effects
	var res *ProduceResult
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		fx = effects{}
		recipe, err := r.Catalog.Recipe(ctx, in.ProductID)
		if err != nil {
			return err
		}

		refs := []entity.ItemRef{product}
		for _, line := range recipe {
			refs = append(refs, entity.ItemRef{Type: entity.ItemTypeRawMaterial, ID: line.MaterialID})
		}
		sort.Slice(refs, func(i, j int) bool { return refs[i].Less(refs[j]) })
		for _, ref := range refs {
			level, err := r.Levels.GetForUpdate(ctx, ref)
			if err != nil {
				return err
			}
			if level == nil {
				return domain.ErrNotFound
			}
		}

		out := &ProduceResult{}
		for _, line := range recipe {
			if line.QuantityPerUnit <= 0 || in.Quantity > math.MaxInt64/line.QuantityPerUnit {
				return domain.ErrInvalidQuantity
			}
			ref := entity.ItemRef{Type: entity.ItemTypeRawMaterial, ID: line.MaterialID}
			change, err := uc.apply(ctx, r, &fx, ref, -line.QuantityPerUnit*in.Quantity, entity.ChangeCategoryProduction, in.Actor, now, nil)
			if err != nil {
				return err
			}
			out.Changes = append(out.Changes, change)
		}
		batch := &entity.Batch{
			ItemType:   product.Type,
			ItemID:     product.ID,
			Quantity:   in.Quantity,
			BatchDate:  dateOr(in.BatchDate, now),
			ProducedOn: &now,
			ExpiresOn:  in.ExpiresOn,
		}
		change, err := uc.apply(ctx, r, &fx, product, in.Quantity, entity.ChangeCategoryProduction, in.Actor, now, batch)
		if err != nil {
			return err
		}
		out.Batch = batch
		out.Changes = append(out.Changes, change)
		res = out
		return nil
	})
	if err != nil {
		return nil, uc.reject(err)
	}
	uc.publish(fx)
	return res, nil
}

// apply aplica un delta dentro de la transacción. Un delta positivo crea un lote (batch o uno
// fechado hoy) y uno negativo descuenta los lotes abiertos en orden FIFO.
func (uc *RecorderUseCase) apply(
	ctx context.Context,
	r Repos,
	fx *effects,
	ref entity.ItemRef,
	delta int64,
	category string,
	actor entity.Actor,
	now time.Time,
	batch *entity.Batch,
) (*entity.StockChange, error) {
	level, err := r.Levels.GetForUpdate(ctx, ref)
	if err != nil {
		return nil, err
	}
	if level == nil {
		return nil, domain.ErrNotFound
	}
	if delta > 0 && level.TotalStock > math.MaxInt64-delta {
		return nil, domain.ErrInvalidQuantity
	}
	after := level.TotalStock + delta
	if after < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	if delta > 0 {
		if batch == nil {
			batch = &entity.Batch{ItemType: ref.Type, ItemID: ref.ID, Quantity: delta, BatchDate: dateOr(time.Time{}, now)}
		}
		if err := r.Batches.Create(ctx, batch); err != nil {
			return nil, err
		}
	} else {
		open, err := r.Batches.ListOpenForUpdate(ctx, ref)
		if err != nil {
			return nil, err
		}
		for _, a := range inventory.AllocateFIFO(open, -delta) {
			a.Batch.Quantity -= a.Quantity
			a.Batch.Retired = a.Batch.Quantity == 0
			if err := r.Batches.UpdateQuantity(ctx, a.Batch); err != nil {
				return nil, err
			}
		}
	}

	change := &entity.StockChange{
		ItemType:       ref.Type,
		ItemID:         ref.ID,
		QuantityChange: delta,
		Category:       category,
		Date:           now,
		ActorID:        actor.UserID,
		ActorName:      actor.Username,
	}
	if err := r.Changes.Create(ctx, change); err != nil {
		return nil, err
	}
	if err := r.Levels.UpdateTotal(ctx, ref, after); err != nil {
		return nil, err
	}
	fx.changes = append(fx.changes, change)

	if inventory.CrossedThreshold(level.TotalStock, after, level.Threshold) {
		n := &entity.Notification{
			ItemType:  ref.Type,
			ItemID:    ref.ID,
			Kind:      entity.NotificationLowStock,
			Timestamp: now,
		}
		if err := r.Notifications.Create(ctx, n); err != nil {
			return nil, err
		}
		fx.alerts = append(fx.alerts, n)
	}
	return change, nil
}

func (uc *RecorderUseCase) updateMaterialCost(ctx context.Context, r Repos, ref entity.ItemRef, qty int64, unitCost decimal.Decimal) error {
	m, err := r.Catalog.GetRawMaterial(ctx, ref.ID)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	level, err := r.Levels.GetForUpdate(ctx, ref)
	if err != nil {
		return err
	}
	if level == nil {
		return domain.ErrNotFound
	}
	cost := inventory.WeightedAverageCost(level.TotalStock, m.PricePerUnit, qty, unitCost)
	return r.Catalog.UpdateMaterialCost(ctx, ref.ID, cost)
}

func (uc *RecorderUseCase) publish(fx effects) {
	for _, c := range fx.changes {
		metrics.StockChangesTotal.WithLabelValues(c.ItemType, c.Category).Inc()
		uc.log.Debug().
			Str("item_type", c.ItemType).
			Int64("item_id", c.ItemID).
			Int64("delta", c.QuantityChange).
			Str("category", c.Category).
			Int64("actor_id", c.ActorID).
			Msg("stock change recorded")
	}
	for _, n := range fx.alerts {
		metrics.LowStockNotificationsTotal.WithLabelValues(n.ItemType).Inc()
		uc.log.Info().
			Str("item_type", n.ItemType).
			Int64("item_id", n.ItemID).
			Msg("low stock threshold crossed")
	}
}

func (uc *RecorderUseCase) reject(err error) error {
	reason := "error"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		reason = "not_found"
	case errors.Is(err, domain.ErrInvalidQuantity):
		reason = "invalid_quantity"
	case errors.Is(err, domain.ErrInvalidInput):
		reason = "invalid_input"
	}
	metrics.RejectedStockChangesTotal.WithLabelValues(reason).Inc()
	if reason == "error" {
		uc.log.Error().Err(err).Msg("stock change failed")
	}
	return err
}

func validateChange(itemType, category string) error {
	if !entity.ValidItemType(itemType) || !entity.ValidChangeCategory(category) {
		return domain.ErrInvalidInput
	}
	return nil
}

// dateOr trunca t al día; si t es cero usa el día de now.
func dateOr(t, now time.Time) time.Time {
	if t.IsZero() {
		t = now
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
