package inventory

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mobile-inventory/internal/domain"
	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
)

var (
	soap   = entity.ItemRef{Type: entity.ItemTypeProduct, ID: 1}
	oil    = entity.ItemRef{Type: entity.ItemTypeRawMaterial, ID: 10}
	lye    = entity.ItemRef{Type: entity.ItemTypeRawMaterial, ID: 11}
	actor  = entity.Actor{UserID: 3, Username: "ana"}
	fixedT = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
)

func newRecorder(db *memDB) *RecorderUseCase {
	uc := NewRecorderUseCase(&fakeTx{db: db}, nil)
	uc.now = func() time.Time { return fixedT }
	return uc
}

func TestRecordChange_SumaCorrida(t *testing.T) {
	db := newMemDB()
	db.addItem(soap, 0, 0)
	uc := newRecorder(db)
	ctx := context.Background()

	deltas := []int64{10, -3, 5, -12, 7}
	var sum int64
	for _, d := range deltas {
		c, err := uc.RecordChange(ctx, ChangeInput{ItemType: soap.Type, ItemID: soap.ID, Delta: d, Category: entity.ChangeCategoryAdjustment, Actor: actor})
		require.NoError(t, err)
		assert.Equal(t, d, c.QuantityChange)
		assert.Equal(t, actor.UserID, c.ActorID)
		sum += d
	}

	assert.Equal(t, sum, db.levels[soap].TotalStock)
	assert.Len(t, db.changesFor(soap), len(deltas))
	assert.Equal(t, sum, db.openBatchSum(soap), "los lotes abiertos suman el total")
}

func TestRecordChange_StockNegativoSeRechazaSinRegistros(t *testing.T) {
	db := newMemDB()
	db.addItem(soap, 4, 10)
	uc := newRecorder(db)

	_, err := uc.RecordChange(context.Background(), ChangeInput{ItemType: soap.Type, ItemID: soap.ID, Delta: -5, Category: entity.ChangeCategorySale, Actor: actor})

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, int64(4), db.levels[soap].TotalStock)
	assert.Empty(t, db.changes)
	assert.Empty(t, db.notifications)
	assert.Equal(t, int64(4), db.openBatchSum(soap))
}

func TestRecordChange_Validaciones(t *testing.T) {
	db := newMemDB()
	db.addItem(soap, 4, 0)
	uc := newRecorder(db)
	ctx := context.Background()

	tests := []struct {
		name string
		in   ChangeInput
		want error
	}{
		{"delta cero", ChangeInput{ItemType: soap.Type, ItemID: soap.ID, Delta: 0, Category: entity.ChangeCategorySale}, domain.ErrInvalidQuantity},
		{"tipo desconocido", ChangeInput{ItemType: "tool", ItemID: 1, Delta: 1, Category: entity.ChangeCategorySale}, domain.ErrInvalidInput},
		{"categoría desconocida", ChangeInput{ItemType: soap.Type, ItemID: soap.ID, Delta: 1, Category: "gift"}, domain.ErrInvalidInput},
		{"ítem inexistente", ChangeInput{ItemType: soap.Type, ItemID: 999, Delta: 1, Category: entity.ChangeCategorySale}, domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.RecordChange(ctx, tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Empty(t, db.changes)
}

func TestRecordChange_UnaNotificacionPorCruce(t *testing.T) {
	db := newMemDB()
	db.addItem(soap, 20, 10)
	uc := newRecorder(db)
	ctx := context.Background()

	record := func(d int64) {
		_, err := uc.RecordChange(ctx, ChangeInput{ItemType: soap.Type, ItemID: soap.ID, Delta: d, Category: entity.ChangeCategoryAdjustment, Actor: actor})
		require.NoError(t, err)
	}

	record(-5) // 15
	record(-5) // 10: cruza
	record(-3) // 7: sigue bajo
	record(-7) // 0: sigue bajo
	require.Len(t, db.notifications, 1)
	assert.Equal(t, entity.NotificationLowStock, db.notifications[0].Kind)
	assert.Equal(t, soap.ID, db.notifications[0].ItemID)

	record(15) // 15: vuelve sobre el umbral
	record(-6) // 9: cruza de nuevo
	assert.Len(t, db.notifications, 2)
}

func TestRecordChange_ConsumeLotesFIFO(t *testing.T) {
	db := newMemDB()
	db.addItem(oil, 0, 0)
	uc := newRecorder(db)
	ctx := context.Background()

	early := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.ReceiveBatch(ctx, BatchInput{ItemType: oil.Type, ItemID: oil.ID, Quantity: 5, ExpiresOn: &late, Actor: actor})
	require.NoError(t, err)
	_, err = uc.ReceiveBatch(ctx, BatchInput{ItemType: oil.Type, ItemID: oil.ID, Quantity: 4, ExpiresOn: &early, Actor: actor})
	require.NoError(t, err)

	_, err = uc.RecordChange(ctx, ChangeInput{ItemType: oil.Type, ItemID: oil.ID, Delta: -6, Category: entity.ChangeCategoryConsumption, Actor: actor})
	require.NoError(t, err)

	require.Len(t, db.batches, 2)
	assert.Equal(t, int64(3), db.batches[0].Quantity, "el lote que vence después queda con el resto")
	assert.False(t, db.batches[0].Retired)
	assert.Equal(t, int64(0), db.batches[1].Quantity)
	assert.True(t, db.batches[1].Retired, "el lote agotado se retira, no se borra")
	assert.Equal(t, int64(3), db.levels[oil].TotalStock)
}

func TestRecordChange_ErrorDeRepositorioHaceRollback(t *testing.T) {
	db := newMemDB()
	db.addItem(soap, 12, 10)
	db.failChanges = true
	uc := newRecorder(db)

	_, err := uc.RecordChange(context.Background(), ChangeInput{ItemType: soap.Type, ItemID: soap.ID, Delta: -5, Category: entity.ChangeCategorySale, Actor: actor})

	require.Error(t, err)
	assert.Equal(t, int64(12), db.levels[soap].TotalStock)
	assert.Equal(t, int64(12), db.openBatchSum(soap))
	assert.Empty(t, db.notifications)
}

func TestRecordWithdrawal(t *testing.T) {
	db := newMemDB()
	db.addItem(soap, 8, 2)
	uc := newRecorder(db)
	ctx := context.Background()

	w, err := uc.RecordWithdrawal(ctx, WithdrawalInput{ItemType: soap.Type, ItemID: soap.ID, Quantity: 3, Reason: "  envase roto ", Actor: actor})
	require.NoError(t, err)

	assert.Equal(t, "envase roto", w.Reason)
	require.Len(t, db.changes, 1)
	assert.Equal(t, int64(-3), db.changes[0].QuantityChange)
	assert.Equal(t, entity.ChangeCategoryWithdrawal, db.changes[0].Category)
	assert.Equal(t, db.changes[0].ID, w.StockChangeID)
	assert.Equal(t, int64(5), db.levels[soap].TotalStock)

	_, err = uc.RecordWithdrawal(ctx, WithdrawalInput{ItemType: soap.Type, ItemID: soap.ID, Quantity: 1, Reason: "   ", Actor: actor})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RecordWithdrawal(ctx, WithdrawalInput{ItemType: soap.Type, ItemID: soap.ID, Quantity: 9, Reason: "merma", Actor: actor})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Len(t, db.withdrawals, 1)
	assert.Len(t, db.changes, 1)
}

func TestReceiveBatch_ActualizaCostoPromedio(t *testing.T) {
	db := newMemDB()
	db.addItem(oil, 10, 0)
	db.materials[oil.ID] = entity.RawMaterial{ID: oil.ID, Name: "Aceite", PricePerUnit: decimal.NewFromInt(100)}
	uc := newRecorder(db)

	cost := decimal.NewFromInt(200)
	b, err := uc.ReceiveBatch(context.Background(), BatchInput{ItemType: oil.Type, ItemID: oil.ID, Quantity: 10, UnitCost: &cost, Actor: actor})
	require.NoError(t, err)

	assert.NotZero(t, b.ID)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), b.BatchDate)
	assert.True(t, decimal.NewFromInt(150).Equal(db.materials[oil.ID].PricePerUnit))
	assert.Equal(t, int64(20), db.levels[oil].TotalStock)
	require.Len(t, db.changes, 1)
	assert.Equal(t, entity.ChangeCategoryBatchReceived, db.changes[0].Category)
}

func TestReceiveBatch_CostoSoloParaMateriasPrimas(t *testing.T) {
	db := newMemDB()
	db.addItem(soap, 0, 0)
	uc := newRecorder(db)

	cost := decimal.NewFromInt(5)
	_, err := uc.ReceiveBatch(context.Background(), BatchInput{ItemType: soap.Type, ItemID: soap.ID, Quantity: 1, UnitCost: &cost})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduceBatch_ConsumeRecetaYRecibeProducto(t *testing.T) {
	db := newMemDB()
	db.addItem(soap, 0, 0)
	db.addItem(oil, 100, 0)
	db.addItem(lye, 30, 25)
	db.recipes[soap.ID] = []entity.RecipeLine{
		{ProductID: soap.ID, MaterialID: lye.ID, QuantityPerUnit: 1},
		{ProductID: soap.ID, MaterialID: oil.ID, QuantityPerUnit: 4},
	}
	uc := newRecorder(db)

	res, err := uc.ProduceBatch(context.Background(), ProduceInput{ProductID: soap.ID, Quantity: 6, Actor: actor})
	require.NoError(t, err)

	assert.Equal(t, int64(6), db.levels[soap].TotalStock)
	assert.Equal(t, int64(76), db.levels[oil].TotalStock)
	assert.Equal(t, int64(24), db.levels[lye].TotalStock)
	assert.Len(t, res.Changes, 3)
	assert.Equal(t, int64(6), res.Batch.Quantity)
	assert.Len(t, db.notifications, 1, "la soda cruza su umbral")
	assert.True(t, sortedRefs(db.locks[:3]), "bloqueos en orden determinista")
}

func TestProduceBatch_MaterialInsuficienteNoDejaRastro(t *testing.T) {
	db := newMemDB()
	db.addItem(soap, 0, 0)
	db.addItem(oil, 100, 0)
	db.addItem(lye, 2, 0)
	db.recipes[soap.ID] = []entity.RecipeLine{
		{ProductID: soap.ID, MaterialID: oil.ID, QuantityPerUnit: 4},
		{ProductID: soap.ID, MaterialID: lye.ID, QuantityPerUnit: 1},
	}
	uc := newRecorder(db)

	_, err := uc.ProduceBatch(context.Background(), ProduceInput{ProductID: soap.ID, Quantity: 6, Actor: actor})

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Empty(t, db.changes)
	assert.Equal(t, int64(100), db.levels[oil].TotalStock)
	assert.Equal(t, int64(0), db.levels[soap].TotalStock)
}

func TestProduceBatch_ConsumoQueDesbordaSeRechaza(t *testing.T) {
	db := newMemDB()
	db.addItem(soap, 0, 0)
	db.addItem(oil, 100, 0)
	db.recipes[soap.ID] = []entity.RecipeLine{{ProductID: soap.ID, MaterialID: oil.ID, QuantityPerUnit: 4}}
	uc := newRecorder(db)

	_, err := uc.ProduceBatch(context.Background(), ProduceInput{ProductID: soap.ID, Quantity: 1 << 62, Actor: actor})

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Empty(t, db.changes)
	assert.Equal(t, int64(100), db.levels[oil].TotalStock)
	assert.Equal(t, int64(0), db.levels[soap].TotalStock)
	assert.Len(t, db.batches, 1, "no se crea el lote del producto")
}

func TestRecordChange_TotalQueDesbordaSeRechaza(t *testing.T) {
	db := newMemDB()
	db.addItem(soap, math.MaxInt64-1, 0)
	uc := newRecorder(db)

	_, err := uc.RecordChange(context.Background(), ChangeInput{ItemType: soap.Type, ItemID: soap.ID, Delta: 2, Category: entity.ChangeCategoryAdjustment, Actor: actor})

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Empty(t, db.changes)
	assert.Equal(t, int64(math.MaxInt64-1), db.levels[soap].TotalStock)
}

func TestProduceBatch_ProductoInexistente(t *testing.T) {
	db := newMemDB()
	uc := newRecorder(db)

	_, err := uc.ProduceBatch(context.Background(), ProduceInput{ProductID: 42, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
