package inventory

import (
	"context"
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mobile-inventory/internal/domain"
	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
	"github.com/jhoicas/mobile-inventory/internal/domain/repository"
)

// memDB estado en memoria. fakeTx hace snapshot antes de fn y lo restaura si falla (rollback).
type memDB struct {
	levels        map[entity.ItemRef]entity.InventoryLevel
	batches       []entity.Batch
	changes       []entity.StockChange
	withdrawals   []entity.Withdrawal
	notifications []entity.Notification
	materials     map[int64]entity.RawMaterial
	recipes       map[int64][]entity.RecipeLine
	locks         []entity.ItemRef
	failChanges   bool
}

func newMemDB() *memDB {
	return &memDB{
		levels:    map[entity.ItemRef]entity.InventoryLevel{},
		materials: map[int64]entity.RawMaterial{},
		recipes:   map[int64][]entity.RecipeLine{},
	}
}

func (db *memDB) addItem(ref entity.ItemRef, stock, threshold int64) {
	db.levels[ref] = entity.InventoryLevel{ItemType: ref.Type, ItemID: ref.ID, TotalStock: stock, Threshold: threshold}
	if stock > 0 {
		db.batches = append(db.batches, entity.Batch{ID: int64(len(db.batches) + 1), ItemType: ref.Type, ItemID: ref.ID, Quantity: stock})
	}
}

func (db *memDB) snapshot() memDB {
	cp := *db
	cp.levels = make(map[entity.ItemRef]entity.InventoryLevel, len(db.levels))
	for k, v := range db.levels {
		cp.levels[k] = v
	}
	cp.materials = make(map[int64]entity.RawMaterial, len(db.materials))
	for k, v := range db.materials {
		cp.materials[k] = v
	}
	cp.batches = append([]entity.Batch(nil), db.batches...)
	cp.changes = append([]entity.StockChange(nil), db.changes...)
	cp.withdrawals = append([]entity.Withdrawal(nil), db.withdrawals...)
	cp.notifications = append([]entity.Notification(nil), db.notifications...)
	return cp
}

type fakeTx struct {
	db *memDB
}

func (t *fakeTx) Run(ctx context.Context, fn func(r Repos) error) error {
	before := t.db.snapshot()
	t.db.locks = nil
	r := Repos{
		Levels:        &fakeLevels{db: t.db},
		Changes:       &fakeChanges{db: t.db},
		Withdrawals:   &fakeWithdrawals{db: t.db},
		Batches:       &fakeBatches{db: t.db},
		Notifications: &fakeNotifications{db: t.db},
		Catalog:       &fakeCatalog{db: t.db},
	}
	if err := fn(r); err != nil {
		locks := t.db.locks
		*t.db = before
		t.db.locks = locks
		return err
	}
	return nil
}

type fakeLevels struct {
	repository.InventoryLevelRepository
	db *memDB
}

func (f *fakeLevels) GetForUpdate(ctx context.Context, ref entity.ItemRef) (*entity.InventoryLevel, error) {
	l, ok := f.db.levels[ref]
	if !ok {
		return nil, nil
	}
	f.db.locks = append(f.db.locks, ref)
	return &l, nil
}

func (f *fakeLevels) UpdateTotal(ctx context.Context, ref entity.ItemRef, total int64) error {
	l := f.db.levels[ref]
	l.TotalStock = total
	f.db.levels[ref] = l
	return nil
}

type fakeChanges struct {
	repository.StockChangeRepository
	db *memDB
}

func (f *fakeChanges) Create(ctx context.Context, c *entity.StockChange) error {
	if f.db.failChanges {
		return errors.New("insert stock change: connection reset")
	}
	c.ID = int64(len(f.db.changes) + 1)
	f.db.changes = append(f.db.changes, *c)
	return nil
}

type fakeWithdrawals struct {
	repository.WithdrawalRepository
	db *memDB
}

func (f *fakeWithdrawals) Create(ctx context.Context, w *entity.Withdrawal) error {
	w.ID = int64(len(f.db.withdrawals) + 1)
	f.db.withdrawals = append(f.db.withdrawals, *w)
	return nil
}

type fakeBatches struct {
	repository.BatchRepository
	db *memDB
}

func (f *fakeBatches) Create(ctx context.Context, b *entity.Batch) error {
	b.ID = int64(len(f.db.batches) + 1)
	f.db.batches = append(f.db.batches, *b)
	return nil
}

func (f *fakeBatches) ListOpenForUpdate(ctx context.Context, ref entity.ItemRef) ([]*entity.Batch, error) {
	var out []*entity.Batch
	for _, b := range f.db.batches {
		if b.ItemType == ref.Type && b.ItemID == ref.ID && !b.Retired {
			cp := b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeBatches) UpdateQuantity(ctx context.Context, b *entity.Batch) error {
	for i := range f.db.batches {
		if f.db.batches[i].ID == b.ID {
			f.db.batches[i].Quantity = b.Quantity
			f.db.batches[i].Retired = b.Retired
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeNotifications struct {
	repository.NotificationRepository
	db *memDB
}

func (f *fakeNotifications) Create(ctx context.Context, n *entity.Notification) error {
	n.ID = int64(len(f.db.notifications) + 1)
	f.db.notifications = append(f.db.notifications, *n)
	return nil
}

type fakeCatalog struct {
	repository.CatalogRepository
	db *memDB
}

func (f *fakeCatalog) Recipe(ctx context.Context, productID int64) ([]entity.RecipeLine, error) {
	return f.db.recipes[productID], nil
}

func (f *fakeCatalog) GetRawMaterial(ctx context.Context, id int64) (*entity.RawMaterial, error) {
	m, ok := f.db.materials[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (f *fakeCatalog) UpdateMaterialCost(ctx context.Context, id int64, cost decimal.Decimal) error {
	m := f.db.materials[id]
	m.PricePerUnit = cost
	f.db.materials[id] = m
	return nil
}

func (db *memDB) changesFor(ref entity.ItemRef) []entity.StockChange {
	var out []entity.StockChange
	for _, c := range db.changes {
		if c.ItemType == ref.Type && c.ItemID == ref.ID {
			out = append(out, c)
		}
	}
	return out
}

func (db *memDB) openBatchSum(ref entity.ItemRef) int64 {
	var sum int64
	for _, b := range db.batches {
		if b.ItemType == ref.Type && b.ItemID == ref.ID && !b.Retired {
			sum += b.Quantity
		}
	}
	return sum
}

func sortedRefs(refs []entity.ItemRef) bool {
	return sort.SliceIsSorted(refs, func(i, j int) bool { return refs[i].Less(refs[j]) })
}
