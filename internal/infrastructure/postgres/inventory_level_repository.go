package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/mobile-inventory/internal/domain"
	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
	"github.com/jhoicas/mobile-inventory/internal/domain/repository"
)

var _ repository.InventoryLevelRepository = (*InventoryLevelRepo)(nil)

// InventoryLevelRepo implementación de InventoryLevelRepository sobre PostgreSQL.
type InventoryLevelRepo struct {
	q Querier
}

// NewInventoryLevelRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryLevelRepository(q Querier) *InventoryLevelRepo {
	return &InventoryLevelRepo{q: q}
}

// GetForUpdate bloquea la fila de inventario del ítem (SELECT FOR UPDATE). Requiere tx.
func (r *InventoryLevelRepo) GetForUpdate(ctx context.Context, ref entity.ItemRef) (*entity.InventoryLevel, error) {
	t, err := tablesFor(ref.Type)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT %[1]s, total_stock, threshold, updated_at
		FROM %[2]s
		WHERE %[1]s = $1
		FOR UPDATE`, t.fk, t.inventory)
	l := entity.InventoryLevel{ItemType: ref.Type}
	err = r.q.QueryRow(ctx, query, ref.ID).Scan(&l.ItemID, &l.TotalStock, &l.Threshold, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory level for update: %w", err)
	}
	return &l, nil
}

func (r *InventoryLevelRepo) UpdateTotal(ctx context.Context, ref entity.ItemRef, total int64) error {
	t, err := tablesFor(ref.Type)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`UPDATE %s SET total_stock = $2, updated_at = now() WHERE %s = $1`, t.inventory, t.fk)
	tag, err := r.q.Exec(ctx, query, ref.ID, total)
	if err != nil {
		return fmt.Errorf("update total stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InventoryLevelRepo) SetThreshold(ctx context.Context, ref entity.ItemRef, threshold int64) error {
	t, err := tablesFor(ref.Type)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`UPDATE %s SET threshold = $2, updated_at = now() WHERE %s = $1`, t.inventory, t.fk)
	tag, err := r.q.Exec(ctx, query, ref.ID, threshold)
	if err != nil {
		return fmt.Errorf("set threshold: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InventoryLevelRepo) CountLow(ctx context.Context, itemType string) (int, error) {
	t, err := tablesFor(itemType)
	if err != nil {
		return 0, err
	}
	var n int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE total_stock <= threshold`, t.inventory)
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}

func (r *InventoryLevelRepo) ListLow(ctx context.Context) ([]entity.InventoryLevel, error) {
	query := `
		SELECT item_type, item_id, total_stock, threshold, updated_at
		FROM (
			SELECT 'product' AS item_type, product_id AS item_id, total_stock, threshold, updated_at
			FROM product_inventory
			UNION ALL
			SELECT 'raw_material', raw_material_id, total_stock, threshold, updated_at
			FROM raw_material_inventory
		) l
		WHERE threshold > 0 AND total_stock <= threshold
		ORDER BY threshold - total_stock DESC, item_type, item_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	var list []entity.InventoryLevel
	for rows.Next() {
		var l entity.InventoryLevel
		if err := rows.Scan(&l.ItemType, &l.ItemID, &l.TotalStock, &l.Threshold, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// CountDrift compara total_stock con la suma de lotes abiertos de ambos tipos de ítem.
func (r *InventoryLevelRepo) CountDrift(ctx context.Context) (int, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM product_inventory i
			 WHERE i.total_stock <> COALESCE((
				SELECT SUM(b.quantity) FROM product_batches b
				WHERE b.product_id = i.product_id AND NOT b.retired), 0))
			+
			(SELECT COUNT(*) FROM raw_material_inventory i
			 WHERE i.total_stock <> COALESCE((
				SELECT SUM(b.quantity) FROM raw_material_batches b
				WHERE b.raw_material_id = i.raw_material_id AND NOT b.retired), 0))`
	var n int
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stock drift: %w", err)
	}
	return n, nil
}
