package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/mobile-inventory/internal/domain"
	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
	"github.com/jhoicas/mobile-inventory/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo lotes sobre product_batches y raw_material_batches.
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador. Acepta pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

func (r *BatchRepo) Create(ctx context.Context, b *entity.Batch) error {
	t, err := tablesFor(b.ItemType)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, quantity, batch_date, %s, expiration_date, retired)
		VALUES ($1, $2, $3, $4, $5, false)
		RETURNING id, created_at`, t.batches, t.fk, t.producedCol)
	err = r.q.QueryRow(ctx, query, b.ItemID, b.Quantity, b.BatchDate, b.ProducedOn, b.ExpiresOn).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// ListOpenForUpdate lotes abiertos del ítem bloqueados (FOR UPDATE), en orden de consumo.
func (r *BatchRepo) ListOpenForUpdate(ctx context.Context, ref entity.ItemRef) ([]*entity.Batch, error) {
	t, err := tablesFor(ref.Type)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT id, %[1]s, quantity, batch_date, %[2]s, expiration_date, retired, created_at
		FROM %[3]s
		WHERE %[1]s = $1 AND NOT retired
		ORDER BY expiration_date ASC NULLS LAST, batch_date ASC, id ASC
		FOR UPDATE`, t.fk, t.producedCol, t.batches)
	return r.list(ctx, ref.Type, query, ref.ID)
}

func (r *BatchRepo) UpdateQuantity(ctx context.Context, b *entity.Batch) error {
	t, err := tablesFor(b.ItemType)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`UPDATE %s SET quantity = $2, retired = $3 WHERE id = $1`, t.batches)
	tag, err := r.q.Exec(ctx, query, b.ID, b.Quantity, b.Retired)
	if err != nil {
		return fmt.Errorf("update batch quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BatchRepo) List(ctx context.Context, itemType string, limit, offset int) ([]*entity.Batch, error) {
	t, err := tablesFor(itemType)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT id, %[1]s, quantity, batch_date, %[2]s, expiration_date, retired, created_at
		FROM %[3]s
		ORDER BY batch_date DESC, id DESC
		LIMIT $1 OFFSET $2`, t.fk, t.producedCol, t.batches)
	return r.list(ctx, itemType, query, limit, offset)
}

func (r *BatchRepo) Count(ctx context.Context, itemType string) (int, error) {
	t, err := tablesFor(itemType)
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.q.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, t.batches)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count batches: %w", err)
	}
	return n, nil
}

func (r *BatchRepo) list(ctx context.Context, itemType, query string, args ...any) ([]*entity.Batch, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Batch
	for rows.Next() {
		b := entity.Batch{ItemType: itemType}
		if err := rows.Scan(&b.ID, &b.ItemID, &b.Quantity, &b.BatchDate, &b.ProducedOn, &b.ExpiresOn, &b.Retired, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
