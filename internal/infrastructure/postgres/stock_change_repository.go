package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
	"github.com/jhoicas/mobile-inventory/internal/domain/repository"
)

var (
	_ repository.StockChangeRepository = (*StockChangeRepo)(nil)
	_ repository.WithdrawalRepository  = (*WithdrawalRepo)(nil)
)

// StockChangeRepo ledger append-only de cambios de stock.
type StockChangeRepo struct {
	q Querier
}

// NewStockChangeRepository construye el adaptador. Acepta pool o tx (Querier).
func NewStockChangeRepository(q Querier) *StockChangeRepo {
	return &StockChangeRepo{q: q}
}

func (r *StockChangeRepo) Create(ctx context.Context, c *entity.StockChange) error {
	query := `
		INSERT INTO stock_changes (item_type, item_id, quantity_change, category, date, user_id)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6::bigint, 0))
		RETURNING id`
	err := r.q.QueryRow(ctx, query, c.ItemType, c.ItemID, c.QuantityChange, c.Category, c.Date, c.ActorID).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert stock change: %w", err)
	}
	return nil
}

// List más recientes primero; el id desempata cambios con la misma fecha.
func (r *StockChangeRepo) List(ctx context.Context, limit, offset int) ([]*entity.StockChange, error) {
	query := `
		SELECT sc.id, sc.item_type, sc.item_id, sc.quantity_change, sc.category, sc.date,
			COALESCE(sc.user_id, 0), COALESCE(u.username, '')
		FROM stock_changes sc
		LEFT JOIN users u ON u.id = sc.user_id
		ORDER BY sc.date DESC, sc.id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock changes: %w", err)
	}
	return scanStockChanges(rows)
}

func (r *StockChangeRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_changes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stock changes: %w", err)
	}
	return n, nil
}

func (r *StockChangeRepo) CountByItem(ctx context.Context, ref entity.ItemRef) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_changes WHERE item_type = $1 AND item_id = $2`, ref.Type, ref.ID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count stock changes by item: %w", err)
	}
	return n, nil
}

func scanStockChanges(rows pgx.Rows) ([]*entity.StockChange, error) {
	defer rows.Close()
	var list []*entity.StockChange
	for rows.Next() {
		var c entity.StockChange
		if err := rows.Scan(&c.ID, &c.ItemType, &c.ItemID, &c.QuantityChange, &c.Category, &c.Date, &c.ActorID, &c.ActorName); err != nil {
			return nil, fmt.Errorf("scan stock change: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// WithdrawalRepo retiros con motivo.
type WithdrawalRepo struct {
	q Querier
}

// NewWithdrawalRepository construye el adaptador. Acepta pool o tx (Querier).
func NewWithdrawalRepository(q Querier) *WithdrawalRepo {
	return &WithdrawalRepo{q: q}
}

func (r *WithdrawalRepo) Create(ctx context.Context, w *entity.Withdrawal) error {
	query := `
		INSERT INTO withdrawals (stock_change_id, item_type, item_id, quantity, reason, date, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7::bigint, 0))
		RETURNING id`
	err := r.q.QueryRow(ctx, query, w.StockChangeID, w.ItemType, w.ItemID, w.Quantity, w.Reason, w.Date, w.ActorID).Scan(&w.ID)
	if err != nil {
		return fmt.Errorf("insert withdrawal: %w", err)
	}
	return nil
}

func (r *WithdrawalRepo) List(ctx context.Context, limit, offset int) ([]*entity.Withdrawal, error) {
	query := `
		SELECT w.id, w.stock_change_id, w.item_type, w.item_id, w.quantity, w.reason, w.date,
			COALESCE(w.user_id, 0), COALESCE(u.username, '')
		FROM withdrawals w
		LEFT JOIN users u ON u.id = w.user_id
		ORDER BY w.date DESC, w.id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Withdrawal
	for rows.Next() {
		var w entity.Withdrawal
		if err := rows.Scan(&w.ID, &w.StockChangeID, &w.ItemType, &w.ItemID, &w.Quantity, &w.Reason, &w.Date, &w.ActorID, &w.ActorName); err != nil {
			return nil, fmt.Errorf("scan withdrawal: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

func (r *WithdrawalRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM withdrawals`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count withdrawals: %w", err)
	}
	return n, nil
}
