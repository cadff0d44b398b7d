package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
	"github.com/jhoicas/mobile-inventory/internal/domain/repository"
)

var _ repository.HistoryLogRepository = (*HistoryLogRepo)(nil)

// HistoryLogRepo historial administrativo; los tipos viven en history_log_types.
type HistoryLogRepo struct {
	q Querier
}

func NewHistoryLogRepository(q Querier) *HistoryLogRepo {
	return &HistoryLogRepo{q: q}
}

func (r *HistoryLogRepo) Create(ctx context.Context, actorID int64, logType string) error {
	query := `
		INSERT INTO history_log (user_id, log_type_id)
		SELECT NULLIF($1::bigint, 0), t.id FROM history_log_types t WHERE t.code = $2`
	tag, err := r.q.Exec(ctx, query, actorID, logType)
	if err != nil {
		return fmt.Errorf("insert history log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("insert history log: unknown log type %q", logType)
	}
	return nil
}

func (r *HistoryLogRepo) List(ctx context.Context, limit, offset int) ([]*entity.HistoryLog, error) {
	query := `
		SELECT h.id, COALESCE(h.user_id, 0), COALESCE(u.username, ''), t.code, h.created_at
		FROM history_log h
		JOIN history_log_types t ON t.id = h.log_type_id
		LEFT JOIN users u ON u.id = h.user_id
		ORDER BY h.created_at DESC, h.id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list history log: %w", err)
	}
	defer rows.Close()
	var list []*entity.HistoryLog
	for rows.Next() {
		var h entity.HistoryLog
		if err := rows.Scan(&h.ID, &h.ActorID, &h.ActorName, &h.LogType, &h.Timestamp); err != nil {
			return nil, fmt.Errorf("scan history log: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

func (r *HistoryLogRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM history_log`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count history log: %w", err)
	}
	return n, nil
}
