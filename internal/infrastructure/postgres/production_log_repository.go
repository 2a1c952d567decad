package postgres

import (
	"context"
	"fmt"

	"github.com/kardelen/uretim-api/internal/domain/entity"
	"github.com/kardelen/uretim-api/internal/domain/repository"
)

var _ repository.ProductionLogRepository = (*ProductionLogRepo)(nil)

// ProductionLogRepo üretim günlüğü portunun PostgreSQL uyarlaması. Tablo
// yalnızca eklenir; güncelleme ve silme yoktur.
type ProductionLogRepo struct {
	q Querier
}

// NewProductionLogRepository kalıcılık adaptörünü kurar.
func NewProductionLogRepository(q Querier) *ProductionLogRepo {
	return &ProductionLogRepo{q: q}
}

// Create günlük kaydını ekler.
func (r *ProductionLogRepo) Create(log *entity.ProductionLog) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO production_logs (id, product_id, action, detail, created_at, created_by) VALUES ($1, $2, $3, $4, $5, $6)`,
		log.ID, log.ProductID, log.Action, log.Detail, log.CreatedAt, log.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert production log: %w", err)
	}
	return nil
}

// ListByProduct kalemin günlüğünü yeniden eskiye listeler.
func (r *ProductionLogRepo) ListByProduct(productID string, limit, offset int) ([]*entity.ProductionLog, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, product_id, action, detail, created_at, created_by FROM production_logs WHERE product_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		productID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list production logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionLog
	for rows.Next() {
		var l entity.ProductionLog
		if err := rows.Scan(&l.ID, &l.ProductID, &l.Action, &l.Detail, &l.CreatedAt, &l.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan production log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
