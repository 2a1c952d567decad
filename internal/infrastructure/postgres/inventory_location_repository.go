package postgres

import (
	"context"
	"fmt"

	"github.com/kardelen/uretim-api/internal/domain/entity"
	"github.com/kardelen/uretim-api/internal/domain/repository"
)

var _ repository.InventoryLocationRepository = (*InventoryLocationRepo)(nil)

// InventoryLocationRepo raf konumları portunun PostgreSQL uyarlaması.
type InventoryLocationRepo struct {
	q Querier
}

// NewInventoryLocationRepository kalıcılık adaptörünü kurar.
func NewInventoryLocationRepository(q Querier) *InventoryLocationRepo {
	return &InventoryLocationRepo{q: q}
}

// Upsert (ürün, raf) satırını toplamsal günceller: satır varsa miktar eklenir,
// yoksa oluşturulur.
func (r *InventoryLocationRepo) Upsert(productID, shelf string, quantity int) error {
	query := `
		INSERT INTO inventory_locations (product_id, shelf, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, shelf)
		DO UPDATE SET quantity = inventory_locations.quantity + EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, productID, shelf, quantity)
	if err != nil {
		return fmt.Errorf("upsert inventory location: %w", err)
	}
	return nil
}

// ListByProduct ürünün raf konumlarını listeler.
func (r *InventoryLocationRepo) ListByProduct(productID string) ([]*entity.InventoryLocation, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT product_id, shelf, quantity, updated_at FROM inventory_locations WHERE product_id = $1 ORDER BY shelf`,
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("list inventory locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLocation
	for rows.Next() {
		var loc entity.InventoryLocation
		if err := rows.Scan(&loc.ProductID, &loc.Shelf, &loc.Quantity, &loc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory location: %w", err)
		}
		list = append(list, &loc)
	}
	return list, rows.Err()
}
