package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appprod "github.com/kardelen/uretim-api/internal/application/production"
	"github.com/kardelen/uretim-api/internal/domain/repository"
)

var _ appprod.TxRunner = (*TxRunner)(nil)

// TxRunner callback'leri tek bir PostgreSQL transaction'ı içinde çalıştırır.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner havuz üzerinden runner'ı kurar.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run transaction açar, fn'i tx'e bağlı repo'larla çalıştırır ve Commit ya da
// Rollback yapar. fn'in döndürdüğü her hata tüm yazımları geri alır.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	locationRepo repository.InventoryLocationRepository,
	shipmentRepo repository.ShipmentRepository,
	logRepo repository.ProductionLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	locationRepo := NewInventoryLocationRepository(tx)
	shipmentRepo := NewShipmentRepository(tx)
	logRepo := NewProductionLogRepository(tx)

	if err := fn(productRepo, locationRepo, shipmentRepo, logRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
