package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kardelen/uretim-api/internal/domain"
	"github.com/kardelen/uretim-api/internal/domain/entity"
	"github.com/kardelen/uretim-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, order_code, name, quantity, foam_qty, upholstery_qty, assembly_qty, packaged_qty, stored_qty, shipped_qty, status, sub_status, engineer_note, created_at, updated_at`

// ProductRepo ProductRepository portunun PostgreSQL uyarlaması (pool veya tx
// ile kullanılabilir).
type ProductRepo struct {
	q Querier
}

// NewProductRepository kalıcılık adaptörünü kurar. Pool veya tx (Querier) verin.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create yeni sipariş kalemini kalıcılaştırır.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.OrderCode, p.Name, p.Quantity,
		p.Stages.Foam, p.Stages.Upholstery, p.Stages.Assembly,
		p.Stages.Packaged, p.Stages.Stored, p.Stages.Shipped,
		p.Status, p.SubStatus, p.EngineerNote, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID kalemi ID ile getirir; satır yoksa (nil, nil) döner.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.getOne(query, id)
}

// GetForUpdate kalemi satır kilidiyle okur. Transaction dışında çağrılırsa
// kilit anlamsızdır; mutasyon servisleri her zaman TxRunner içinde çağırır.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

func (r *ProductRepo) getOne(query, id string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.OrderCode, &p.Name, &p.Quantity,
		&p.Stages.Foam, &p.Stages.Upholstery, &p.Stages.Assembly,
		&p.Stages.Packaged, &p.Stages.Stored, &p.Stages.Shipped,
		&p.Status, &p.SubStatus, &p.EngineerNote, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// UpdateStages sayaçları, türetilmiş durumu ve mühendis notunu tek yazımda
// günceller. quantity ve kimlik alanlarına dokunmaz.
func (r *ProductRepo) UpdateStages(p *entity.Product) error {
	query := `
		UPDATE products SET
			foam_qty = $2, upholstery_qty = $3, assembly_qty = $4,
			packaged_qty = $5, stored_qty = $6, shipped_qty = $7,
			status = $8, sub_status = $9, engineer_note = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID,
		p.Stages.Foam, p.Stages.Upholstery, p.Stages.Assembly,
		p.Stages.Packaged, p.Stages.Stored, p.Stages.Shipped,
		p.Status, p.SubStatus, p.EngineerNote, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product stages: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List kalemleri durum filtresi ve sayfalama ile listeler. status boşsa tüm
// kalemler döner.
func (r *ProductRepo) List(status string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE ($1 = '' OR status = $1) ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.OrderCode, &p.Name, &p.Quantity,
			&p.Stages.Foam, &p.Stages.Upholstery, &p.Stages.Assembly,
			&p.Stages.Packaged, &p.Stages.Stored, &p.Stages.Shipped,
			&p.Status, &p.SubStatus, &p.EngineerNote, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
