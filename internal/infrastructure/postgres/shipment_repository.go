package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kardelen/uretim-api/internal/domain"
	"github.com/kardelen/uretim-api/internal/domain/entity"
	"github.com/kardelen/uretim-api/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo ShipmentRepository portunun PostgreSQL uyarlaması.
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository kalıcılık adaptörünü kurar. Pool veya tx (Querier) verin.
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

// Create sevkiyatı ve kalemlerini kalıcılaştırır. Sayaç hareketleriyle aynı
// transaction içinde çağrılır.
func (r *ShipmentRepo) Create(s *entity.Shipment) error {
	query := `
		INSERT INTO shipments (id, company, driver_name, vehicle_plate, estimated_date, exit_date, status, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Company, s.DriverName, s.VehiclePlate,
		s.EstimatedDate, s.ExitDate, s.Status, s.CreatedAt, s.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shipment: %w", err)
	}
	for _, item := range s.Items {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO shipment_items (id, shipment_id, product_id, quantity) VALUES ($1, $2, $3, $4)`,
			item.ID, s.ID, item.ProductID, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert shipment item: %w", err)
		}
	}
	return nil
}

// GetByID sevkiyatı kalemleriyle birlikte getirir; satır yoksa (nil, nil).
func (r *ShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	query := `
		SELECT id, company, driver_name, vehicle_plate, estimated_date, exit_date, status, created_at, created_by
		FROM shipments WHERE id = $1`
	var s entity.Shipment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Company, &s.DriverName, &s.VehiclePlate,
		&s.EstimatedDate, &s.ExitDate, &s.Status, &s.CreatedAt, &s.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	items, err := r.listItems(id)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return &s, nil
}

// MarkShipped PLANNED sevkiyatı SHIPPED yapar ve çıkış tarihini yazar. Satır
// zaten SHIPPED ise hiçbir şey değişmez ve ErrConflict döner.
func (r *ShipmentRepo) MarkShipped(id string, exitDate time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE shipments SET status = $2, exit_date = $3 WHERE id = $1 AND status = $4`,
		id, entity.ShipmentStatusShipped, exitDate, entity.ShipmentStatusPlanned,
	)
	if err != nil {
		return fmt.Errorf("mark shipment shipped: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// List sevkiyatları yeniden eskiye, kalemleriyle birlikte listeler.
func (r *ShipmentRepo) List(limit, offset int) ([]*entity.Shipment, error) {
	query := `
		SELECT id, company, driver_name, vehicle_plate, estimated_date, exit_date, status, created_at, created_by
		FROM shipments ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shipment
	for rows.Next() {
		var s entity.Shipment
		if err := rows.Scan(
			&s.ID, &s.Company, &s.DriverName, &s.VehiclePlate,
			&s.EstimatedDate, &s.ExitDate, &s.Status, &s.CreatedAt, &s.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range list {
		items, err := r.listItems(s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}
	return list, nil
}

func (r *ShipmentRepo) listItems(shipmentID string) ([]entity.ShipmentItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, shipment_id, product_id, quantity FROM shipment_items WHERE shipment_id = $1`,
		shipmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("list shipment items: %w", err)
	}
	defer rows.Close()
	var items []entity.ShipmentItem
	for rows.Next() {
		var item entity.ShipmentItem
		if err := rows.Scan(&item.ID, &item.ShipmentID, &item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan shipment item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
