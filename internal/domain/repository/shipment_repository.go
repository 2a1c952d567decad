package repository

import (
	"time"

	"github.com/kardelen/uretim-api/internal/domain/entity"
)

// ShipmentRepository sevkiyat kayıtları için kalıcılık portu.
// Sevkiyatlar oluşturulduktan sonra değişmez; tek mutasyon PLANNED -> SHIPPED
// durum geçişidir.
type ShipmentRepository interface {
	// Create sevkiyatı kalemleriyle birlikte kalıcılaştırır.
	Create(s *entity.Shipment) error
	GetByID(id string) (*entity.Shipment, error)
	// MarkShipped durumu SHIPPED yapar ve çıkış tarihini yazar.
	MarkShipped(id string, exitDate time.Time) error
	List(limit, offset int) ([]*entity.Shipment, error)
}
