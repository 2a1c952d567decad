package repository

import "github.com/kardelen/uretim-api/internal/domain/entity"

// ProductRepository sipariş kalemleri için kalıcılık portu.
// Mutasyon yapan servisler GetForUpdate ile satırı kilitleyip aynı
// transaction içinde UpdateStages çağırır.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate satırı kilitleyerek okur (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateStages sayaçları, türetilmiş durumu ve mühendis notunu tek
	// atomik yazımda günceller. Quantity'ye dokunmaz.
	UpdateStages(p *entity.Product) error
	List(status string, limit, offset int) ([]*entity.Product, error)
}
