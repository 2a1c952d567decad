package repository

import "github.com/kardelen/uretim-api/internal/domain/entity"

// InventoryLocationRepository raf konumları için kalıcılık portu.
type InventoryLocationRepository interface {
	// Upsert (productID, shelf) satırını toplamsal günceller: satır varsa
	// miktarı artırır, yoksa oluşturur.
	Upsert(productID, shelf string, quantity int) error
	ListByProduct(productID string) ([]*entity.InventoryLocation, error)
}
