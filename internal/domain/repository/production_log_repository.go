package repository

import "github.com/kardelen/uretim-api/internal/domain/entity"

// ProductionLogRepository üretim günlüğü için kalıcılık portu.
// Kayıtlar değişmezdir; yalnızca eklenir ve listelenir.
type ProductionLogRepository interface {
	Create(log *entity.ProductionLog) error
	ListByProduct(productID string, limit, offset int) ([]*entity.ProductionLog, error)
}
