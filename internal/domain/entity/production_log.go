package entity

import "time"

// Üretim günlüğü eylem tipleri.
const (
	LogActionStageEdit   = "STAGE_EDIT"   // aşama sayaçları düzenlendi
	LogActionWarehouseIn = "WAREHOUSE_IN" // paketten depoya giriş
	LogActionShipmentOut = "SHIPMENT_OUT" // depodan sevke çıkış
)

// ProductionLog bir ürün üzerindeki hareketin değişmez kaydıdır.
// Ana işlemle aynı transaction içinde yazılır.
type ProductionLog struct {
	ID        string
	ProductID string
	Action    string
	Detail    string
	CreatedAt time.Time
	CreatedBy string // UserID
}
