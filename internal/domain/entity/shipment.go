package entity

import "time"

// Sevkiyat durumları. Tek geçiş vardır: PLANNED -> SHIPPED.
// Geçiş sayaçları oynatmaz; adetler sevkiyat oluşturulurken düşülmüştür.
const (
	ShipmentStatusPlanned = "PLANNED"
	ShipmentStatusShipped = "SHIPPED"
)

// Shipment bir sevkiyat kaydını temsil eder (birden fazla ürün içerebilir).
// Oluşturulduktan sonra değişmezdir; yalnızca durum geçişi yapılabilir.
type Shipment struct {
	ID            string
	Company       string // nakliye firması
	DriverName    string
	VehiclePlate  string
	EstimatedDate *time.Time // planlanan çıkış tarihi
	ExitDate      *time.Time // fiili çıkış tarihi (SHIPPED olduğunda dolar)
	Status        string
	Items         []ShipmentItem
	CreatedAt     time.Time
	CreatedBy     string // UserID
}

// ShipmentItem sevkiyat içindeki tek bir ürün kalemidir.
type ShipmentItem struct {
	ID         string
	ShipmentID string
	ProductID  string
	Quantity   int
}
