package entity

import "time"

// Ürün durumları. Status aşama sayaçlarından türetilir; sorgu kolaylığı için
// kalıcı olarak saklanır ve her aşama mutasyonunda yeniden hesaplanır.
const (
	StatusPending      = "PENDING"
	StatusInProduction = "IN_PRODUCTION"
	StatusCompleted    = "COMPLETED"
	StatusShipped      = "SHIPPED"
)

// Product bir sipariş kalemini temsil eder (mobilya üretim hattı).
// Quantity oluşturulduktan sonra değişmez; motor asla azaltmaz.
// Değişmez kural: Stages.Total() <= Quantity.
type Product struct {
	ID           string
	OrderCode    string // legacy sipariş içe aktarımından gelen iş emri kodu
	Name         string
	Quantity     int // sipariş edilen toplam adet
	Stages       StageSet
	Status       string // PENDING, IN_PRODUCTION, COMPLETED, SHIPPED (türetilmiş)
	SubStatus    string // görüntüleme ipucu ("Montajda" vb.), türetilmiş
	EngineerNote string // serbest metin, invariant'a dahil değil
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
