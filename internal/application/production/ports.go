package production

import (
	"context"

	"github.com/kardelen/uretim-api/internal/domain/repository"
)

// TxRunner bir DB transaction'ı içinde fn'i çalıştırır; repo'lar o tx'e
// bağlıdır. Aşama düzenleme, depo girişi ve sevkiyat servislerinin tamamı
// okuma-hesaplama-yazma dizisini bu çatı altında yürütür, böylece bayat bir
// istemci görüntüsü kazanan bir yazarın ilerlemesini sessizce geri alamaz.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		locationRepo repository.InventoryLocationRepository,
		shipmentRepo repository.ShipmentRepository,
		logRepo repository.ProductionLogRepository,
	) error) error
}

// AuditSink dış denetim kaydı işbirlikçisi. Fire-and-forget: Record'un
// başarısızlığı ana işlemi asla geri almaz, bu yüzden hata dönmez.
type AuditSink interface {
	Record(ctx context.Context, action, entityType, entityID, detail, actorID string)
}

// Actor çözümlenmiş kimlik (kimlik doğrulama dış işbirlikçidedir; motor
// yalnızca kullanıcı ve rolü alır).
type Actor struct {
	UserID string
	Role   string
}
