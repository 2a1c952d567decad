package shipment

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	appprod "github.com/kardelen/uretim-api/internal/application/production"
	"github.com/kardelen/uretim-api/internal/domain"
	"github.com/kardelen/uretim-api/internal/domain/entity"
	"github.com/kardelen/uretim-api/internal/domain/production"
	"github.com/kardelen/uretim-api/internal/domain/repository"
)

// AllocationUseCase depodan sevke tek yönlü transferi ve sevkiyat kaydını
// yürütür. shipped sayacına yalnızca bu servis yazar; sayaç hareketi sevkiyat
// oluşturulurken yapılır, sonraki durum geçişi sayaçlara dokunmaz.
type AllocationUseCase struct {
	txRunner appprod.TxRunner
	audit    appprod.AuditSink
}

// NewAllocationUseCase caseyi kurar.
func NewAllocationUseCase(txRunner appprod.TxRunner, audit appprod.AuditSink) *AllocationUseCase {
	return &AllocationUseCase{txRunner: txRunner, audit: audit}
}

// ShipmentItemInput sevkiyat kalemi girdisi.
type ShipmentItemInput struct {
	ProductID string
	Quantity  int
}

// CreateShipmentInput toplu sevkiyat girdisi (PLANNED).
type CreateShipmentInput struct {
	Company       string
	DriverName    string
	VehiclePlate  string
	EstimatedDate time.Time
	Items         []ShipmentItemInput
	Actor         appprod.Actor
}

// ShipProductInput tek ürünlük hızlı sevk girdisi (anında SHIPPED).
type ShipProductInput struct {
	ProductID    string
	Quantity     int
	Company      string
	DriverName   string
	VehiclePlate string
	Actor        appprod.Actor
}

// CreateShipment PLANNED durumda bir sevkiyatı kalemleriyle birlikte tek
// transaction içinde oluşturur ve her kalem için stored -= q, shipped += q
// uygular. Ya hep ya hiç: herhangi bir kalemin miktarı o ürünün depodaki
// adedini aşıyorsa hiçbir sayaç oynamadan tüm çağrı başarısız olur.
func (uc *AllocationUseCase) CreateShipment(ctx context.Context, input CreateShipmentInput) (string, error) {
	if input.Company == "" || len(input.Items) == 0 {
		return "", domain.ErrInvalidInput
	}
	estimated := input.EstimatedDate
	s := &entity.Shipment{
		ID:            uuid.New().String(),
		Company:       input.Company,
		DriverName:    input.DriverName,
		VehiclePlate:  input.VehiclePlate,
		EstimatedDate: &estimated,
		Status:        entity.ShipmentStatusPlanned,
		CreatedAt:     time.Now(),
		CreatedBy:     input.Actor.UserID,
	}
	if err := uc.allocate(ctx, s, input.Items, input.Actor); err != nil {
		return "", err
	}
	uc.audit.Record(ctx, entity.LogActionShipmentOut, "shipment", s.ID,
		fmt.Sprintf("sevkiyat planlandı: %s, %d kalem", input.Company, len(input.Items)), input.Actor.UserID)
	return s.ID, nil
}

// ShipProduct tek ürünü tek kalemlik bir sevkiyatla anında sevk eder:
// sevkiyat SHIPPED durumunda ve çıkış tarihli oluşturulur, aynı stored ->
// shipped hareketi uygulanır.
func (uc *AllocationUseCase) ShipProduct(ctx context.Context, input ShipProductInput) (string, error) {
	if input.Company == "" {
		return "", domain.ErrInvalidInput
	}
	now := time.Now()
	s := &entity.Shipment{
		ID:           uuid.New().String(),
		Company:      input.Company,
		DriverName:   input.DriverName,
		VehiclePlate: input.VehiclePlate,
		ExitDate:     &now,
		Status:       entity.ShipmentStatusShipped,
		CreatedAt:    now,
		CreatedBy:    input.Actor.UserID,
	}
	items := []ShipmentItemInput{{ProductID: input.ProductID, Quantity: input.Quantity}}
	if err := uc.allocate(ctx, s, items, input.Actor); err != nil {
		return "", err
	}
	uc.audit.Record(ctx, entity.LogActionShipmentOut, "shipment", s.ID,
		fmt.Sprintf("hızlı sevk: %s, %d adet", input.ProductID, input.Quantity), input.Actor.UserID)
	return s.ID, nil
}

// UpdateStatus PLANNED -> SHIPPED geçişini yapar ve çıkış tarihini yazar.
// Bu geçiş saf bir lojistik bayrağıdır: sayaçlar sevkiyat oluşturulurken
// hareket etmiştir, burada hiçbir ürün sayacı oynamaz.
func (uc *AllocationUseCase) UpdateStatus(ctx context.Context, shipmentID, status string, actor appprod.Actor) error {
	if shipmentID == "" {
		return domain.ErrInvalidInput
	}
	if status != entity.ShipmentStatusShipped {
		return domain.ErrInvalidInput
	}
	if !production.CanEditStage(actor.Role, entity.StageShipped) {
		return domain.ErrForbidden
	}

	now := time.Now()
	err := uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		_ repository.InventoryLocationRepository,
		shipmentRepo repository.ShipmentRepository,
		_ repository.ProductionLogRepository,
	) error {
		s, err := shipmentRepo.GetByID(shipmentID)
		if err != nil {
			return err
		}
		if s == nil {
			return domain.ErrNotFound
		}
		if s.Status != entity.ShipmentStatusPlanned {
			return domain.ErrConflict
		}
		return shipmentRepo.MarkShipped(shipmentID, now)
	})
	if err != nil {
		return err
	}

	uc.audit.Record(ctx, entity.LogActionShipmentOut, "shipment", shipmentID, "sevkiyat çıkışı yapıldı", actor.UserID)
	return nil
}

// allocate kalemleri doğrular, tüm ürün satırlarını deterministik sırayla
// kilitler, depo adedini kontrol eder ve sayaç hareketleri ile sevkiyat
// kaydını tek transaction içinde uygular.
func (uc *AllocationUseCase) allocate(ctx context.Context, s *entity.Shipment, items []ShipmentItemInput, actor appprod.Actor) error {
	if !production.CanEditStage(actor.Role, entity.StageShipped) {
		return domain.ErrForbidden
	}

	// Aynı ürüne birden fazla kalem gelebilir; depo kontrolü toplam üzerinden
	// yapılır.
	totals := make(map[string]int, len(items))
	for _, it := range items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
		totals[it.ProductID] += it.Quantity
	}
	productIDs := make([]string, 0, len(totals))
	for id := range totals {
		productIDs = append(productIDs, id)
	}
	// Kilit alma sırası deterministik olsun diye ürünler ID sırasıyla işlenir.
	sort.Strings(productIDs)

	for _, it := range items {
		s.Items = append(s.Items, entity.ShipmentItem{
			ID:         uuid.New().String(),
			ShipmentID: s.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
		})
	}

	now := s.CreatedAt
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.InventoryLocationRepository,
		shipmentRepo repository.ShipmentRepository,
		logRepo repository.ProductionLogRepository,
	) error {
		// Önce tüm satırları kilitle ve kontrol et: hiçbir sayaç, tüm
		// kalemler karşılanabilir olmadan oynamaz.
		locked := make(map[string]*entity.Product, len(productIDs))
		for _, id := range productIDs {
			p, err := productRepo.GetForUpdate(id)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.ErrNotFound
			}
			if p.Stages.Stored < totals[id] {
				return domain.ErrInsufficientStage
			}
			locked[id] = p
		}

		if err := shipmentRepo.Create(s); err != nil {
			return err
		}

		for _, id := range productIDs {
			p := locked[id]
			qty := totals[id]
			p.Stages.Stored -= qty
			p.Stages.Shipped += qty
			p.Status, p.SubStatus = production.Derive(p.Stages, p.Quantity)
			p.UpdatedAt = now
			if err := productRepo.UpdateStages(p); err != nil {
				return err
			}
			if err := logRepo.Create(&entity.ProductionLog{
				ID:        uuid.New().String(),
				ProductID: id,
				Action:    entity.LogActionShipmentOut,
				Detail:    fmt.Sprintf("sevkiyata çıkış: %d adet (sevkiyat %s)", qty, s.ID),
				CreatedAt: now,
				CreatedBy: actor.UserID,
			}); err != nil {
				return err
			}
		}
		return nil
	})
}
