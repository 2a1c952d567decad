package warehouse

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	appprod "github.com/kardelen/uretim-api/internal/application/production"
	"github.com/kardelen/uretim-api/internal/domain"
	"github.com/kardelen/uretim-api/internal/domain/entity"
	"github.com/kardelen/uretim-api/internal/domain/production"
	"github.com/kardelen/uretim-api/internal/domain/repository"
)

// TransferUseCase paketten depoya tek yönlü, geri alınamaz transferi yürütür.
// Aşama düzenleme yolundan erişilemeyen stored sayacına yalnızca bu servis
// yazar.
type TransferUseCase struct {
	txRunner appprod.TxRunner
	audit    appprod.AuditSink
}

// NewTransferUseCase caseyi kurar.
func NewTransferUseCase(txRunner appprod.TxRunner, audit appprod.AuditSink) *TransferUseCase {
	return &TransferUseCase{txRunner: txRunner, audit: audit}
}

// TransferInput depo girişi girdisi. Shelf boş olabilir; doluysa (ürün, raf)
// konum satırı toplamsal güncellenir.
type TransferInput struct {
	ProductID string
	Quantity  int
	Shelf     string
	Actor     appprod.Actor
}

// TransferToWarehouse tek transaction içinde packaged -= q, stored += q
// uygular. Paket sayacı yetersizse ErrInsufficientStage döner ve hiçbir alan
// değişmez. Başarıda durum koşulsuz COMPLETED yapılır: depoya giren parti o
// parti için üretimin bittiği anlamına gelir, hattın gerisinde birim kalsa
// bile (ürün seviyesinde bilinçli sadeleştirme).
func (uc *TransferUseCase) TransferToWarehouse(ctx context.Context, input TransferInput) error {
	if input.ProductID == "" || input.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if !production.CanEditStage(input.Actor.Role, entity.StageStored) {
		return domain.ErrForbidden
	}

	now := time.Now()
	detail := ""

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		locationRepo repository.InventoryLocationRepository,
		_ repository.ShipmentRepository,
		logRepo repository.ProductionLogRepository,
	) error {
		p, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if p.Stages.Packaged < input.Quantity {
			return domain.ErrInsufficientStage
		}

		p.Stages.Packaged -= input.Quantity
		p.Stages.Stored += input.Quantity
		p.Status = entity.StatusCompleted
		p.SubStatus = ""
		p.UpdatedAt = now
		if err := productRepo.UpdateStages(p); err != nil {
			return err
		}

		if input.Shelf != "" {
			if err := locationRepo.Upsert(p.ID, input.Shelf, input.Quantity); err != nil {
				return err
			}
		}

		detail = fmt.Sprintf("depoya giriş: %d adet", input.Quantity)
		if input.Shelf != "" {
			detail += fmt.Sprintf(" (raf: %s)", input.Shelf)
		}
		return logRepo.Create(&entity.ProductionLog{
			ID:        uuid.New().String(),
			ProductID: p.ID,
			Action:    entity.LogActionWarehouseIn,
			Detail:    detail,
			CreatedAt: now,
			CreatedBy: input.Actor.UserID,
		})
	})
	if err != nil {
		return err
	}

	uc.audit.Record(ctx, entity.LogActionWarehouseIn, "product", input.ProductID, detail, input.Actor.UserID)
	return nil
}
