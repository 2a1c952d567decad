package production

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kardelen/uretim-api/internal/domain"
	"github.com/kardelen/uretim-api/internal/domain/entity"
	"github.com/kardelen/uretim-api/internal/domain/production"
	"github.com/kardelen/uretim-api/internal/domain/repository"
)

// StageEditUseCase aşama sayacı düzenlemesini yürütür: yetki kontrolü ->
// kaskad hesabı -> değişmez kural kontrolü -> atomik yazım -> durum türetme ->
// günlük ve denetim kaydı. Kaskad her zaman satır kilidi altında okunan güncel
// sayaçlara uygulanır; istemcinin gönderdiği tam set asla esas alınmaz.
type StageEditUseCase struct {
	txRunner TxRunner
	audit    AuditSink
}

// NewStageEditUseCase caseyi kurar.
func NewStageEditUseCase(txRunner TxRunner, audit AuditSink) *StageEditUseCase {
	return &StageEditUseCase{txRunner: txRunner, audit: audit}
}

// StageEditInput aşama düzenleme girdisi. Edits yalnızca değiştirilmek
// istenen aşamaları içerir; Note nil değilse mühendis notu güncellenir.
type StageEditInput struct {
	ProductID string
	Edits     map[entity.Stage]int
	Note      *string
	Actor     Actor
}

// StageEditResult uygulanan sayaçlar ve türetilen durum. Kırpma nedeniyle
// Applied istenen değerlerden farklı olabilir.
type StageEditResult struct {
	Applied   entity.StageSet
	Status    string
	SubStatus string
}

// EditStages düzenlemeyi tek transaction içinde uygular.
//
// stored/shipped alanları istekte varsa ErrForbiddenField ile hiç okumadan
// reddedilir; bu sayaçlara yalnızca depo girişi ve sevkiyat servisleri
// dokunabilir. Kaskad kırpma nedeniyle karşılanamayan istek hata değildir:
// işlem en yüksek uygulanabilir değerle başarır ve uygulanan set döner.
func (uc *StageEditUseCase) EditStages(ctx context.Context, input StageEditInput) (*StageEditResult, error) {
	if input.ProductID == "" || len(input.Edits) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for st := range input.Edits {
		if !st.IsValid() {
			return nil, domain.ErrInvalidInput
		}
		if st.IsDownstream() {
			return nil, domain.ErrForbiddenField
		}
		if !production.CanEditStage(input.Actor.Role, st) {
			return nil, domain.ErrForbidden
		}
	}

	now := time.Now()
	var result *StageEditResult

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.InventoryLocationRepository,
		_ repository.ShipmentRepository,
		logRepo repository.ProductionLogRepository,
	) error {
		// Satırı kilitleyerek oku: kaskadın girdisi her zaman güncel değerdir.
		p, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		counters := p.Stages
		for _, st := range entity.PipelineOrder() {
			v, ok := input.Edits[st]
			if !ok {
				continue
			}
			counters = production.Redistribute(counters, st, v, p.Quantity)
		}

		// Kırpma sayesinde oluşmamalı; savunma amaçlı son kontrol.
		if !production.Validate(counters, p.Quantity) {
			return domain.ErrConservation
		}

		status, subStatus := production.Derive(counters, p.Quantity)
		p.Stages = counters
		p.Status = status
		p.SubStatus = subStatus
		if input.Note != nil {
			p.EngineerNote = *input.Note
		}
		p.UpdatedAt = now
		if err := productRepo.UpdateStages(p); err != nil {
			return err
		}

		log := &entity.ProductionLog{
			ID:        uuid.New().String(),
			ProductID: p.ID,
			Action:    entity.LogActionStageEdit,
			Detail:    stageEditDetail(counters),
			CreatedAt: now,
			CreatedBy: input.Actor.UserID,
		}
		if err := logRepo.Create(log); err != nil {
			return err
		}

		result = &StageEditResult{Applied: counters, Status: status, SubStatus: subStatus}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, entity.LogActionStageEdit, "product", input.ProductID,
		stageEditDetail(result.Applied), input.Actor.UserID)
	return result, nil
}

// stageEditDetail günlük/denetim için uygulanan sayaçları özetler.
func stageEditDetail(s entity.StageSet) string {
	parts := make([]string, 0, len(entity.PipelineOrder()))
	for _, st := range entity.PipelineOrder() {
		parts = append(parts, fmt.Sprintf("%s=%d", st, s.Get(st)))
	}
	return "aşamalar güncellendi: " + strings.Join(parts, " ")
}
