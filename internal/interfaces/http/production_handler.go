package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kardelen/uretim-api/internal/application/dto"
	appprod "github.com/kardelen/uretim-api/internal/application/production"
	"github.com/kardelen/uretim-api/internal/domain"
	"github.com/kardelen/uretim-api/internal/domain/entity"
)

// ProductionHandler aşama sayacı düzenlemelerini yönetir (korumalı).
type ProductionHandler struct {
	uc *appprod.StageEditUseCase
}

// NewProductionHandler handler'ı kurar.
func NewProductionHandler(uc *appprod.StageEditUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// EditStages godoc
// @Summary      Aşama sayaçlarını düzenle
// @Description  Yalnızca gönderilen sayaçlar düzenlenir. Toplam quantity'yi
//
//	aşarsa fazla, önceki aşamalardan geriye doğru geri çekilir; stored ve
//	shipped hiç dokunulmaz. Uygulanan set yanıt gövdesinde döner.
//
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "kalem ID"
// @Param        body  body  dto.EditStagesRequest  true  "düzenlenecek sayaçlar ve opsiyonel not"
// @Success      200   {object}  dto.EditStagesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stages [post]
func (h *ProductionHandler) EditStages(c *fiber.Ctx) error {
	var in dto.EditStagesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}

	edits := make(map[entity.Stage]int)
	if in.Foam != nil {
		edits[entity.StageFoam] = *in.Foam
	}
	if in.Upholstery != nil {
		edits[entity.StageUpholstery] = *in.Upholstery
	}
	if in.Assembly != nil {
		edits[entity.StageAssembly] = *in.Assembly
	}
	if in.Packaged != nil {
		edits[entity.StagePackaged] = *in.Packaged
	}
	if in.Stored != nil {
		edits[entity.StageStored] = *in.Stored
	}
	if in.Shipped != nil {
		edits[entity.StageShipped] = *in.Shipped
	}

	result, err := h.uc.EditStages(c.Context(), appprod.StageEditInput{
		ProductID: c.Params("id"),
		Edits:     edits,
		Note:      in.Note,
		Actor:     appprod.Actor{UserID: GetUserID(c), Role: GetRole(c)},
	})
	if err != nil {
		if err == domain.ErrForbiddenField {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN_FIELD", Message: "stored ve shipped depo girişi / sevkiyat uçlarıyla değişir"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "bu aşamayı düzenleme yetkiniz yok"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "kalem bulunamadı"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "en az bir sayaç gönderilmeli"})
		}
		if err == domain.ErrConservation {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONSERVATION", Message: "sayaç toplamı sipariş adedini aşıyor"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	return c.JSON(dto.EditStagesResponse{
		Applied: dto.StageSetDTO{
			Foam:       result.Applied.Foam,
			Upholstery: result.Applied.Upholstery,
			Assembly:   result.Applied.Assembly,
			Packaged:   result.Applied.Packaged,
			Stored:     result.Applied.Stored,
			Shipped:    result.Applied.Shipped,
		},
		Status:    result.Status,
		SubStatus: result.SubStatus,
	})
}
