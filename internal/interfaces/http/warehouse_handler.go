package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kardelen/uretim-api/internal/application/dto"
	appprod "github.com/kardelen/uretim-api/internal/application/production"
	"github.com/kardelen/uretim-api/internal/application/warehouse"
	"github.com/kardelen/uretim-api/internal/domain"
)

// WarehouseHandler depo girişlerini yönetir (korumalı).
type WarehouseHandler struct {
	uc *warehouse.TransferUseCase
}

// NewWarehouseHandler handler'ı kurar.
func NewWarehouseHandler(uc *warehouse.TransferUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// Transfer godoc
// @Summary      Paketliden depoya transfer
// @Description  packaged -= quantity, stored += quantity tek transaction'da
//
//	uygulanır. Paket sayacı yetersizse 409 döner ve hiçbir alan değişmez.
//
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "kalem ID"
// @Param        body  body  dto.WarehouseTransferRequest  true  "quantity, shelf (opsiyonel)"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/warehouse-transfer [post]
func (h *WarehouseHandler) Transfer(c *fiber.Ctx) error {
	var in dto.WarehouseTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	err := h.uc.TransferToWarehouse(c.Context(), warehouse.TransferInput{
		ProductID: c.Params("id"),
		Quantity:  in.Quantity,
		Shelf:     in.Shelf,
		Actor:     appprod.Actor{UserID: GetUserID(c), Role: GetRole(c)},
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity pozitif olmalı"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "depo girişi yetkiniz yok"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "kalem bulunamadı"})
		}
		if err == domain.ErrInsufficientStage {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STAGE", Message: "paketli sayaç yetersiz"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "depo girişi kaydedildi"})
}
