package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kardelen/uretim-api/internal/application/dto"
	appprod "github.com/kardelen/uretim-api/internal/application/production"
	"github.com/kardelen/uretim-api/internal/application/shipment"
	"github.com/kardelen/uretim-api/internal/domain"
)

// ShipmentHandler sevkiyat uçlarını yönetir (korumalı).
type ShipmentHandler struct {
	allocUC *shipment.AllocationUseCase
	queryUC *shipment.QueryUseCase
}

// NewShipmentHandler handler'ı kurar.
func NewShipmentHandler(allocUC *shipment.AllocationUseCase, queryUC *shipment.QueryUseCase) *ShipmentHandler {
	return &ShipmentHandler{allocUC: allocUC, queryUC: queryUC}
}

func (h *ShipmentHandler) actor(c *fiber.Ctx) appprod.Actor {
	return appprod.Actor{UserID: GetUserID(c), Role: GetRole(c)}
}

func shipmentError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company ve pozitif miktarlı kalemler gerekli"})
	}
	if err == domain.ErrForbidden {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sevkiyat yetkiniz yok"})
	}
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "kayıt bulunamadı"})
	}
	if err == domain.ErrInsufficientStage {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STAGE", Message: "depodaki adet yetersiz"})
	}
	if err == domain.ErrConflict {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "sevkiyat zaten çıkış yapmış"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// Create godoc
// @Summary      Toplu sevkiyat planla
// @Description  Sevkiyat PLANNED durumda oluşturulur; her kalem için stored -> shipped
//
//	hareketi aynı transaction'da uygulanır. Herhangi bir kalem karşılanamazsa
//	tüm istek 409 ile reddedilir ve hiçbir sayaç oynamaz.
//
// @Tags         shipments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShipmentRequest  true  "company, estimated_date, items"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shipments [post]
func (h *ShipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	items := make([]shipment.ShipmentItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, shipment.ShipmentItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	id, err := h.allocUC.CreateShipment(c.Context(), shipment.CreateShipmentInput{
		Company:       in.Company,
		DriverName:    in.DriverName,
		VehiclePlate:  in.VehiclePlate,
		EstimatedDate: in.EstimatedDate,
		Items:         items,
		Actor:         h.actor(c),
	})
	if err != nil {
		return shipmentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// QuickShip godoc
// @Summary      Hızlı sevk
// @Description  Tek ürünü planlama adımını atlayarak anında sevk eder:
//
//	sevkiyat SHIPPED durumda ve çıkış tarihli oluşturulur.
//
// @Tags         shipments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShipProductRequest  true  "product_id, quantity, company"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shipments/quick [post]
func (h *ShipmentHandler) QuickShip(c *fiber.Ctx) error {
	var in dto.ShipProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	id, err := h.allocUC.ShipProduct(c.Context(), shipment.ShipProductInput{
		ProductID:    in.ProductID,
		Quantity:     in.Quantity,
		Company:      in.Company,
		DriverName:   in.DriverName,
		VehiclePlate: in.VehiclePlate,
		Actor:        h.actor(c),
	})
	if err != nil {
		return shipmentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// UpdateStatus godoc
// @Summary      Sevkiyat çıkışı (PLANNED -> SHIPPED)
// @Description  Sayaçlar sevkiyat oluşturulurken hareket etmiştir; bu geçiş
//
//	yalnızca durumu ve çıkış tarihini yazar.
//
// @Tags         shipments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "sevkiyat ID"
// @Param        body  body  dto.UpdateShipmentStatusRequest  true  "status: SHIPPED"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/shipments/{id}/status [patch]
func (h *ShipmentHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateShipmentStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	if err := h.allocUC.UpdateStatus(c.Context(), c.Params("id"), in.Status, h.actor(c)); err != nil {
		return shipmentError(c, err)
	}
	return c.JSON(fiber.Map{"message": "sevkiyat çıkışı kaydedildi"})
}

// GetByID godoc
// @Summary      Sevkiyat getir
// @Tags         shipments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "sevkiyat ID"
// @Success      200  {object}  dto.ShipmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shipments/{id} [get]
func (h *ShipmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.queryUC.GetByID(c.Params("id"))
	if err != nil {
		return shipmentError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Sevkiyatları listele
// @Tags         shipments
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "sayfa boyutu"
// @Param        offset  query  int  false  "atlanacak kayıt"
// @Success      200  {object}  dto.ShipmentListResponse
// @Router       /api/shipments [get]
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "sorgu çözümlenemedi"})
	}
	page.DefaultPage()
	out, err := h.queryUC.List(page.Limit, page.Offset)
	if err != nil {
		return shipmentError(c, err)
	}
	return c.JSON(out)
}
