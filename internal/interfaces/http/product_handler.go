package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kardelen/uretim-api/internal/application/dto"
	"github.com/kardelen/uretim-api/internal/application/usecase"
	"github.com/kardelen/uretim-api/internal/domain"
)

// ProductHandler sipariş kalemlerinin HTTP isteklerini yönetir (korumalı).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler handler'ı kurar.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Sipariş kalemi oluştur
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "order_code, name, quantity"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name gerekli, quantity pozitif olmalı"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "kayıt zaten var"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Sipariş kalemi getir
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "kalem ID"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "kalem bulunamadı"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Sipariş kalemlerini listele
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "durum filtresi (PENDING, IN_PRODUCTION, COMPLETED, SHIPPED)"
// @Param        limit   query  int     false  "sayfa boyutu"
// @Param        offset  query  int     false  "atlanacak kayıt"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "sorgu çözümlenemedi"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Logs godoc
// @Summary      Kalemin üretim günlüğü
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "kalem ID"
// @Param        limit   query  int     false  "sayfa boyutu"
// @Param        offset  query  int     false  "atlanacak kayıt"
// @Success      200  {array}   dto.ProductionLogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/logs [get]
func (h *ProductHandler) Logs(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "sorgu çözümlenemedi"})
	}
	page.DefaultPage()
	out, err := h.uc.Logs(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "kalem bulunamadı"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Locations godoc
// @Summary      Kalemin raf konumları
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "kalem ID"
// @Success      200  {array}   dto.InventoryLocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/locations [get]
func (h *ProductHandler) Locations(c *fiber.Ctx) error {
	out, err := h.uc.Locations(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "kalem bulunamadı"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
