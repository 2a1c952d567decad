package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kardelen/uretim-api/internal/application/auth"
	appprod "github.com/kardelen/uretim-api/internal/application/production"
	"github.com/kardelen/uretim-api/internal/application/shipment"
	"github.com/kardelen/uretim-api/internal/application/usecase"
	"github.com/kardelen/uretim-api/internal/application/warehouse"
	"github.com/kardelen/uretim-api/internal/domain/entity"
)

// RouterDeps router bağımlılıkları.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	StageEditUC *appprod.StageEditUseCase
	TransferUC  *warehouse.TransferUseCase
	AllocUC     *shipment.AllocationUseCase
	ShipQueryUC *shipment.QueryUseCase
	JWTSecret   string
}

// Router API rotalarını kaydeder. Rol kapıları kaba taneli ön elemedir; aşama
// bazlı ince yetki kontrolü use case içindeki yetki tablosunda yapılır.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (açık)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Korumalı rotalar (Bearer token gerekir)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sipariş kalemleri
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/logs", productHandler.Logs)
	products.Get("/:id/locations", productHandler.Locations)

	// Aşama düzenleme (üretim tarafı rolleri)
	productionHandler := NewProductionHandler(deps.StageEditUC)
	products.Post("/:id/stages",
		RequireRole(entity.RoleAdmin, entity.RolePlanlama, entity.RolePazarlama, entity.RoleUretim, entity.RoleMuhendis),
		productionHandler.EditStages)

	// Depo girişi
	warehouseHandler := NewWarehouseHandler(deps.TransferUC)
	products.Post("/:id/warehouse-transfer",
		RequireRole(entity.RoleAdmin, entity.RoleDepo),
		warehouseHandler.Transfer)

	// Sevkiyatlar
	shipments := protected.Group("/shipments")
	shipmentHandler := NewShipmentHandler(deps.AllocUC, deps.ShipQueryUC)
	shipments.Get("/", shipmentHandler.List)
	shipments.Get("/:id", shipmentHandler.GetByID)
	shipments.Post("/", RequireRole(entity.RoleAdmin, entity.RoleSevkiyat), shipmentHandler.Create)
	shipments.Post("/quick", RequireRole(entity.RoleAdmin, entity.RoleSevkiyat), shipmentHandler.QuickShip)
	shipments.Patch("/:id/status", RequireRole(entity.RoleAdmin, entity.RoleSevkiyat), shipmentHandler.UpdateStatus)
}
