package shipment

import (
	"github.com/kardelen/uretim-api/internal/application/dto"
	"github.com/kardelen/uretim-api/internal/domain"
	"github.com/kardelen/uretim-api/internal/domain/entity"
	"github.com/kardelen/uretim-api/internal/domain/repository"
)

// QueryUseCase sevkiyat okuma işlemleri. Transaction gerektirmez; doğrudan
// havuza bağlı repo ile çalışır.
type QueryUseCase struct {
	shipmentRepo repository.ShipmentRepository
}

// NewQueryUseCase caseyi kurar.
func NewQueryUseCase(shipmentRepo repository.ShipmentRepository) *QueryUseCase {
	return &QueryUseCase{shipmentRepo: shipmentRepo}
}

// GetByID sevkiyatı kalemleriyle getirir; yoksa ErrNotFound.
func (uc *QueryUseCase) GetByID(id string) (*dto.ShipmentResponse, error) {
	s, err := uc.shipmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toShipmentResponse(s), nil
}

// List sevkiyatları yeniden eskiye listeler.
func (uc *QueryUseCase) List(limit, offset int) (*dto.ShipmentListResponse, error) {
	list, err := uc.shipmentRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShipmentResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toShipmentResponse(s))
	}
	return &dto.ShipmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toShipmentResponse(s *entity.Shipment) *dto.ShipmentResponse {
	if s == nil {
		return nil
	}
	items := make([]dto.ShipmentItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, dto.ShipmentItemResponse{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return &dto.ShipmentResponse{
		ID:            s.ID,
		Company:       s.Company,
		DriverName:    s.DriverName,
		VehiclePlate:  s.VehiclePlate,
		EstimatedDate: s.EstimatedDate,
		ExitDate:      s.ExitDate,
		Status:        s.Status,
		Items:         items,
		CreatedAt:     s.CreatedAt,
	}
}
