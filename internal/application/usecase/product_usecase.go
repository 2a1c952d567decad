package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/kardelen/uretim-api/internal/application/dto"
	"github.com/kardelen/uretim-api/internal/domain"
	"github.com/kardelen/uretim-api/internal/domain/entity"
	"github.com/kardelen/uretim-api/internal/domain/repository"
)

// ProductUseCase sipariş kalemleri için okuma ve oluşturma işlemleri. Aşama
// sayaçları buradan değişmez; onlara yalnızca aşama düzenleme, depo girişi ve
// sevkiyat servisleri yazar.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	logRepo      repository.ProductionLogRepository
	locationRepo repository.InventoryLocationRepository
}

// NewProductUseCase caseyi kurar.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	logRepo repository.ProductionLogRepository,
	locationRepo repository.InventoryLocationRepository,
) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, logRepo: logRepo, locationRepo: locationRepo}
}

// Create yeni bir sipariş kalemini sıfır sayaçlarla ve PENDING durumda açar.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		OrderCode: in.OrderCode,
		Name:      in.Name,
		Quantity:  in.Quantity,
		Status:    entity.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID kalemi ID ile getirir; yoksa ErrNotFound.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List kalemleri durum filtresi ve sayfalama ile listeler. status boşsa tüm
// kalemler döner.
func (uc *ProductUseCase) List(status string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.productRepo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Logs kalemin üretim günlüğünü yeniden eskiye listeler.
func (uc *ProductUseCase) Logs(productID string, limit, offset int) ([]dto.ProductionLogResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	logs, err := uc.logRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductionLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.ProductionLogResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Action:    l.Action,
			Detail:    l.Detail,
			CreatedAt: l.CreatedAt,
			CreatedBy: l.CreatedBy,
		})
	}
	return out, nil
}

// Locations kalemin raf konumlarını listeler.
func (uc *ProductUseCase) Locations(productID string) ([]dto.InventoryLocationResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	locations, err := uc.locationRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryLocationResponse, 0, len(locations))
	for _, loc := range locations {
		out = append(out, dto.InventoryLocationResponse{
			ProductID: loc.ProductID,
			Shelf:     loc.Shelf,
			Quantity:  loc.Quantity,
			UpdatedAt: loc.UpdatedAt,
		})
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		OrderCode: p.OrderCode,
		Name:      p.Name,
		Quantity:  p.Quantity,
		Stages: dto.StageSetDTO{
			Foam:       p.Stages.Foam,
			Upholstery: p.Stages.Upholstery,
			Assembly:   p.Stages.Assembly,
			Packaged:   p.Stages.Packaged,
			Stored:     p.Stages.Stored,
			Shipped:    p.Stages.Shipped,
		},
		Status:       p.Status,
		SubStatus:    p.SubStatus,
		EngineerNote: p.EngineerNote,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
