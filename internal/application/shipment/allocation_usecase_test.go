package shipment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appprod "github.com/kardelen/uretim-api/internal/application/production"
	"github.com/kardelen/uretim-api/internal/application/shipment"
	"github.com/kardelen/uretim-api/internal/domain"
	"github.com/kardelen/uretim-api/internal/domain/entity"
	"github.com/kardelen/uretim-api/internal/domain/production"
	"github.com/kardelen/uretim-api/internal/domain/repository"
)

// ─── Sahte depo ve transaction koşucusu ───

type fakeStore struct {
	products  map[string]*entity.Product
	shipments map[string]*entity.Shipment
	logs      []*entity.ProductionLog
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:  make(map[string]*entity.Product),
		shipments: make(map[string]*entity.Shipment),
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for id, sh := range s.shipments {
		cs := *sh
		cs.Items = append([]entity.ShipmentItem(nil), sh.Items...)
		c.shipments[id] = &cs
	}
	c.logs = append(c.logs, s.logs...)
	return c
}

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) UpdateStages(p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) List(status string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}

type fakeShipmentRepo struct{ store *fakeStore }

func (r *fakeShipmentRepo) Create(s *entity.Shipment) error {
	cs := *s
	cs.Items = append([]entity.ShipmentItem(nil), s.Items...)
	r.store.shipments[s.ID] = &cs
	return nil
}

func (r *fakeShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	s, ok := r.store.shipments[id]
	if !ok {
		return nil, nil
	}
	cs := *s
	return &cs, nil
}

func (r *fakeShipmentRepo) MarkShipped(id string, exitDate time.Time) error {
	s, ok := r.store.shipments[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Status = entity.ShipmentStatusShipped
	s.ExitDate = &exitDate
	return nil
}

func (r *fakeShipmentRepo) List(limit, offset int) ([]*entity.Shipment, error) {
	return nil, nil
}

type fakeLogRepo struct{ store *fakeStore }

func (r *fakeLogRepo) Create(l *entity.ProductionLog) error {
	cl := *l
	r.store.logs = append(r.store.logs, &cl)
	return nil
}

func (r *fakeLogRepo) ListByProduct(productID string, limit, offset int) ([]*entity.ProductionLog, error) {
	return nil, nil
}

type nopLocationRepo struct{}

func (nopLocationRepo) Upsert(productID, shelf string, quantity int) error { return nil }
func (nopLocationRepo) ListByProduct(productID string) ([]*entity.InventoryLocation, error) {
	return nil, nil
}

type fakeTxRunner struct{ store *fakeStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	locationRepo repository.InventoryLocationRepository,
	shipmentRepo repository.ShipmentRepository,
	logRepo repository.ProductionLogRepository,
) error) error {
	snapshot := t.store.clone()
	err := fn(&fakeProductRepo{store: t.store}, nopLocationRepo{}, &fakeShipmentRepo{store: t.store}, &fakeLogRepo{store: t.store})
	if err != nil {
		*t.store = *snapshot
	}
	return err
}

type nopAudit struct{}

func (nopAudit) Record(ctx context.Context, action, entityType, entityID, detail, actorID string) {}

func seedStored(store *fakeStore, id string, quantity, stored int) {
	s := entity.StageSet{Stored: stored}
	status, sub := production.Derive(s, quantity)
	store.products[id] = &entity.Product{
		ID:        id,
		Name:      "köşe takımı",
		Quantity:  quantity,
		Stages:    s,
		Status:    status,
		SubStatus: sub,
	}
}

func sevkiyatci() appprod.Actor { return appprod.Actor{UserID: "u1", Role: entity.RoleSevkiyat} }

// ─── Testler ───

func TestCreateShipment_PlanlananSevkiyat(t *testing.T) {
	store := newFakeStore()
	seedStored(store, "p1", 10, 6)
	seedStored(store, "p2", 4, 4)
	uc := shipment.NewAllocationUseCase(&fakeTxRunner{store: store}, nopAudit{})

	id, err := uc.CreateShipment(context.Background(), shipment.CreateShipmentInput{
		Company:       "Yılmaz Mobilya",
		DriverName:    "Hasan",
		VehiclePlate:  "34 ABC 123",
		EstimatedDate: time.Now().Add(48 * time.Hour),
		Items: []shipment.ShipmentItemInput{
			{ProductID: "p1", Quantity: 4},
			{ProductID: "p2", Quantity: 4},
		},
		Actor: sevkiyatci(),
	})

	require.NoError(t, err)
	s := store.shipments[id]
	require.NotNil(t, s)
	assert.Equal(t, entity.ShipmentStatusPlanned, s.Status)
	assert.Nil(t, s.ExitDate)
	require.NotNil(t, s.EstimatedDate)
	assert.Len(t, s.Items, 2)

	assert.Equal(t, 2, store.products["p1"].Stages.Stored)
	assert.Equal(t, 4, store.products["p1"].Stages.Shipped)
	assert.Equal(t, entity.StatusShipped, store.products["p1"].Status)
	assert.Equal(t, production.SubStatusShippedPartial, store.products["p1"].SubStatus)

	assert.Equal(t, 0, store.products["p2"].Stages.Stored)
	assert.Equal(t, 4, store.products["p2"].Stages.Shipped)
	assert.Equal(t, production.SubStatusShippedFull, store.products["p2"].SubStatus)

	assert.Len(t, store.logs, 2)
}

func TestCreateShipment_YetersizDepoTumIslemiGeriAlir(t *testing.T) {
	store := newFakeStore()
	seedStored(store, "p1", 10, 6)
	seedStored(store, "p2", 4, 1)
	uc := shipment.NewAllocationUseCase(&fakeTxRunner{store: store}, nopAudit{})

	_, err := uc.CreateShipment(context.Background(), shipment.CreateShipmentInput{
		Company:       "Yılmaz Mobilya",
		EstimatedDate: time.Now(),
		Items: []shipment.ShipmentItemInput{
			{ProductID: "p1", Quantity: 4},
			{ProductID: "p2", Quantity: 3},
		},
		Actor: sevkiyatci(),
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStage)
	assert.Equal(t, 6, store.products["p1"].Stages.Stored, "ilk kalem bile uygulanmamalı")
	assert.Equal(t, 0, store.products["p1"].Stages.Shipped)
	assert.Equal(t, 1, store.products["p2"].Stages.Stored)
	assert.Empty(t, store.shipments)
	assert.Empty(t, store.logs)
}

func TestCreateShipment_AyniUruneIkiKalemToplamUzerindenKontrol(t *testing.T) {
	store := newFakeStore()
	seedStored(store, "p1", 10, 5)
	uc := shipment.NewAllocationUseCase(&fakeTxRunner{store: store}, nopAudit{})

	_, err := uc.CreateShipment(context.Background(), shipment.CreateShipmentInput{
		Company:       "Demir Ev",
		EstimatedDate: time.Now(),
		Items: []shipment.ShipmentItemInput{
			{ProductID: "p1", Quantity: 3},
			{ProductID: "p1", Quantity: 3},
		},
		Actor: sevkiyatci(),
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStage, "3+3 > depodaki 5")
	assert.Equal(t, 5, store.products["p1"].Stages.Stored)
}

func TestShipProduct_HizliSevk(t *testing.T) {
	store := newFakeStore()
	seedStored(store, "p1", 8, 8)
	uc := shipment.NewAllocationUseCase(&fakeTxRunner{store: store}, nopAudit{})

	id, err := uc.ShipProduct(context.Background(), shipment.ShipProductInput{
		ProductID:    "p1",
		Quantity:     8,
		Company:      "Kaya Dekorasyon",
		DriverName:   "Ayşe",
		VehiclePlate: "06 XY 456",
		Actor:        sevkiyatci(),
	})

	require.NoError(t, err)
	s := store.shipments[id]
	require.NotNil(t, s)
	assert.Equal(t, entity.ShipmentStatusShipped, s.Status, "hızlı sevk planlama adımını atlar")
	require.NotNil(t, s.ExitDate)
	assert.Equal(t, 0, store.products["p1"].Stages.Stored)
	assert.Equal(t, 8, store.products["p1"].Stages.Shipped)
	assert.Equal(t, entity.StatusShipped, store.products["p1"].Status)
	assert.Equal(t, production.SubStatusShippedFull, store.products["p1"].SubStatus)
}

func TestUpdateStatus_PlanlananSevkEdilir(t *testing.T) {
	store := newFakeStore()
	seedStored(store, "p1", 10, 6)
	uc := shipment.NewAllocationUseCase(&fakeTxRunner{store: store}, nopAudit{})

	id, err := uc.CreateShipment(context.Background(), shipment.CreateShipmentInput{
		Company:       "Yılmaz Mobilya",
		EstimatedDate: time.Now(),
		Items:         []shipment.ShipmentItemInput{{ProductID: "p1", Quantity: 4}},
		Actor:         sevkiyatci(),
	})
	require.NoError(t, err)
	before := store.products["p1"].Stages

	err = uc.UpdateStatus(context.Background(), id, entity.ShipmentStatusShipped, sevkiyatci())
	require.NoError(t, err)

	s := store.shipments[id]
	assert.Equal(t, entity.ShipmentStatusShipped, s.Status)
	require.NotNil(t, s.ExitDate)
	assert.Equal(t, before, store.products["p1"].Stages, "durum geçişi sayaçlara dokunmaz")

	err = uc.UpdateStatus(context.Background(), id, entity.ShipmentStatusShipped, sevkiyatci())
	assert.ErrorIs(t, err, domain.ErrConflict, "ikinci geçiş reddedilmeli")
}

func TestUpdateStatus_GecersizHedefVeYokSevkiyat(t *testing.T) {
	uc := shipment.NewAllocationUseCase(&fakeTxRunner{store: newFakeStore()}, nopAudit{})

	err := uc.UpdateStatus(context.Background(), "s1", entity.ShipmentStatusPlanned, sevkiyatci())
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "PLANNED hedefi geçersiz")

	err = uc.UpdateStatus(context.Background(), "yok", entity.ShipmentStatusShipped, sevkiyatci())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateShipment_YetkisizRol(t *testing.T) {
	store := newFakeStore()
	seedStored(store, "p1", 5, 5)
	uc := shipment.NewAllocationUseCase(&fakeTxRunner{store: store}, nopAudit{})

	_, err := uc.CreateShipment(context.Background(), shipment.CreateShipmentInput{
		Company:       "Yılmaz Mobilya",
		EstimatedDate: time.Now(),
		Items:         []shipment.ShipmentItemInput{{ProductID: "p1", Quantity: 1}},
		Actor:         appprod.Actor{UserID: "u2", Role: entity.RoleUretim},
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, 5, store.products["p1"].Stages.Stored)
}

func TestCreateShipment_GecersizKalem(t *testing.T) {
	uc := shipment.NewAllocationUseCase(&fakeTxRunner{store: newFakeStore()}, nopAudit{})

	_, err := uc.CreateShipment(context.Background(), shipment.CreateShipmentInput{
		Company:       "Yılmaz Mobilya",
		EstimatedDate: time.Now(),
		Items:         []shipment.ShipmentItemInput{{ProductID: "p1", Quantity: 0}},
		Actor:         sevkiyatci(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateShipment(context.Background(), shipment.CreateShipmentInput{
		Company:       "",
		EstimatedDate: time.Now(),
		Items:         []shipment.ShipmentItemInput{{ProductID: "p1", Quantity: 1}},
		Actor:         sevkiyatci(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
