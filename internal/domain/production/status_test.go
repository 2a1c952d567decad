package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kardelen/uretim-api/internal/domain/entity"
	"github.com/kardelen/uretim-api/internal/domain/production"
)

// Derive öncelik listesi: hattın en ilerisindeki dolu sayaç kazanır.
func TestDerive_OncelikSirasi(t *testing.T) {
	cases := []struct {
		name      string
		stages    entity.StageSet
		quantity  int
		status    string
		subStatus string
	}{
		{"tam sevk", entity.StageSet{Shipped: 10}, 10, entity.StatusShipped, production.SubStatusShippedFull},
		{"kismi sevk", entity.StageSet{Stored: 7, Shipped: 3}, 10, entity.StatusShipped, production.SubStatusShippedPartial},
		{"tamamen depoda", entity.StageSet{Stored: 10}, 10, entity.StatusCompleted, ""},
		{"depo ve sevk toplami yeterli", entity.StageSet{Stored: 6, Shipped: 4}, 10, entity.StatusShipped, production.SubStatusShippedPartial},
		{"tamamen paketlenmis", entity.StageSet{Packaged: 10}, 10, entity.StatusCompleted, ""},
		{"paket ve depo toplami yeterli", entity.StageSet{Packaged: 4, Stored: 6}, 10, entity.StatusCompleted, ""},
		{"montajda", entity.StageSet{Foam: 2, Upholstery: 3, Assembly: 1}, 10, entity.StatusInProduction, production.SubStatusAssembly},
		{"dosemede", entity.StageSet{Foam: 2, Upholstery: 3}, 10, entity.StatusInProduction, production.SubStatusUpholstery},
		{"sungerde", entity.StageSet{Foam: 2}, 10, entity.StatusInProduction, production.SubStatusFoam},
		{"kismi paket", entity.StageSet{Packaged: 3}, 10, entity.StatusInProduction, production.SubStatusPackaging},
		{"kismi depo", entity.StageSet{Stored: 3}, 10, entity.StatusInProduction, production.SubStatusPartialStored},
		{"hic baslamamis", entity.StageSet{}, 10, entity.StatusPending, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, subStatus := production.Derive(tc.stages, tc.quantity)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.subStatus, subStatus)
		})
	}
}

// Spesifik senaryo: quantity=10, packaged=10 -> üretim bitti, depo bekliyor.
func TestDerive_TamPaketlenmisUretimTamamlandiSayilir(t *testing.T) {
	status, subStatus := production.Derive(entity.StageSet{Packaged: 10}, 10)

	assert.Equal(t, entity.StatusCompleted, status,
		"tamamen paketlenmiş kalem üretimi tamamlanmış sayılmalı")
	assert.Empty(t, subStatus)
}

// shipped > 0 olduğu anda kalıcı durum SHIPPED'dir; kısmi/tam ayrımı yalnızca
// alt durumda yapılır (tek kanonik kural).
func TestDerive_KismiSevkKabaDurumuSevktir(t *testing.T) {
	status, subStatus := production.Derive(entity.StageSet{Foam: 5, Shipped: 1}, 10)

	assert.Equal(t, entity.StatusShipped, status)
	assert.Equal(t, production.SubStatusShippedPartial, subStatus)
}

// Geçersiz quantity savunması.
func TestDerive_SifirMiktar_PendingDoner(t *testing.T) {
	status, subStatus := production.Derive(entity.StageSet{}, 0)

	assert.Equal(t, entity.StatusPending, status)
	assert.Empty(t, subStatus)
}
