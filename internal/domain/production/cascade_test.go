package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kardelen/uretim-api/internal/domain/entity"
	"github.com/kardelen/uretim-api/internal/domain/production"
)

// ──────────────────────────────────────────────────────────────────────────────
// Redistribute — kaskad geri kazanım
// ──────────────────────────────────────────────────────────────────────────────

// Toplam aşılmıyorsa hiçbir sayaca dokunulmaz.
func TestRedistribute_ToplamAsilmiyorsa_AynenDoner(t *testing.T) {
	current := entity.StageSet{Foam: 2, Upholstery: 1}

	out := production.Redistribute(current, entity.StageAssembly, 2, 10)

	assert.Equal(t, entity.StageSet{Foam: 2, Upholstery: 1, Assembly: 2}, out)
}

// Referans senaryo: foam=3, upholstery=2, quantity=5 iken montaj 5'e
// çekildiğinde fazlalık önce döşemeden, sonra süngerden geri kazanılır.
func TestRedistribute_FazlalikOncekiAsamalardanTersSirayla(t *testing.T) {
	current := entity.StageSet{Foam: 3, Upholstery: 2}

	out := production.Redistribute(current, entity.StageAssembly, 5, 5)

	assert.Equal(t, 0, out.Foam, "fazlalık süngerden de geri kazanılmalı")
	assert.Equal(t, 0, out.Upholstery, "önce döşeme sıfırlanmalı")
	assert.Equal(t, 5, out.Assembly)
	assert.Equal(t, 5, out.Total(), "toplam sipariş miktarına eşit olmalı")
}

// Fazlalık önceki aşamaları tüketmeden kapanıyorsa sünger kısmen kalır.
func TestRedistribute_KismiGeriKazanim(t *testing.T) {
	current := entity.StageSet{Foam: 4, Upholstery: 3}

	// toplam 4+3+0->4+3+5=12, quantity=10, fazlalık 2: döşemeden 2 alınır
	out := production.Redistribute(current, entity.StageAssembly, 5, 10)

	assert.Equal(t, entity.StageSet{Foam: 4, Upholstery: 1, Assembly: 5}, out)
}

// Depo ve sevk sayaçlarına asla dokunulmaz; karşılanamayan kısım düzenlenen
// aşamanın kendisinden kırpılır.
func TestRedistribute_DepoVeSevkDokunulmaz_KendiKirpilir(t *testing.T) {
	current := entity.StageSet{Stored: 3, Shipped: 2} // toplam 5 = quantity

	out := production.Redistribute(current, entity.StagePackaged, 4, 5)

	assert.Equal(t, 3, out.Stored, "depo sayacı azaltılmamalı")
	assert.Equal(t, 2, out.Shipped, "sevk sayacı azaltılmamalı")
	assert.Equal(t, 0, out.Packaged, "istek en yüksek uygulanabilir değere (0) kırpılmalı")
	assert.True(t, production.Validate(out, 5))
}

// Kırpma: negatif istek 0'a, quantity üstü istek quantity'ye çekilir.
func TestRedistribute_OnerilenDegerKirpilir(t *testing.T) {
	out := production.Redistribute(entity.StageSet{}, entity.StageFoam, -3, 8)
	assert.Equal(t, 0, out.Foam, "negatif öneri 0'a kırpılmalı")

	out = production.Redistribute(entity.StageSet{}, entity.StageFoam, 99, 8)
	assert.Equal(t, 8, out.Foam, "quantity üstü öneri quantity'ye kırpılmalı")
}

// Sünger düzenlenirken öncesinde aşama yoktur; fazlalık doğrudan kırpılır.
func TestRedistribute_IlkAsamaFazlaligi_KendindenKirpilir(t *testing.T) {
	current := entity.StageSet{Upholstery: 4}

	out := production.Redistribute(current, entity.StageFoam, 5, 6)

	assert.Equal(t, entity.StageSet{Foam: 2, Upholstery: 4}, out)
}

// Çıktı her girişte değişmez kuralı sağlamalı.
func TestRedistribute_CiktiHerZamanGecerli(t *testing.T) {
	cases := []struct {
		name     string
		current  entity.StageSet
		edited   entity.Stage
		proposed int
		quantity int
	}{
		{"bos set", entity.StageSet{}, entity.StageAssembly, 7, 5},
		{"dolu hat", entity.StageSet{Foam: 2, Upholstery: 2, Assembly: 2, Packaged: 2}, entity.StagePackaged, 8, 8},
		{"depo dolu", entity.StageSet{Stored: 5}, entity.StageFoam, 5, 5},
		{"sevk dolu", entity.StageSet{Shipped: 5}, entity.StagePackaged, 3, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := production.Redistribute(tc.current, tc.edited, tc.proposed, tc.quantity)
			assert.True(t, production.Validate(out, tc.quantity),
				"Redistribute çıktısı değişmez kuralı sağlamalı: %+v", out)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate — aşama defteri değişmez kuralı
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_GecerliVeGecersizSetler(t *testing.T) {
	assert.True(t, production.Validate(entity.StageSet{}, 0))
	assert.True(t, production.Validate(entity.StageSet{Foam: 2, Shipped: 3}, 5))
	assert.False(t, production.Validate(entity.StageSet{Foam: 4, Shipped: 3}, 5),
		"toplam quantity'yi aşınca geçersiz olmalı")
	assert.False(t, production.Validate(entity.StageSet{Foam: -1, Upholstery: 2}, 5),
		"negatif sayaç geçersiz olmalı")
}
