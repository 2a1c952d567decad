package production

import "github.com/kardelen/uretim-api/internal/domain/entity"

// Redistribute tek bir aşama için önerilen yeni değeri alır ve değişmez
// kuralı sağlayan tutarlı bir StageSet döner (saf fonksiyon, domain servisi).
//
// Kurallar:
//   - proposed önce [0, quantity] aralığına kırpılır.
//   - Toplam quantity'yi aşmıyorsa olduğu gibi döner.
//   - Aşıyorsa fazlalık, düzenlenen aşamanın hemen öncesinden başlayarak ters
//     hat sırasıyla önceki aşamalardan geri kazanılır (montaj düzenlendiyse
//     önce döşeme, sonra sünger).
//   - stored ve sevk sayaçları geri alınamaz taahhüt olduğundan aday bile
//     değildir; fazlalık kalırsa düzenlenen aşamanın kendisi kırpılır
//     (istek sessizce en yüksek uygulanabilir değere indirilir).
//
// Çıktı her zaman Validate'i sağlar.
func Redistribute(current entity.StageSet, edited entity.Stage, proposed, quantity int) entity.StageSet {
	if proposed < 0 {
		proposed = 0
	}
	if proposed > quantity {
		proposed = quantity
	}

	out := current
	out.Set(edited, proposed)

	excess := out.Total() - quantity
	if excess <= 0 {
		return out
	}

	for st := edited - 1; st >= entity.StageFoam && excess > 0; st-- {
		if st.IsDownstream() {
			continue
		}
		take := out.Get(st)
		if take > excess {
			take = excess
		}
		out.Set(st, out.Get(st)-take)
		excess -= take
	}

	if excess > 0 {
		out.Set(edited, out.Get(edited)-excess)
	}
	return out
}
