package production

import "github.com/kardelen/uretim-api/internal/domain/entity"

// Alt durum etiketleri (görüntüleme ipucu).
const (
	SubStatusShippedFull    = "Sevk Edildi"
	SubStatusShippedPartial = "Kısmi Sevk"
	SubStatusAssembly       = "Montajda"
	SubStatusUpholstery     = "Döşemede"
	SubStatusFoam           = "Süngerde"
	SubStatusPackaging      = "Paketlemede"
	SubStatusPartialStored  = "Kısmi Depoda"
)

// Derive aşama sayaçlarından kaba durumu ve alt durumu türetir. Kurallar
// öncelik sırasıyla değerlendirilir, ilk eşleşen kazanır: hattın en ilerisine
// ulaşmış birim, diğer birimler geride olsa bile kalemin genel durumunu
// belirler.
//
// Kısmi sevk kararı: shipped > 0 olduğu anda kalıcı durum SHIPPED'dir; kısmi
// ve tam sevk yalnızca alt durumla ayrılır ("Kısmi Sevk" / "Sevk Edildi").
func Derive(s entity.StageSet, quantity int) (status, subStatus string) {
	if quantity <= 0 {
		return entity.StatusPending, ""
	}
	switch {
	case s.Shipped >= quantity:
		return entity.StatusShipped, SubStatusShippedFull
	case s.Shipped > 0:
		return entity.StatusShipped, SubStatusShippedPartial
	case s.Stored+s.Shipped >= quantity:
		return entity.StatusCompleted, ""
	case s.Packaged+s.Stored+s.Shipped >= quantity:
		// tamamen paketlenmiş: üretim bitti, depo girişi bekliyor
		return entity.StatusCompleted, ""
	case s.Assembly > 0:
		return entity.StatusInProduction, SubStatusAssembly
	case s.Upholstery > 0:
		return entity.StatusInProduction, SubStatusUpholstery
	case s.Foam > 0:
		return entity.StatusInProduction, SubStatusFoam
	case s.Packaged > 0:
		return entity.StatusInProduction, SubStatusPackaging
	case s.Stored > 0:
		return entity.StatusInProduction, SubStatusPartialStored
	default:
		return entity.StatusPending, ""
	}
}
