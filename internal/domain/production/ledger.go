package production

import "github.com/kardelen/uretim-api/internal/domain/entity"

// Validate aşama defteri değişmez kuralını kontrol eder: tüm sayaçlar >= 0 ve
// foam + upholstery + assembly + packaged + stored + shipped <= quantity.
// Her mutasyon commit'ten önce bu kontrolden geçer.
func Validate(s entity.StageSet, quantity int) bool {
	for _, st := range entity.PipelineOrder() {
		if s.Get(st) < 0 {
			return false
		}
	}
	return s.Total() <= quantity
}
