package entity

// Stage üretim hattındaki sıralı aşamaları temsil eder. Sıralama iş kuralıdır:
// kaskad geri kazanım ve durum türetme bu sırayı kullanır, bu yüzden dizi
// literali yerine numaralandırılmış tip olarak tanımlanır.
type Stage int

const (
	StageFoam       Stage = iota // sünger
	StageUpholstery              // döşeme
	StageAssembly                // montaj
	StagePackaged                // paket
	StageStored                  // depo
	StageShipped                 // sevk
)

// stageNames API ve loglarda kullanılan anahtar isimleri.
var stageNames = map[Stage]string{
	StageFoam:       "foam",
	StageUpholstery: "upholstery",
	StageAssembly:   "assembly",
	StagePackaged:   "packaged",
	StageStored:     "stored",
	StageShipped:    "shipped",
}

// PipelineOrder aşamaları üretim hattı sırasıyla döner.
func PipelineOrder() []Stage {
	return []Stage{StageFoam, StageUpholstery, StageAssembly, StagePackaged, StageStored, StageShipped}
}

// String aşamanın anahtar ismini döner.
func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsValid aşamanın tanımlı aralıkta olup olmadığını kontrol eder.
func (s Stage) IsValid() bool {
	return s >= StageFoam && s <= StageShipped
}

// IsDownstream depo ve sevk aşamaları için true döner. Bu aşamalar geri
// alınamaz taahhütleri temsil eder: aşama düzenlemesiyle değiştirilemez ve
// kaskad geri kazanımında asla azaltılmazlar.
func (s Stage) IsDownstream() bool {
	return s == StageStored || s == StageShipped
}

// StageSet bir ürünün altı aşama sayacını bir arada tutar. Sayaçlar bağımsız
// adet toplamlarıdır: aynı sipariş kaleminin farklı birimleri aynı anda farklı
// aşamalarda olabilir.
type StageSet struct {
	Foam       int
	Upholstery int
	Assembly   int
	Packaged   int
	Stored     int
	Shipped    int
}

// Get ilgili aşamanın sayacını döner.
func (s StageSet) Get(st Stage) int {
	switch st {
	case StageFoam:
		return s.Foam
	case StageUpholstery:
		return s.Upholstery
	case StageAssembly:
		return s.Assembly
	case StagePackaged:
		return s.Packaged
	case StageStored:
		return s.Stored
	case StageShipped:
		return s.Shipped
	}
	return 0
}

// Set ilgili aşamanın sayacını günceller.
func (s *StageSet) Set(st Stage, v int) {
	switch st {
	case StageFoam:
		s.Foam = v
	case StageUpholstery:
		s.Upholstery = v
	case StageAssembly:
		s.Assembly = v
	case StagePackaged:
		s.Packaged = v
	case StageStored:
		s.Stored = v
	case StageShipped:
		s.Shipped = v
	}
}

// Total altı sayacın toplamını döner.
func (s StageSet) Total() int {
	return s.Foam + s.Upholstery + s.Assembly + s.Packaged + s.Stored + s.Shipped
}
