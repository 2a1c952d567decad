package entity

import "time"

// Roller. Hangi rolün hangi aşamayı düzenleyebileceği tek bir yetki
// tablosunda tutulur (production.CanEditStage).
const (
	RoleAdmin     = "admin"
	RolePlanlama  = "planlama"  // planlama sorumlusu
	RolePazarlama = "pazarlama" // pazarlama / sipariş takibi
	RoleUretim    = "uretim"    // üretim personeli
	RoleMuhendis  = "muhendis"  // mühendis
	RoleDepo      = "depo"      // depo personeli
	RoleSevkiyat  = "sevkiyat"  // sevkiyat personeli
)

// ValidRoles tanımlı rollerin listesi.
func ValidRoles() []string {
	return []string{RoleAdmin, RolePlanlama, RolePazarlama, RoleUretim, RoleMuhendis, RoleDepo, RoleSevkiyat}
}

// User sistem kullanıcısını temsil eder.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, kalıcılaştıktan sonra asla düz metin
	Name         string
	Role         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
