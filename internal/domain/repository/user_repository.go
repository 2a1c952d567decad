package repository

import "github.com/kardelen/uretim-api/internal/domain/entity"

// UserRepository kullanıcılar için kalıcılık portu.
type UserRepository interface {
	Create(u *entity.User) error
	FindByEmail(email string) (*entity.User, error)
}
