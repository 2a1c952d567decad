package dto

import "time"

// RegisterRequest body: POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"` // boşsa uretim atanır
}

// LoginRequest body: POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse kullanıcının API temsili (parola alanı yok).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse JWT ve kullanıcı bilgisi.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
