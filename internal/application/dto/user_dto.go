package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
// Sin política de fortaleza: cualquier password no vacío es aceptado.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario. Proyección explícita: nunca incluye el hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterResponse salida de registro: {status:"success", data:user}.
type RegisterResponse struct {
	Status string       `json:"status"`
	Data   UserResponse `json:"data"`
}

// LoginResponse salida con token JWT: {status:"success", token}.
type LoginResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}
