package dto

import "time"

// CategoryRef referencia a una categoría dentro de un payload. Solo el id es
// obligatorio; el nombre es informativo y se ignora al persistir.
type CategoryRef struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
}

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name   string       `json:"name" validate:"required,min=1,max=200"`
	Parent *CategoryRef `json:"parent" validate:"omitempty"`
}

// CategoryResponse salida de una categoría con el padre resuelto un nivel:
// Parent.Parent siempre es nil aunque el padre tenga a su vez un padre.
type CategoryResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Parent    *CategoryResponse `json:"parent,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
