package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Price >= 0 se valida en el use case (decimal no es comparable vía tags).
type CreateProductRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Qty        int             `json:"qty" validate:"gte=0"`
	Price      decimal.Decimal `json:"price"`
	Categories []CategoryRef   `json:"categories" validate:"required,min=1,dive"`
}

// UpdateProductRequest entrada para actualización parcial: todos los campos
// opcionales, semántica de merge (solo cambian los campos enviados).
type UpdateProductRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Qty        *int             `json:"qty" validate:"omitempty,gte=0"`
	Price      *decimal.Decimal `json:"price"`
	Categories []CategoryRef    `json:"categories" validate:"omitempty,min=1,dive"`
}

// Empty reporta si el payload no trae ningún campo para actualizar.
func (r UpdateProductRequest) Empty() bool {
	return r.Name == nil && r.Qty == nil && r.Price == nil && len(r.Categories) == 0
}

// ProductResponse salida de un producto con las categorías resueltas a registros completos.
type ProductResponse struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Price      decimal.Decimal    `json:"price"`
	Qty        int                `json:"qty"`
	Categories []CategoryResponse `json:"categories"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}
