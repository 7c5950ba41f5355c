package entity

import "time"

// Category representa una categoría del catálogo (jerárquica opcional).
// ParentID es una referencia débil: se guarda el identificador y se resuelve
// al registro completo solo al construir la respuesta.
type Category struct {
	ID        string
	Name      string
	ParentID  string // vacío si es raíz
	CreatedAt time.Time
	UpdatedAt time.Time
}
