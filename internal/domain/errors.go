package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidID          = errors.New("identificador inválido")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrEmptyUpdate        = errors.New("sin campos para actualizar")
)

// InvalidCategoryIDsError agrupa en un solo error todas las referencias a categoría
// con identificador sintácticamente inválido dentro de un payload.
type InvalidCategoryIDsError struct {
	IDs []string
}

func (e *InvalidCategoryIDsError) Error() string {
	return fmt.Sprintf("ids de categoría inválidos: %s", strings.Join(e.IDs, ", "))
}

// CategoriesNotFoundError agrupa en un solo error todas las referencias a categoría
// bien formadas que no resuelven a un registro existente.
type CategoriesNotFoundError struct {
	IDs []string
}

func (e *CategoriesNotFoundError) Error() string {
	return fmt.Sprintf("categorías no encontradas: %s", strings.Join(e.IDs, ", "))
}
