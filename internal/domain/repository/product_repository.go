package repository

import "github.com/jhoicas/menu-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Create y Update escriben también el conjunto de referencias a categoría,
// por lo que deben ejecutarse dentro de una transacción (ver TxRunner).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// Delete elimina por ID y reporta si existía; la ausencia no es un error.
	Delete(id string) (bool, error)
}
