package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. CategoryIDs es un conjunto sin
// duplicados de referencias a Category; cada una debe resolver a un registro
// existente al momento de escribir.
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal // >= 0
	Qty         int             // >= 0
	CategoryIDs []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
