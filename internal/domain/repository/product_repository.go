package repository

import (
	"context"

	"github.com/jhoicas/product-stats/internal/domain/entity"
)

// ProductRepository define el puerto de lectura del catálogo de productos (DIP).
// ListAll devuelve los productos en su orden de inserción; los consumidores no deben mutar el slice.
type ProductRepository interface {
	ListAll(ctx context.Context) ([]entity.Product, error)
}
