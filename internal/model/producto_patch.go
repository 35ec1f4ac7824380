package model

import "github.com/shopspring/decimal"

// ProductoPatch is a partial product update. Nil fields keep the prior
// value; set fields replace it. Applying a patch to a product that does
// not exist yet behaves like an insert of the set fields.
type ProductoPatch struct {
	Codigo      string
	Nombre      *string
	Stock       *int
	Precio      *decimal.Decimal
	Categoria   *string
	Imagen      *string
	StockMinimo *int
}

// Apply merges the patch onto base and returns the result.
func (patch ProductoPatch) Apply(base Producto) Producto {
	base.Codigo = patch.Codigo
	if patch.Nombre != nil {
		base.Nombre = *patch.Nombre
	}
	if patch.Stock != nil {
		base.Stock = *patch.Stock
	}
	if patch.Precio != nil {
		base.Precio = *patch.Precio
	}
	if patch.Categoria != nil {
		base.Categoria = *patch.Categoria
	}
	if patch.Imagen != nil {
		base.Imagen = *patch.Imagen
	}
	if patch.StockMinimo != nil {
		base.StockMinimo = *patch.StockMinimo
	}
	return base
}
