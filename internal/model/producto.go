package model

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// DefaultStockMinimo is the low-stock threshold applied when a product has
// no explicit stock_minimo configured. The same default feeds both the
// low-stock flag and the stock percentage basis.
const DefaultStockMinimo = 10

// ProductoFields is the persisted CSV column order for products.
// The header row is written and expected in exactly this order.
var ProductoFields = []string{"codigo", "nombre", "stock", "precio", "categoria", "imagen", "stockMinimo"}

// Producto is one catalog entry, keyed by its barcode (Codigo).
// Products are registered and updated but never deleted.
type Producto struct {
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	Stock       int             `json:"stock"`
	Precio      decimal.Decimal `json:"precio"`
	Categoria   string          `json:"categoria"`
	Imagen      string          `json:"imagen"`
	StockMinimo int             `json:"stock_minimo"`
}

// UmbralStockBajo returns the effective low-stock threshold.
func (p Producto) UmbralStockBajo() int {
	if p.StockMinimo > 0 {
		return p.StockMinimo
	}
	return DefaultStockMinimo
}

// StockBajo reports whether the product is below its low-stock threshold.
func (p Producto) StockBajo() bool {
	return p.Stock < p.UmbralStockBajo()
}

// PorcentajeStock returns stock as a percentage of the threshold, for the
// inventory level views.
func (p Producto) PorcentajeStock() float64 {
	return float64(p.Stock) / float64(p.UmbralStockBajo()) * 100
}

// ValorInventario is stock × precio.
func (p Producto) ValorInventario() decimal.Decimal {
	return p.Precio.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// CSVRecord maps the product onto its persisted column names.
func (p Producto) CSVRecord() map[string]string {
	stockMinimo := ""
	if p.StockMinimo > 0 {
		stockMinimo = strconv.Itoa(p.StockMinimo)
	}
	return map[string]string{
		"codigo":      p.Codigo,
		"nombre":      p.Nombre,
		"stock":       strconv.Itoa(p.Stock),
		"precio":      p.Precio.String(),
		"categoria":   p.Categoria,
		"imagen":      p.Imagen,
		"stockMinimo": stockMinimo,
	}
}
