package model

import "strconv"

// VentaFields is the persisted CSV column order for sales.
var VentaFields = []string{"fecha_hora", "codigo_barra", "nombre_producto", "cantidad_vendida", "cajero"}

// Venta is one sold line item. Sales are append-only: once recorded they
// are never mutated or deleted. NombreProducto is a snapshot taken at sale
// time — the referenced product may change or reference nothing at all.
type Venta struct {
	FechaHora       string `json:"fecha_hora"` // RFC 3339 / ISO 8601
	CodigoBarra     string `json:"codigo_barra"`
	NombreProducto  string `json:"nombre_producto"`
	CantidadVendida int    `json:"cantidad_vendida"`
	Cajero          string `json:"cajero"`
}

// CSVRecord maps the sale onto its persisted column names.
func (v Venta) CSVRecord() map[string]string {
	return map[string]string{
		"fecha_hora":       v.FechaHora,
		"codigo_barra":     v.CodigoBarra,
		"nombre_producto":  v.NombreProducto,
		"cantidad_vendida": strconv.Itoa(v.CantidadVendida),
		"cajero":           v.Cajero,
	}
}
