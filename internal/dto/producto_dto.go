package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarProductoRequest struct {
	Codigo      string          `json:"codigo"       validate:"required"`
	Nombre      string          `json:"nombre"       validate:"required,max=50"`
	Stock       int             `json:"stock"        validate:"required,gt=0"`
	Precio      decimal.Decimal `json:"precio"       validate:"min=0"`
	Categoria   string          `json:"categoria"`
	Imagen      string          `json:"imagen"`
	StockMinimo int             `json:"stock_minimo" validate:"min=0"`
}

type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre"       validate:"omitempty,max=50"`
	Stock       *int             `json:"stock"        validate:"omitempty,min=0"`
	Precio      *decimal.Decimal `json:"precio"`
	Categoria   *string          `json:"categoria"`
	Imagen      *string          `json:"imagen"`
	StockMinimo *int             `json:"stock_minimo" validate:"omitempty,min=0"`
}

// ─── Filter / Sort ───────────────────────────────────────────────────────────

// ProductoFilter mirrors the inventory view facets: categoria, stock level
// relative to the low-stock threshold, price range and free-text search
// over nombre/codigo.
type ProductoFilter struct {
	Categoria  string `form:"categoria"`
	NivelStock string `form:"nivel_stock" validate:"omitempty,oneof=bajo medio alto"`
	PrecioMin  string `form:"precio_min"`
	PrecioMax  string `form:"precio_max"`
	Busqueda   string `form:"busqueda"`
	OrdenarPor string `form:"ordenar_por" validate:"omitempty,oneof=nombre stock precio"`
	Orden      string `form:"orden"       validate:"omitempty,oneof=asc desc"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	Codigo          string          `json:"codigo"`
	Nombre          string          `json:"nombre"`
	Stock           int             `json:"stock"`
	Precio          decimal.Decimal `json:"precio"`
	Categoria       string          `json:"categoria"`
	Imagen          string          `json:"imagen"`
	StockMinimo     int             `json:"stock_minimo"`
	StockBajo       bool            `json:"stock_bajo"`
	PorcentajeStock float64         `json:"porcentaje_stock"`
}

type ProductoListResponse struct {
	Data       []ProductoResponse `json:"data"`
	Total      int                `json:"total"`
	Categorias []string           `json:"categorias"`
}
