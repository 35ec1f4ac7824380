package dto

import "github.com/shopspring/decimal"

// ─── Dashboard ───────────────────────────────────────────────────────────────

// ResumenKiosco are the headline KPI cards.
type ResumenKiosco struct {
	TotalProductos     int             `json:"total_productos"`
	TotalVentas        int             `json:"total_ventas"`
	IngresosTotales    decimal.Decimal `json:"ingresos_totales"`
	ProductosStockBajo int             `json:"productos_stock_bajo"`
}

// FranjaStock is one slice of the stock breakdown pie
// (crítico ≤5 / medio 6–15 / alto >15).
type FranjaStock struct {
	Nombre    string `json:"nombre"`
	Productos int    `json:"productos"`
}

// ValorCategoria is the inventory value (stock × precio) of one category.
type ValorCategoria struct {
	Categoria string          `json:"categoria"`
	Valor     decimal.Decimal `json:"valor"`
}

// VentaDia aggregates one day of the trailing week.
type VentaDia struct {
	Fecha    string          `json:"fecha"` // YYYY-MM-DD
	Unidades int             `json:"unidades"`
	Ingresos decimal.Decimal `json:"ingresos"`
}

// TopProducto is one row of the best-sellers ranking.
type TopProducto struct {
	Codigo   string          `json:"codigo"`
	Nombre   string          `json:"nombre"`
	Cantidad int             `json:"cantidad"`
	Ingresos decimal.Decimal `json:"ingresos"`
}

type DashboardResponse struct {
	Resumen           ResumenKiosco    `json:"resumen"`
	FranjasStock      []FranjaStock    `json:"franjas_stock"`
	ValorPorCategoria []ValorCategoria `json:"valor_por_categoria"`
	VentasPorDia      []VentaDia       `json:"ventas_por_dia"`
	TopProductos      []TopProducto    `json:"top_productos"`
}

// ─── Save status ─────────────────────────────────────────────────────────────

// EstadoResponse feeds the save-status widget.
type EstadoResponse struct {
	Cargando       bool    `json:"cargando"`
	UltimoGuardado *string `json:"ultimo_guardado"` // RFC 3339, null before first save
}
