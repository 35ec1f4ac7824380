package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ItemVentaRequest is one cart line at checkout.
type ItemVentaRequest struct {
	Codigo   string `json:"codigo"   validate:"required"`
	Cantidad int    `json:"cantidad" validate:"required,gt=0"`
}

// RegistrarVentaRequest is the whole cart plus the cashier closing it.
type RegistrarVentaRequest struct {
	Cajero string             `json:"cajero" validate:"required"`
	Items  []ItemVentaRequest `json:"items"  validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ItemVentaResultado reports the per-item outcome. Items with
// insufficient stock (or an unknown codigo) fail individually without
// aborting the rest of the cart.
type ItemVentaResultado struct {
	Codigo   string `json:"codigo"`
	Nombre   string `json:"nombre"`
	Cantidad int    `json:"cantidad"`
	Vendido  bool   `json:"vendido"`
	Motivo   string `json:"motivo,omitempty"`
}

type RegistrarVentaResponse struct {
	FechaHora string               `json:"fecha_hora"`
	Cajero    string               `json:"cajero"`
	Completa  bool                 `json:"completa"`
	Items     []ItemVentaResultado `json:"items"`
}

type VentaResponse struct {
	FechaHora       string `json:"fecha_hora"`
	CodigoBarra     string `json:"codigo_barra"`
	NombreProducto  string `json:"nombre_producto"`
	CantidadVendida int    `json:"cantidad_vendida"`
	Cajero          string `json:"cajero"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int             `json:"total"`
}
