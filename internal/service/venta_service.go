package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/KikePrograma-afk/Tukiosko/internal/dto"
	"github.com/KikePrograma-afk/Tukiosko/internal/model"
	"github.com/KikePrograma-afk/Tukiosko/internal/store"
)

// VentaService closes carts against the store and exposes the sales log.
type VentaService interface {
	Registrar(req dto.RegistrarVentaRequest) *dto.RegistrarVentaResponse
	Listar() *dto.VentaListResponse
}

type ventaService struct {
	store *store.Store
	now   func() time.Time
}

func NewVentaService(st *store.Store) VentaService {
	return &ventaService{store: st, now: time.Now}
}

// Registrar processes each cart line in order: decrement stock, then
// append the sale with the product name snapshot and the shared checkout
// timestamp. A line that fails (unknown codigo, insufficient stock) is
// reported in its result and does not abort the remaining lines — that
// matches the till behavior, where the cashier resolves conflicts item by
// item.
func (s *ventaService) Registrar(req dto.RegistrarVentaRequest) *dto.RegistrarVentaResponse {
	fechaHora := s.now().UTC().Format(time.RFC3339)

	resp := &dto.RegistrarVentaResponse{
		FechaHora: fechaHora,
		Cajero:    req.Cajero,
		Completa:  true,
	}

	for _, item := range req.Items {
		resultado := dto.ItemVentaResultado{
			Codigo:   item.Codigo,
			Cantidad: item.Cantidad,
		}

		producto, ok := s.store.GetProduct(item.Codigo)
		switch {
		case !ok:
			resultado.Motivo = "Producto no encontrado"
		case !s.store.DecreaseStock(item.Codigo, item.Cantidad):
			resultado.Nombre = producto.Nombre
			resultado.Motivo = fmt.Sprintf("Stock insuficiente. Stock actual: %d", producto.Stock)
		default:
			resultado.Nombre = producto.Nombre
			resultado.Vendido = true
			s.store.AddSale(model.Venta{
				FechaHora:       fechaHora,
				CodigoBarra:     item.Codigo,
				NombreProducto:  producto.Nombre,
				CantidadVendida: item.Cantidad,
				Cajero:          req.Cajero,
			})
		}

		if !resultado.Vendido {
			resp.Completa = false
			log.Warn().
				Str("codigo", item.Codigo).
				Int("cantidad", item.Cantidad).
				Str("motivo", resultado.Motivo).
				Msg("venta: item rechazado")
		}
		resp.Items = append(resp.Items, resultado)
	}

	return resp
}

// Listar returns the whole sales log in insertion order.
func (s *ventaService) Listar() *dto.VentaListResponse {
	ventas := s.store.Ventas()
	data := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		data = append(data, dto.VentaResponse{
			FechaHora:       v.FechaHora,
			CodigoBarra:     v.CodigoBarra,
			NombreProducto:  v.NombreProducto,
			CantidadVendida: v.CantidadVendida,
			Cajero:          v.Cajero,
		})
	}
	return &dto.VentaListResponse{Data: data, Total: len(data)}
}
