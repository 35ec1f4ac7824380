package service

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/KikePrograma-afk/Tukiosko/internal/csvcodec"
	"github.com/KikePrograma-afk/Tukiosko/internal/dto"
	"github.com/KikePrograma-afk/Tukiosko/internal/model"
	"github.com/KikePrograma-afk/Tukiosko/internal/store"
)

// ReporteService computes the dashboard aggregations and the downloadable
// CSV reports. Revenue figures look prices up in the current catalog, so
// sales of since-removed products contribute units but not revenue.
type ReporteService interface {
	Dashboard(hoy time.Time) *dto.DashboardResponse
	InventarioCSV() string
	VentasCSV() string
}

type reporteService struct {
	store *store.Store
}

func NewReporteService(st *store.Store) ReporteService {
	return &reporteService{store: st}
}

func (s *reporteService) Dashboard(hoy time.Time) *dto.DashboardResponse {
	productos := s.store.Productos()
	ventas := s.store.Ventas()

	return &dto.DashboardResponse{
		Resumen:           resumen(productos, ventas),
		FranjasStock:      franjasStock(productos),
		ValorPorCategoria: valorPorCategoria(productos),
		VentasPorDia:      ventasPorDia(productos, ventas, hoy),
		TopProductos:      topProductos(productos, ventas),
	}
}

func resumen(productos map[string]model.Producto, ventas []model.Venta) dto.ResumenKiosco {
	r := dto.ResumenKiosco{
		TotalProductos:  len(productos),
		IngresosTotales: decimal.Zero,
	}
	for _, p := range productos {
		if p.StockBajo() {
			r.ProductosStockBajo++
		}
	}
	for _, v := range ventas {
		r.TotalVentas += v.CantidadVendida
		if p, ok := productos[v.CodigoBarra]; ok {
			r.IngresosTotales = r.IngresosTotales.Add(ingresoVenta(p, v))
		}
	}
	return r
}

// franjasStock keeps the original dashboard's absolute bands.
func franjasStock(productos map[string]model.Producto) []dto.FranjaStock {
	var bajo, medio, alto int
	for _, p := range productos {
		switch {
		case p.Stock <= 5:
			bajo++
		case p.Stock <= 15:
			medio++
		default:
			alto++
		}
	}
	return []dto.FranjaStock{
		{Nombre: "Stock Crítico (≤5)", Productos: bajo},
		{Nombre: "Stock Medio (6-15)", Productos: medio},
		{Nombre: "Stock Alto (>15)", Productos: alto},
	}
}

func valorPorCategoria(productos map[string]model.Producto) []dto.ValorCategoria {
	porCategoria := make(map[string]decimal.Decimal)
	for _, p := range productos {
		categoria := p.Categoria
		if categoria == "" {
			categoria = "Sin Categoría"
		}
		porCategoria[categoria] = porCategoria[categoria].Add(p.ValorInventario())
	}

	out := make([]dto.ValorCategoria, 0, len(porCategoria))
	for categoria, valor := range porCategoria {
		out = append(out, dto.ValorCategoria{Categoria: categoria, Valor: valor})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Categoria < out[j].Categoria })
	return out
}

// ventasPorDia aggregates the trailing seven days, oldest first. Sales
// timestamps are matched by their date prefix.
func ventasPorDia(productos map[string]model.Producto, ventas []model.Venta, hoy time.Time) []dto.VentaDia {
	dias := make([]dto.VentaDia, 0, 7)
	for i := 6; i >= 0; i-- {
		fecha := hoy.AddDate(0, 0, -i).Format("2006-01-02")
		dia := dto.VentaDia{Fecha: fecha, Ingresos: decimal.Zero}
		for _, v := range ventas {
			if !strings.HasPrefix(v.FechaHora, fecha) {
				continue
			}
			dia.Unidades += v.CantidadVendida
			if p, ok := productos[v.CodigoBarra]; ok {
				dia.Ingresos = dia.Ingresos.Add(ingresoVenta(p, v))
			}
		}
		dias = append(dias, dia)
	}
	return dias
}

// topProductos ranks the five best sellers by units. Sales referencing a
// codigo no longer in the catalog are skipped, as the original dashboard
// did.
func topProductos(productos map[string]model.Producto, ventas []model.Venta) []dto.TopProducto {
	acumulado := make(map[string]*dto.TopProducto)
	for _, v := range ventas {
		p, ok := productos[v.CodigoBarra]
		if !ok {
			continue
		}
		top, ok := acumulado[v.CodigoBarra]
		if !ok {
			top = &dto.TopProducto{Codigo: v.CodigoBarra, Nombre: p.Nombre, Ingresos: decimal.Zero}
			acumulado[v.CodigoBarra] = top
		}
		top.Cantidad += v.CantidadVendida
		top.Ingresos = top.Ingresos.Add(ingresoVenta(p, v))
	}

	ranking := make([]dto.TopProducto, 0, len(acumulado))
	for _, top := range acumulado {
		ranking = append(ranking, *top)
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Cantidad != ranking[j].Cantidad {
			return ranking[i].Cantidad > ranking[j].Cantidad
		}
		return ranking[i].Codigo < ranking[j].Codigo
	})
	if len(ranking) > 5 {
		ranking = ranking[:5]
	}
	return ranking
}

func ingresoVenta(p model.Producto, v model.Venta) decimal.Decimal {
	return p.Precio.Mul(decimal.NewFromInt(int64(v.CantidadVendida)))
}

// InventarioCSV renders the current catalog sorted by nombre, ready for
// download.
func (s *reporteService) InventarioCSV() string {
	productos := s.store.Productos()
	lista := make([]model.Producto, 0, len(productos))
	for _, p := range productos {
		lista = append(lista, p)
	}
	sort.Slice(lista, func(i, j int) bool {
		if lista[i].Nombre != lista[j].Nombre {
			return lista[i].Nombre < lista[j].Nombre
		}
		return lista[i].Codigo < lista[j].Codigo
	})

	recs := make([]map[string]string, 0, len(lista))
	for _, p := range lista {
		recs = append(recs, p.CSVRecord())
	}
	return csvcodec.Encode(recs, model.ProductoFields)
}

// VentasCSV renders the sales log newest first, ready for download.
func (s *reporteService) VentasCSV() string {
	ventas := s.store.Ventas()
	sort.SliceStable(ventas, func(i, j int) bool { return ventas[i].FechaHora > ventas[j].FechaHora })

	recs := make([]map[string]string, 0, len(ventas))
	for _, v := range ventas {
		recs = append(recs, v.CSVRecord())
	}
	return csvcodec.Encode(recs, model.VentaFields)
}
