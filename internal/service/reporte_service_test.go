package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KikePrograma-afk/Tukiosko/internal/model"
	"github.com/KikePrograma-afk/Tukiosko/internal/store"
)

func seedReportes(t *testing.T) *store.Store {
	t.Helper()
	st := newLoadedStore(t)
	st.AddProduct(model.Producto{Codigo: "1", Nombre: "Agua", Stock: 20, Precio: precio("1.5"), Categoria: "Bebidas"})
	st.AddProduct(model.Producto{Codigo: "2", Nombre: "Pan", Stock: 3, Precio: precio("5"), Categoria: "Panadería"})
	st.AddProduct(model.Producto{Codigo: "3", Nombre: "Galletas", Stock: 10, Precio: precio("3.75"), Categoria: "Almacén"})

	st.AddSale(model.Venta{FechaHora: "2026-08-29T10:00:00Z", CodigoBarra: "1", NombreProducto: "Agua", CantidadVendida: 4, Cajero: "Ana"})
	st.AddSale(model.Venta{FechaHora: "2026-08-29T12:00:00Z", CodigoBarra: "2", NombreProducto: "Pan", CantidadVendida: 2, Cajero: "Ana"})
	st.AddSale(model.Venta{FechaHora: "2026-08-27T12:00:00Z", CodigoBarra: "1", NombreProducto: "Agua", CantidadVendida: 1, Cajero: "Luis"})
	// Sale of a product no longer in the catalog: counts units, no revenue.
	st.AddSale(model.Venta{FechaHora: "2026-08-29T13:00:00Z", CodigoBarra: "borrado", NombreProducto: "Viejo", CantidadVendida: 5, Cajero: "Luis"})
	return st
}

func TestDashboardResumen(t *testing.T) {
	svc := NewReporteService(seedReportes(t))
	hoy := time.Date(2026, 8, 29, 23, 0, 0, 0, time.UTC)

	d := svc.Dashboard(hoy)

	assert.Equal(t, 3, d.Resumen.TotalProductos)
	assert.Equal(t, 12, d.Resumen.TotalVentas, "4+2+1+5 units")
	// 5*1.5 (Agua) + 2*5 (Pan) = 17.5; the deleted product adds nothing.
	assert.True(t, d.Resumen.IngresosTotales.Equal(precio("17.5")), "got %s", d.Resumen.IngresosTotales)
	assert.Equal(t, 1, d.Resumen.ProductosStockBajo, "only Pan is below the threshold")
}

func TestDashboardFranjasStock(t *testing.T) {
	svc := NewReporteService(seedReportes(t))

	d := svc.Dashboard(time.Now().UTC())

	require.Len(t, d.FranjasStock, 3)
	assert.Equal(t, 1, d.FranjasStock[0].Productos, "Pan ≤5")
	assert.Equal(t, 1, d.FranjasStock[1].Productos, "Galletas 6-15")
	assert.Equal(t, 1, d.FranjasStock[2].Productos, "Agua >15")
}

func TestDashboardValorPorCategoria(t *testing.T) {
	svc := NewReporteService(seedReportes(t))

	d := svc.Dashboard(time.Now().UTC())

	require.Len(t, d.ValorPorCategoria, 3)
	valores := make(map[string]string)
	for _, v := range d.ValorPorCategoria {
		valores[v.Categoria] = v.Valor.String()
	}
	assert.Equal(t, "30", valores["Bebidas"], "20×1.5")
	assert.Equal(t, "15", valores["Panadería"], "3×5")
	assert.Equal(t, "37.5", valores["Almacén"], "10×3.75")
}

func TestDashboardVentasPorDia(t *testing.T) {
	svc := NewReporteService(seedReportes(t))
	hoy := time.Date(2026, 8, 29, 23, 0, 0, 0, time.UTC)

	d := svc.Dashboard(hoy)

	require.Len(t, d.VentasPorDia, 7)
	assert.Equal(t, "2026-08-23", d.VentasPorDia[0].Fecha, "oldest day first")
	ultimo := d.VentasPorDia[6]
	assert.Equal(t, "2026-08-29", ultimo.Fecha)
	assert.Equal(t, 11, ultimo.Unidades, "4+2+5 units sold today")
	assert.True(t, ultimo.Ingresos.Equal(precio("16")), "4×1.5 + 2×5")

	antier := d.VentasPorDia[4]
	assert.Equal(t, "2026-08-27", antier.Fecha)
	assert.Equal(t, 1, antier.Unidades)
}

func TestDashboardTopProductos(t *testing.T) {
	svc := NewReporteService(seedReportes(t))

	d := svc.Dashboard(time.Now().UTC())

	require.Len(t, d.TopProductos, 2, "the deleted product is not ranked")
	assert.Equal(t, "Agua", d.TopProductos[0].Nombre)
	assert.Equal(t, 5, d.TopProductos[0].Cantidad)
	assert.Equal(t, "Pan", d.TopProductos[1].Nombre)
}

func TestInventarioCSVOrdenadoPorNombre(t *testing.T) {
	svc := NewReporteService(seedReportes(t))

	csv := svc.InventarioCSV()
	lines := strings.Split(csv, "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, strings.Join(model.ProductoFields, ","), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,Agua,"))
	assert.True(t, strings.HasPrefix(lines[2], "3,Galletas,"))
	assert.True(t, strings.HasPrefix(lines[3], "2,Pan,"))
}

func TestVentasCSVMasRecientesPrimero(t *testing.T) {
	svc := NewReporteService(seedReportes(t))

	csv := svc.VentasCSV()
	lines := strings.Split(csv, "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, strings.Join(model.VentaFields, ","), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2026-08-29T13:00:00Z"))
	assert.True(t, strings.HasPrefix(lines[4], "2026-08-27T12:00:00Z"))
}
