package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KikePrograma-afk/Tukiosko/internal/model"
)

// stubLoader serves canned CSV per resource, counting calls.
type stubLoader struct {
	productosCSV string
	ventasCSV    string
	calls        map[string]int
}

func newStubLoader(productosCSV, ventasCSV string) *stubLoader {
	return &stubLoader{
		productosCSV: productosCSV,
		ventasCSV:    ventasCSV,
		calls:        make(map[string]int),
	}
}

func (l *stubLoader) Load(_ context.Context, resource string) string {
	l.calls[resource]++
	if resource == "products" {
		return l.productosCSV
	}
	return l.ventasCSV
}

func headerOnly(fields []string) string {
	return strings.Join(fields, ",") + "\n"
}

func newLoadedStore(t *testing.T) *Store {
	t.Helper()
	st := New(newStubLoader(headerOnly(model.ProductoFields), headerOnly(model.VentaFields)))
	st.Initialize(context.Background())
	return st
}

func agua() model.Producto {
	return model.Producto{
		Codigo:    "1234567890123",
		Nombre:    "Agua",
		Stock:     20,
		Precio:    decimal.RequireFromString("1.5"),
		Categoria: "Bebidas",
	}
}

func TestInitializeLoadsBothResources(t *testing.T) {
	loader := newStubLoader(
		headerOnly(model.ProductoFields)+"779,Galletas,8,3.75,Almacén,,4",
		headerOnly(model.VentaFields)+"2026-08-29T10:00:00Z,779,Galletas,2,Ana",
	)
	st := New(loader)

	assert.True(t, st.IsLoading())
	st.Initialize(context.Background())

	assert.False(t, st.IsLoading())
	assert.Equal(t, 1, loader.calls["products"])
	assert.Equal(t, 1, loader.calls["sales"])

	p, ok := st.GetProduct("779")
	require.True(t, ok)
	assert.Equal(t, "Galletas", p.Nombre)
	require.Len(t, st.Ventas(), 1)
	assert.Equal(t, "Ana", st.Ventas()[0].Cajero)
}

func TestInitializeRunsOnce(t *testing.T) {
	loader := newStubLoader(headerOnly(model.ProductoFields), headerOnly(model.VentaFields))
	st := New(loader)

	st.Initialize(context.Background())
	st.Initialize(context.Background())

	assert.Equal(t, 1, loader.calls["products"])
	assert.Equal(t, 1, loader.calls["sales"])
}

func TestDecreaseStockScenario(t *testing.T) {
	st := newLoadedStore(t)
	st.AddProduct(agua())

	assert.True(t, st.DecreaseStock("1234567890123", 5))
	p, _ := st.GetProduct("1234567890123")
	assert.Equal(t, 15, p.Stock)

	assert.False(t, st.DecreaseStock("1234567890123", 100))
	p, _ = st.GetProduct("1234567890123")
	assert.Equal(t, 15, p.Stock, "failed decrease must not mutate")
}

func TestDecreaseStockUnknownProduct(t *testing.T) {
	st := newLoadedStore(t)
	assert.False(t, st.DecreaseStock("nope", 1))
}

func TestDecreaseStockNeverGoesNegative(t *testing.T) {
	st := newLoadedStore(t)
	p := agua()
	p.Stock = 3
	st.AddProduct(p)

	assert.True(t, st.DecreaseStock(p.Codigo, 3))
	got, _ := st.GetProduct(p.Codigo)
	assert.Equal(t, 0, got.Stock)

	assert.False(t, st.DecreaseStock(p.Codigo, 1))
	got, _ = st.GetProduct(p.Codigo)
	assert.Equal(t, 0, got.Stock)
}

func TestAddSaleIsAppendOnly(t *testing.T) {
	st := newLoadedStore(t)
	first := model.Venta{FechaHora: "2026-08-29T10:00:00Z", CodigoBarra: "1", NombreProducto: "Pan", CantidadVendida: 1, Cajero: "Ana"}
	second := model.Venta{FechaHora: "2026-08-29T11:00:00Z", CodigoBarra: "2", NombreProducto: "Agua", CantidadVendida: 2, Cajero: "Luis"}

	st.AddSale(first)
	before := st.Ventas()
	st.AddSale(second)
	after := st.Ventas()

	require.Len(t, after, len(before)+1)
	assert.Equal(t, before, after[:len(before)], "existing entries unchanged, order preserved")
	assert.Equal(t, second, after[len(after)-1])
}

func TestUpdateProductPreservesUnspecifiedFields(t *testing.T) {
	st := newLoadedStore(t)
	st.AddProduct(agua())

	nuevoStock := 7
	st.UpdateProduct(model.ProductoPatch{Codigo: "1234567890123", Stock: &nuevoStock})

	p, ok := st.GetProduct("1234567890123")
	require.True(t, ok)
	assert.Equal(t, 7, p.Stock)
	assert.Equal(t, "Agua", p.Nombre)
	assert.Equal(t, "Bebidas", p.Categoria)
	assert.True(t, p.Precio.Equal(decimal.RequireFromString("1.5")))
}

func TestUpdateProductWithoutPriorEntryInserts(t *testing.T) {
	st := newLoadedStore(t)

	nombre := "Fiambre"
	st.UpdateProduct(model.ProductoPatch{Codigo: "999", Nombre: &nombre})

	p, ok := st.GetProduct("999")
	require.True(t, ok)
	assert.Equal(t, "Fiambre", p.Nombre)
	assert.Zero(t, p.Stock)
}

func TestAddProductOverwritesExistingCode(t *testing.T) {
	st := newLoadedStore(t)
	st.AddProduct(agua())

	replacement := agua()
	replacement.Nombre = "Agua con gas"
	st.AddProduct(replacement)

	p, _ := st.GetProduct("1234567890123")
	assert.Equal(t, "Agua con gas", p.Nombre)
}

func TestSnapshotIsDeterministic(t *testing.T) {
	st := newLoadedStore(t)
	st.AddProduct(model.Producto{Codigo: "b", Nombre: "B", Precio: decimal.Zero})
	st.AddProduct(model.Producto{Codigo: "a", Nombre: "A", Precio: decimal.Zero})
	st.AddProduct(model.Producto{Codigo: "c", Nombre: "C", Precio: decimal.Zero})

	first := st.Snapshot()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, st.Snapshot(), "snapshot must not depend on map iteration order")
	}
}

func TestSnapshotChangesOnMutation(t *testing.T) {
	st := newLoadedStore(t)
	st.AddProduct(agua())
	before := st.Snapshot()

	st.DecreaseStock("1234567890123", 1)
	after := st.Snapshot()

	assert.NotEqual(t, before.Productos, after.Productos)
	assert.Equal(t, before.Ventas, after.Ventas)
}

func TestProductosReturnsCopy(t *testing.T) {
	st := newLoadedStore(t)
	st.AddProduct(agua())

	copia := st.Productos()
	delete(copia, "1234567890123")

	_, ok := st.GetProduct("1234567890123")
	assert.True(t, ok)
}

func TestLastSaved(t *testing.T) {
	st := newLoadedStore(t)

	_, ok := st.LastSaved()
	assert.False(t, ok, "no save recorded yet")

	now := time.Now()
	st.MarkSaved(now)
	at, ok := st.LastSaved()
	assert.True(t, ok)
	assert.Equal(t, now, at)
}
