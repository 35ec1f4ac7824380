// Package store holds the authoritative in-memory state: the product
// catalog keyed by barcode and the append-only sales log. Mutations are
// synchronous and immediately visible; persistence is the auto-save
// scheduler's job, not the store's.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/KikePrograma-afk/Tukiosko/internal/csvcodec"
	"github.com/KikePrograma-afk/Tukiosko/internal/model"
)

// Loader fetches the persisted CSV document for a named resource. The
// persistence gateway satisfies this.
type Loader interface {
	Load(ctx context.Context, resource string) string
}

// Snapshot is the serialized form of both collections at one instant,
// used for save-time change detection. Comparison is full-content
// equality.
type Snapshot struct {
	Productos string
	Ventas    string
}

// Store is constructed once at process start and lives for the process
// lifetime. A RWMutex guards it because HTTP handlers and the auto-save
// scheduler touch it concurrently.
type Store struct {
	mu        sync.RWMutex
	productos map[string]model.Producto
	ventas    []model.Venta
	isLoading bool
	lastSaved time.Time

	loader   Loader
	initOnce sync.Once
}

// New builds an empty store backed by the given loader. The store starts
// in the loading state; Initialize clears it once both resources arrive.
func New(loader Loader) *Store {
	return &Store{
		productos: make(map[string]model.Producto),
		isLoading: true,
		loader:    loader,
	}
}

// Initialize loads "products" and "sales" concurrently and populates the
// collections. It runs exactly once per process lifetime; later calls are
// no-ops. A failed load on one resource does not cancel the other — the
// loader already degrades to local fallback and header-only defaults.
func (s *Store) Initialize(ctx context.Context) {
	s.initOnce.Do(func() {
		s.mu.Lock()
		s.isLoading = true
		s.mu.Unlock()

		var productosCSV, ventasCSV string
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			productosCSV = s.loader.Load(ctx, "products")
		}()
		go func() {
			defer wg.Done()
			ventasCSV = s.loader.Load(ctx, "sales")
		}()
		wg.Wait()

		productos := csvcodec.DecodeProductos(productosCSV)
		ventas := csvcodec.DecodeVentas(ventasCSV)

		s.mu.Lock()
		s.productos = productos
		s.ventas = ventas
		s.isLoading = false
		s.mu.Unlock()

		log.Info().
			Int("productos", len(productos)).
			Int("ventas", len(ventas)).
			Msg("store: initial load complete")
	})
}

// AddProduct inserts or overwrites the entry at producto.Codigo.
func (s *Store) AddProduct(producto model.Producto) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productos[producto.Codigo] = producto
}

// UpdateProduct merges the patch onto the existing entry at patch.Codigo,
// preserving fields the patch leaves nil. Without a prior entry this
// inserts the partial record.
func (s *Store) UpdateProduct(patch model.ProductoPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productos[patch.Codigo] = patch.Apply(s.productos[patch.Codigo])
}

// AddSale appends to the sales log. The referenced product is not
// required to exist.
func (s *Store) AddSale(venta model.Venta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ventas = append(s.ventas, venta)
}

// DecreaseStock decrements the product's stock by cantidad. It returns
// false without mutating when the product does not exist or has less
// stock than cantidad — stock never goes negative.
func (s *Store) DecreaseStock(codigo string, cantidad int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.productos[codigo]
	if !ok || p.Stock < cantidad {
		return false
	}
	p.Stock -= cantidad
	s.productos[codigo] = p
	return true
}

// GetProduct looks up a product by barcode.
func (s *Store) GetProduct(codigo string) (model.Producto, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.productos[codigo]
	return p, ok
}

// Productos returns a copy of the catalog.
func (s *Store) Productos() map[string]model.Producto {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]model.Producto, len(s.productos))
	for k, v := range s.productos {
		out[k] = v
	}
	return out
}

// Ventas returns a copy of the sales log in insertion order.
func (s *Store) Ventas() []model.Venta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Venta(nil), s.ventas...)
}

// IsLoading reports whether the initial load is still in progress.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

// LastSaved returns the time of the last auto-save, if any yet.
func (s *Store) LastSaved() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSaved, !s.lastSaved.IsZero()
}

// MarkSaved records the auto-save timestamp.
func (s *Store) MarkSaved(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSaved = t
}

// Snapshot serializes both collections to their persisted CSV form.
// Products are sorted by codigo so that map iteration order can never
// look like a change; sales keep log order, so reordering counts as one.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	codigos := make([]string, 0, len(s.productos))
	for codigo := range s.productos {
		codigos = append(codigos, codigo)
	}
	sort.Strings(codigos)

	productoRecs := make([]map[string]string, 0, len(codigos))
	for _, codigo := range codigos {
		productoRecs = append(productoRecs, s.productos[codigo].CSVRecord())
	}

	ventaRecs := make([]map[string]string, 0, len(s.ventas))
	for _, v := range s.ventas {
		ventaRecs = append(ventaRecs, v.CSVRecord())
	}

	return Snapshot{
		Productos: csvcodec.Encode(productoRecs, model.ProductoFields),
		Ventas:    csvcodec.Encode(ventaRecs, model.VentaFields),
	}
}
