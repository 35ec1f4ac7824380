package service

import (
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/KikePrograma-afk/Tukiosko/internal/dto"
	"github.com/KikePrograma-afk/Tukiosko/internal/model"
	"github.com/KikePrograma-afk/Tukiosko/internal/store"
)

var (
	ErrProductoNoEncontrado = errors.New("Producto no encontrado")
	ErrProductoYaExiste     = errors.New("Ya existe un producto con ese código de barras")
)

// ProductoService covers registration, updates and the filtered catalog
// views. All operations are synchronous against the in-memory store;
// persistence happens on the auto-save cycle.
type ProductoService interface {
	Registrar(req dto.RegistrarProductoRequest) (*dto.ProductoResponse, error)
	Actualizar(codigo string, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorCodigo(codigo string) (*dto.ProductoResponse, error)
	Listar(filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
}

type productoService struct {
	store *store.Store
}

func NewProductoService(st *store.Store) ProductoService {
	return &productoService{store: st}
}

// Registrar creates a new product. Re-registering an existing codigo is
// rejected — updates go through Actualizar.
func (s *productoService) Registrar(req dto.RegistrarProductoRequest) (*dto.ProductoResponse, error) {
	if _, ok := s.store.GetProduct(req.Codigo); ok {
		return nil, ErrProductoYaExiste
	}
	p := model.Producto{
		Codigo:      req.Codigo,
		Nombre:      req.Nombre,
		Stock:       req.Stock,
		Precio:      req.Precio,
		Categoria:   req.Categoria,
		Imagen:      req.Imagen,
		StockMinimo: req.StockMinimo,
	}
	s.store.AddProduct(p)
	return productoToResponse(p), nil
}

// Actualizar merges the given fields onto the existing product. Fields
// absent from the request keep their prior value.
func (s *productoService) Actualizar(codigo string, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	if _, ok := s.store.GetProduct(codigo); !ok {
		return nil, ErrProductoNoEncontrado
	}
	s.store.UpdateProduct(model.ProductoPatch{
		Codigo:      codigo,
		Nombre:      req.Nombre,
		Stock:       req.Stock,
		Precio:      req.Precio,
		Categoria:   req.Categoria,
		Imagen:      req.Imagen,
		StockMinimo: req.StockMinimo,
	})
	p, _ := s.store.GetProduct(codigo)
	return productoToResponse(p), nil
}

func (s *productoService) ObtenerPorCodigo(codigo string) (*dto.ProductoResponse, error) {
	p, ok := s.store.GetProduct(codigo)
	if !ok {
		return nil, ErrProductoNoEncontrado
	}
	return productoToResponse(p), nil
}

// Listar applies the inventory facets (categoria, stock level band, price
// range, free-text search) and the requested sort order.
func (s *productoService) Listar(filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	productos := s.store.Productos()

	categoriaSet := make(map[string]struct{})
	matched := make([]model.Producto, 0, len(productos))
	for _, p := range productos {
		categoriaSet[p.Categoria] = struct{}{}
		if matchesFilter(p, filter) {
			matched = append(matched, p)
		}
	}
	sortProductos(matched, filter.OrdenarPor, filter.Orden)

	categorias := make([]string, 0, len(categoriaSet))
	for c := range categoriaSet {
		if c != "" {
			categorias = append(categorias, c)
		}
	}
	sort.Strings(categorias)

	data := make([]dto.ProductoResponse, 0, len(matched))
	for _, p := range matched {
		data = append(data, *productoToResponse(p))
	}
	return &dto.ProductoListResponse{Data: data, Total: len(data), Categorias: categorias}, nil
}

func matchesFilter(p model.Producto, f dto.ProductoFilter) bool {
	if f.Categoria != "" && p.Categoria != f.Categoria {
		return false
	}
	if f.NivelStock != "" {
		pct := p.PorcentajeStock()
		switch f.NivelStock {
		case "bajo":
			if pct >= 25 {
				return false
			}
		case "medio":
			if pct < 25 || pct >= 50 {
				return false
			}
		case "alto":
			if pct < 50 {
				return false
			}
		}
	}
	if f.PrecioMin != "" {
		if min, err := decimal.NewFromString(f.PrecioMin); err == nil && p.Precio.LessThan(min) {
			return false
		}
	}
	if f.PrecioMax != "" {
		if max, err := decimal.NewFromString(f.PrecioMax); err == nil && p.Precio.GreaterThan(max) {
			return false
		}
	}
	if f.Busqueda != "" {
		b := strings.ToLower(f.Busqueda)
		if !strings.Contains(strings.ToLower(p.Nombre), b) && !strings.Contains(p.Codigo, f.Busqueda) {
			return false
		}
	}
	return true
}

func sortProductos(productos []model.Producto, campo, orden string) {
	desc := orden == "desc"
	less := func(a, b model.Producto) bool {
		switch campo {
		case "stock":
			if a.Stock != b.Stock {
				return a.Stock < b.Stock
			}
		case "precio":
			if !a.Precio.Equal(b.Precio) {
				return a.Precio.LessThan(b.Precio)
			}
		default:
			if a.Nombre != b.Nombre {
				return a.Nombre < b.Nombre
			}
		}
		return a.Codigo < b.Codigo
	}
	sort.SliceStable(productos, func(i, j int) bool {
		if desc {
			return less(productos[j], productos[i])
		}
		return less(productos[i], productos[j])
	})
}

func productoToResponse(p model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		Codigo:          p.Codigo,
		Nombre:          p.Nombre,
		Stock:           p.Stock,
		Precio:          p.Precio,
		Categoria:       p.Categoria,
		Imagen:          p.Imagen,
		StockMinimo:     p.StockMinimo,
		StockBajo:       p.StockBajo(),
		PorcentajeStock: p.PorcentajeStock(),
	}
}
