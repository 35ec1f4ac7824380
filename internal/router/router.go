package router

import (
	"time"

	"github.com/KikePrograma-afk/Tukiosko/internal/config"
	"github.com/KikePrograma-afk/Tukiosko/internal/handler"
	"github.com/KikePrograma-afk/Tukiosko/internal/middleware"
	"github.com/KikePrograma-afk/Tukiosko/internal/service"
	"github.com/KikePrograma-afk/Tukiosko/internal/store"

	"github.com/gin-gonic/gin"
)

// New wires the HTTP surface over the shared store and returns a
// configured Gin engine. Dependency graph: Handler ← Service ← Store.
func New(cfg *config.Config, st *store.Store) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Services ─────────────────────────────────────────────────────────────
	productoSvc := service.NewProductoService(st)
	ventaSvc := service.NewVentaService(st)
	reporteSvc := service.NewReporteService(st)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productosH := handler.NewProductosHandler(productoSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	reportesH := handler.NewReportesHandler(reporteSvc, st)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(st))

	v1 := r.Group("/v1")
	{
		v1.GET("/productos", productosH.Listar)
		v1.POST("/productos", productosH.Registrar)
		v1.GET("/productos/:codigo", productosH.ObtenerPorCodigo)
		v1.PUT("/productos/:codigo", productosH.Actualizar)

		v1.POST("/ventas", ventasH.Registrar)
		v1.GET("/ventas", ventasH.Listar)

		v1.GET("/dashboard", reportesH.Dashboard)
		v1.GET("/estado", reportesH.Estado)

		reportes := v1.Group("/reportes")
		{
			reportes.GET("/inventario.csv", reportesH.InventarioCSV)
			reportes.GET("/ventas.csv", reportesH.VentasCSV)
		}
	}

	return r
}
