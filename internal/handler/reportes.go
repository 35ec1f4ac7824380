package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/KikePrograma-afk/Tukiosko/internal/dto"
	"github.com/KikePrograma-afk/Tukiosko/internal/service"
	"github.com/KikePrograma-afk/Tukiosko/internal/store"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct {
	svc   service.ReporteService
	store *store.Store
}

func NewReportesHandler(svc service.ReporteService, st *store.Store) *ReportesHandler {
	return &ReportesHandler{svc: svc, store: st}
}

func (h *ReportesHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Dashboard(time.Now().UTC()))
}

// Estado feeds the save-status widget: whether the initial load is still
// running and when the auto-saver last persisted anything.
func (h *ReportesHandler) Estado(c *gin.Context) {
	resp := dto.EstadoResponse{Cargando: h.store.IsLoading()}
	if at, ok := h.store.LastSaved(); ok {
		formatted := at.Format(time.RFC3339)
		resp.UltimoGuardado = &formatted
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) InventarioCSV(c *gin.Context) {
	writeCSVAttachment(c, "inventario", h.svc.InventarioCSV())
}

func (h *ReportesHandler) VentasCSV(c *gin.Context) {
	writeCSVAttachment(c, "ventas", h.svc.VentasCSV())
}

func writeCSVAttachment(c *gin.Context, nombre, contenido string) {
	filename := fmt.Sprintf("%s_%s.csv", nombre, time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(contenido))
}
