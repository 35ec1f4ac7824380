package handler

import (
	"net/http"

	"github.com/KikePrograma-afk/Tukiosko/internal/dto"
	"github.com/KikePrograma-afk/Tukiosko/internal/service"

	"github.com/gin-gonic/gin"
)

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler {
	return &VentasHandler{svc: svc}
}

// Registrar closes a cart. The response always carries per-item results;
// 200 when every item sold, 409 when any item was rejected so the till
// can surface the conflicts.
func (h *VentasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp := h.svc.Registrar(req)
	status := http.StatusOK
	if !resp.Completa {
		status = http.StatusConflict
	}
	c.JSON(status, resp)
}

func (h *VentasHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Listar())
}
