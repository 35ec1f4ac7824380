package handler

import (
	"net/http"

	"github.com/KikePrograma-afk/Tukiosko/internal/store"

	"github.com/gin-gonic/gin"
)

// Health returns a JSON health check response. The process holds its own
// state, so the only readiness signal is the initial load: while it runs,
// reads would serve empty collections.
func Health(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		if st.IsLoading() {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"ok":       status == http.StatusOK,
			"cargando": st.IsLoading(),
		})
	}
}
