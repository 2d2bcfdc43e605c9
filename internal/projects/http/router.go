package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group. The write
// middlewares wrap every mutating route.
func (h *Handler) Register(rg *gin.RouterGroup, write ...gin.HandlerFunc) {
	rg.GET("", h.list)
	rg.GET("/stats", h.stats)
	rg.GET("/grouped", h.grouped)
	rg.GET("/export", h.export)
	rg.GET("/:id", h.get)

	w := rg.Group("", write...)
	w.POST("", h.create)
	w.POST("/batch", h.createMany)
	w.POST("/import", h.importProjects)
	w.PATCH("/:id", h.update)
	w.DELETE("/:id", h.delete)
	w.DELETE("", h.clear)
}
