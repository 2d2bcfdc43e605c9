package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
)

func (h *Handler) list(c *gin.Context) {
	var items []domain.Project
	if tech, ok := c.GetQuery("tech"); ok {
		items = h.store.FindByTech(tech)
	} else {
		items = h.store.List()
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items, "count": len(items)})
}

func (h *Handler) get(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	p, err := h.store.FindByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) create(c *gin.Context) {
	var req domain.ProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p := h.store.Add(req)
	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) createMany(c *gin.Context) {
	var req []domain.ProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "body must be a list of projects"})
		return
	}

	added := h.store.AddMany(req)
	c.JSON(http.StatusCreated, gin.H{"ok": true, "projects": added})
}

func (h *Handler) update(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var patch domain.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if patch.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "no fields to update"})
		return
	}

	p, err := h.store.Update(id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	p, err := h.store.Remove(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) clear(c *gin.Context) {
	h.store.Clear()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) stats(c *gin.Context) {
	c.JSON(http.StatusOK, statsResponse{
		OK:        true,
		Count:     h.store.Count(),
		HasAny:    h.store.HasAny(),
		Completed: h.store.CompletedCount(),
	})
}

func (h *Handler) grouped(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "groups": h.store.GroupedByTech()})
}

func (h *Handler) export(c *gin.Context) {
	text, err := h.store.Export()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="projects.json"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(text))
}

func (h *Handler) importProjects(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "failed to read body"})
		return
	}

	if err := h.store.Import(string(body)); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "count": h.store.Count()})
}

func projectID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "project id must be a positive integer"})
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(c *gin.Context, err error) {
	rid := middleware.GetRequestID(c.Request.Context())
	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
	case errors.Is(err, domain.ErrInvalidImport):
		h.logger.Info("rejected project import", zap.String("request_id", rid), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	default:
		h.logger.Error("request failed", zap.String("request_id", rid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
	}
}
