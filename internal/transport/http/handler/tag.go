package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-service/internal/service"
)

type TagHandler struct {
	svc *service.TagService
	log *zap.Logger
}

func NewTagHandler(svc *service.TagService, log *zap.Logger) *TagHandler {
	return &TagHandler{svc: svc, log: log}
}

// Mount 读公开、写认证
func (h *TagHandler) Mount(public, authed *gin.RouterGroup) {
	public.GET("/tags", h.list)
	public.GET("/tags/:id", h.getByID)
	public.GET("/tags/name/:name", h.getByName)
	authed.POST("/tags", h.create)
	authed.PUT("/tags/:id", h.update)
	authed.DELETE("/tags/:id", h.delete)
}

func (h *TagHandler) create(c *gin.Context) {
	var in service.CreateTagInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindErr(c, err)
		return
	}
	out, err := h.svc.CreateTag(c.Request.Context(), in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *TagHandler) getByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := h.svc.GetTagByID(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *TagHandler) getByName(c *gin.Context) {
	out, err := h.svc.GetTagByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *TagHandler) list(c *gin.Context) {
	out, err := h.svc.GetAllTags(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *TagHandler) update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in service.UpdateTagInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindErr(c, err)
		return
	}
	out, err := h.svc.UpdateTag(c.Request.Context(), id, in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *TagHandler) delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteTag(c.Request.Context(), id); err != nil {
		fail(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
