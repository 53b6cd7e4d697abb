package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-service/internal/service"
)

type CategoryHandler struct {
	svc *service.CategoryService
	log *zap.Logger
}

func NewCategoryHandler(svc *service.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: log}
}

// Mount 读公开、写认证
func (h *CategoryHandler) Mount(public, authed *gin.RouterGroup) {
	public.GET("/categories", h.list)
	public.GET("/categories/:id", h.getByID)
	public.GET("/categories/name/:name", h.getByName)
	authed.POST("/categories", h.create)
	authed.PUT("/categories/:id", h.update)
	authed.DELETE("/categories/:id", h.delete)
}

func (h *CategoryHandler) create(c *gin.Context) {
	var in service.CreateCategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindErr(c, err)
		return
	}
	out, err := h.svc.CreateCategory(c.Request.Context(), in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *CategoryHandler) getByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := h.svc.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CategoryHandler) getByName(c *gin.Context) {
	out, err := h.svc.GetCategoryByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CategoryHandler) list(c *gin.Context) {
	out, err := h.svc.GetAllCategories(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CategoryHandler) update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in service.UpdateCategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindErr(c, err)
		return
	}
	out, err := h.svc.UpdateCategory(c.Request.Context(), id, in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CategoryHandler) delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteCategory(c.Request.Context(), id); err != nil {
		fail(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
