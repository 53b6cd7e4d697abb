package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-service/internal/service"
)

type UserHandler struct {
	svc *service.UserService
	log *zap.Logger
}

func NewUserHandler(svc *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

// Mount 注册仅为公开的一条（注册账号），其余全部要求认证
func (h *UserHandler) Mount(public, authed *gin.RouterGroup) {
	public.POST("/users", h.create)
	authed.GET("/users", h.list)
	authed.GET("/users/:id", h.getByID)
	authed.GET("/users/username/:username", h.getByUsername)
	authed.PUT("/users/:id", h.update)
	authed.DELETE("/users/:id", h.delete)
}

func (h *UserHandler) create(c *gin.Context) {
	var in service.CreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindErr(c, err)
		return
	}
	out, err := h.svc.CreateUser(c.Request.Context(), in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *UserHandler) getByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := h.svc.GetUserByID(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) getByUsername(c *gin.Context) {
	out, err := h.svc.GetUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) list(c *gin.Context) {
	out, err := h.svc.GetAllUsers(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in service.UpdateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindErr(c, err)
		return
	}
	out, err := h.svc.UpdateUser(c.Request.Context(), id, in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteUser(c.Request.Context(), id); err != nil {
		fail(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
