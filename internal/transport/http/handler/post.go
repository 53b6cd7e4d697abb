package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-service/internal/domain"
	"blog-service/internal/service"
	resp "blog-service/internal/transport/http/response"
)

type PostHandler struct {
	svc *service.PostService
	log *zap.Logger
}

func NewPostHandler(svc *service.PostService, log *zap.Logger) *PostHandler {
	return &PostHandler{svc: svc, log: log}
}

// Mount 读公开、写认证
func (h *PostHandler) Mount(public, authed *gin.RouterGroup) {
	public.GET("/posts", h.list)
	public.GET("/posts/:id", h.getByID)
	public.GET("/posts/author/:authorId", h.listByAuthor)
	public.GET("/posts/status/:status", h.listByStatus)
	public.GET("/posts/category/:categoryId", h.listByCategory)
	public.GET("/posts/tag/:tagId", h.listByTag)
	authed.POST("/posts", h.create)
	authed.PUT("/posts/:id", h.update)
	authed.POST("/posts/:id/publish", h.publish)
	authed.DELETE("/posts/:id", h.delete)
}

func (h *PostHandler) create(c *gin.Context) {
	var in service.CreatePostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindErr(c, err)
		return
	}
	out, err := h.svc.CreatePost(c.Request.Context(), in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *PostHandler) getByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := h.svc.GetPostByID(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *PostHandler) list(c *gin.Context) {
	out, err := h.svc.GetAllPosts(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *PostHandler) listByAuthor(c *gin.Context) {
	authorID, ok := idParam(c, "authorId")
	if !ok {
		return
	}
	out, err := h.svc.GetPostsByAuthor(c.Request.Context(), authorID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *PostHandler) listByStatus(c *gin.Context) {
	status := domain.PostStatus(c.Param("status"))
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, "invalid status"))
		return
	}
	out, err := h.svc.GetPostsByStatus(c.Request.Context(), status)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *PostHandler) listByCategory(c *gin.Context) {
	categoryID, ok := idParam(c, "categoryId")
	if !ok {
		return
	}
	out, err := h.svc.GetPostsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *PostHandler) listByTag(c *gin.Context) {
	tagID, ok := idParam(c, "tagId")
	if !ok {
		return
	}
	out, err := h.svc.GetPostsByTag(c.Request.Context(), tagID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *PostHandler) update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in service.UpdatePostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		bindErr(c, err)
		return
	}
	out, err := h.svc.UpdatePost(c.Request.Context(), id, in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *PostHandler) publish(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := h.svc.PublishPost(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *PostHandler) delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeletePost(c.Request.Context(), id); err != nil {
		fail(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
