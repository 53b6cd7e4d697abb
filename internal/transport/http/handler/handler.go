package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-service/internal/service"
	resp "blog-service/internal/transport/http/response"
)

// idParam 解析路径里的数字 ID；非法直接回 400
func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, "invalid "+name))
		return 0, false
	}
	return uint(v), true
}

func bindErr(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, err.Error()))
}

// fail 业务错误按错误码回写；意外错误统一 500 并只回笼统消息
func fail(c *gin.Context, l *zap.Logger, err error) {
	code := service.CodeOf(err)
	if code == resp.CodeServerError {
		l.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, resp.Error(resp.CodeServerError, ""))
		return
	}
	c.JSON(code, resp.Error(code, err.Error()))
}
