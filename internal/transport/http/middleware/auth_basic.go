package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-service/internal/core/auth"
	"blog-service/internal/domain"
	resp "blog-service/internal/transport/http/response"
	"blog-service/pkg/utils"
)

const (
	KeyUserID   = "userId"
	KeyUsername = "username"
)

// Auth 无状态逐请求认证：Basic 凭据对照用户表校验，
// Bearer 接受 /api/auth/token 签发的 JWT
func Auth(users domain.UserRepository, jwter *auth.JWTer, realm string) gin.HandlerFunc {
	if realm == "" {
		realm = "blog"
	}
	challenge := `Basic realm="` + realm + `"`

	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")

		if strings.HasPrefix(h, "Bearer ") {
			claims, err := jwter.Parse(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				unauthorized(c, challenge, "invalid token")
				return
			}
			c.Set(KeyUserID, claims.UID)
			c.Set(KeyUsername, claims.Username)
			c.Next()
			return
		}

		username, password, ok := c.Request.BasicAuth()
		if !ok {
			unauthorized(c, challenge, "authentication required")
			return
		}
		u, err := users.FindByUsername(c.Request.Context(), username)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				resp.Error(resp.CodeServerError, "authentication lookup failed"))
			return
		}
		if u == nil || !u.Enabled || !utils.CheckPassword(password, u.PasswordHash) {
			unauthorized(c, challenge, "invalid credentials")
			return
		}
		c.Set(KeyUserID, u.ID)
		c.Set(KeyUsername, u.Username)
		c.Next()
	}
}

func unauthorized(c *gin.Context, challenge, msg string) {
	c.Header("WWW-Authenticate", challenge)
	c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, msg))
}
