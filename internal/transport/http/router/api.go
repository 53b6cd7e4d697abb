package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-service/internal/core/auth"
	"blog-service/internal/core/cache"
	"blog-service/internal/core/config"
	"blog-service/internal/repo"
	"blog-service/internal/service"
	"blog-service/internal/transport/http/handler"
	mdw "blog-service/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer, store *cache.Cache, cfg *config.Config) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(4<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	userRepo := repo.NewUserRepo(db)
	postRepo := repo.NewPostRepo(db)
	categoryRepo := repo.NewCategoryRepo(db)
	tagRepo := repo.NewTagRepo(db)

	userSvc := service.NewUserService(userRepo, postRepo, l)
	categorySvc := service.NewCategoryService(categoryRepo, l)
	tagSvc := service.NewTagService(tagRepo, l)
	postSvc := service.NewPostService(postRepo, userRepo, categoryRepo, tagRepo, l)
	if store != nil {
		ttl := time.Duration(cfg.Redis.PostTTLSec) * time.Second
		if ttl <= 0 {
			ttl = 30 * time.Second
		}
		postSvc = postSvc.WithCache(store, ttl)
	}

	// 公开组 vs 认证组：注册账号和全部读接口公开，其余要求认证
	api := r.Group("/api")
	authed := api.Group("", mdw.Auth(userRepo, jwter, cfg.Auth.Realm))

	handler.NewAuthHandler(userRepo, jwter, l).Mount(api)
	handler.NewUserHandler(userSvc, l).Mount(api, authed)
	handler.NewPostHandler(postSvc, l).Mount(api, authed)
	handler.NewCategoryHandler(categorySvc, l).Mount(api, authed)
	handler.NewTagHandler(tagSvc, l).Mount(api, authed)

	return r
}
