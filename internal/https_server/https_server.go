// Package https_server 提供 HTTP/HTTPS 服务器的初始化和配置
// 负责创建 Gin 引擎实例并配置中间件和路由
package https_server

import (
	"errors"
	"net/http"

	"news_server/internal/config"
	"news_server/internal/handler"
	"news_server/internal/infrastructure/logger"
	"news_server/internal/infrastructure/middleware"
	"news_server/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// ErrEmptySessionSecret 未配置 sessionConfig.secret，cookie 无法签名
var ErrEmptySessionSecret = errors.New("sessionConfig.secret must not be empty")

// Init 创建 Gin 引擎并注册中间件与业务路由
// 中间件顺序：请求 ID -> 日志 -> panic 恢复 -> CORS -> TLS 重定向（可选）-> Session
func Init(handlers *handler.Handlers, conf *config.Config) (*gin.Engine, error) {
	if conf.SessionConfig.Secret == "" {
		return nil, ErrEmptySessionSecret
	}

	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", logger.RequestIDKey}
	engine.Use(cors.New(corsConfig))

	// 由 Nginx 终止 SSL 时保持关闭
	if conf.TLSRedirect {
		engine.Use(middleware.TlsHandler(conf.MainConfig.Host, conf.MainConfig.Port))
	}

	store := cookie.NewStore([]byte(conf.SessionConfig.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   conf.SessionConfig.MaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	engine.Use(sessions.Sessions(conf.SessionConfig.Name, store))

	rt := router.NewRouter(handlers)
	rt.RegisterRoutes(engine)

	return engine, nil
}
