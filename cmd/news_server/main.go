package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"news_server/internal/config"
	dao "news_server/internal/dao/mysql"
	myredis "news_server/internal/dao/redis"
	"news_server/internal/handler"
	"news_server/internal/https_server"
	"news_server/internal/infrastructure/captcha"
	"news_server/internal/infrastructure/logger"
	"news_server/internal/infrastructure/sms"
	"news_server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, conf.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer zap.L().Sync()
	if conf.Mode == "dev" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(conf.Mode)
	}
	zap.L().Info("日志初始化成功", zap.String("mode", conf.Mode))

	// 3. 参数校验翻译器
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("init validator translator failed", zap.Error(err))
	}

	// 4. 初始化数据库
	repos, err := dao.Init(&conf.MysqlConfig)
	if err != nil {
		zap.L().Fatal("数据库初始化失败", zap.Error(err))
	}
	defer repos.Close()
	zap.L().Info("数据库初始化成功")

	// 5. 初始化 Redis
	cache, err := myredis.Init(&conf.RedisConfig)
	if err != nil {
		zap.L().Fatal("Redis 初始化失败", zap.Error(err))
	}
	defer cache.Close()
	zap.L().Info("Redis 初始化成功")

	// 6. 初始化 SMS Service
	smsSvc, err := sms.Init(conf.AuthCodeConfig)
	if err != nil {
		zap.L().Fatal("SMS Service 初始化失败", zap.Error(err))
	}
	zap.L().Info("SMS Service 初始化成功")

	// 7. 初始化 Service 层与 Handler 层（依赖注入）
	svc := service.NewServices(service.Deps{
		Repos:   repos,
		Cache:   cache,
		Sms:     smsSvc,
		Captcha: captcha.New(conf.CaptchaConfig),
		Config:  conf.PassportConfig,
	})
	handlers := handler.NewHandlers(svc, handler.HealthDeps{Mysql: repos, Redis: cache})

	// 8. 启动 HTTP 服务
	engine, err := https_server.Init(handlers, conf)
	if err != nil {
		zap.L().Fatal("HTTP 服务初始化失败", zap.Error(err))
	}
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler: engine,
	}
	go func() {
		zap.L().Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	// 设置信号监听
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("server shutdown", zap.Error(err))
	}
	zap.L().Info("服务器已关闭")
}
