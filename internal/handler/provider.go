// Package handler 提供 HTTP 请求处理器
// 本文件定义 Handler 聚合结构和构造函数
package handler

import (
	"news_server/internal/service"
)

// Handlers 聚合所有 Handler 实例
// Router 层通过此结构访问各个 Handler
type Handlers struct {
	Passport *PassportHandler
	Health   *HealthHandler
}

// HealthDeps 参与探活的依赖
type HealthDeps struct {
	Mysql Pinger
	Redis Pinger
}

// NewHandlers 创建并注入所有 Handler 实例
func NewHandlers(svc *service.Services, deps HealthDeps) *Handlers {
	return &Handlers{
		Passport: NewPassportHandler(svc.Passport),
		Health: NewHealthHandler(
			[]string{"mysql", "redis"},
			map[string]Pinger{"mysql": deps.Mysql, "redis": deps.Redis},
		),
	}
}
