// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"news_server/internal/config"
	"news_server/internal/dao/mysql/repository"
	myredis "news_server/internal/dao/redis"
	"news_server/internal/infrastructure/captcha"
	"news_server/internal/infrastructure/sms"
	"news_server/internal/service/passport"
)

// Deps Service 层依赖的外部协作者
type Deps struct {
	Repos   *repository.Repositories
	Cache   myredis.CacheService
	Sms     sms.SmsService
	Captcha captcha.Generator
	Config  config.PassportConfig
}

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过此结构访问各个 Service
type Services struct {
	Passport PassportService
}

// NewServices 创建并注入所有 Service 实例
func NewServices(deps Deps) *Services {
	return &Services{
		Passport: passport.NewPassportService(deps.Repos, deps.Cache, deps.Sms, deps.Captcha, deps.Config),
	}
}
