// Package redis 定义缓存服务接口
// Service 层依赖此接口而非具体 Redis 实现
package redis

import (
	"context"
	"time"
)

// CacheService 缓存服务接口
// 用于暂存图片验证码和短信验证码，过期时间由 ttl 控制
type CacheService interface {
	// Set 设置键值对并指定过期时间
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Get 获取键对应的值（键不存在返回空字符串和 nil）
	Get(ctx context.Context, key string) (string, error)
	// Ping 检查缓存是否可用
	Ping(ctx context.Context) error
}

var _ CacheService = (*RedisCache)(nil)
