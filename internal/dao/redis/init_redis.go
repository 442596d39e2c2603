// Package redis 提供缓存服务的 Redis 实现
// 本文件仅包含 Redis 连接初始化逻辑
// 使用 github.com/redis/go-redis/v9 作为底层客户端
package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"news_server/internal/config"

	"github.com/redis/go-redis/v9"
)

// Init 初始化 Redis 连接并返回缓存服务
// 启动时 Ping 一次，连接失败直接返回错误
func Init(conf *config.RedisConfig) (*RedisCache, error) {
	addr := conf.Host + ":" + strconv.Itoa(conf.Port)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.Password,
		DB:       conf.Db,
		// 连接池配置
		PoolSize:     50,
		MinIdleConns: 10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}

	return NewRedisCache(client), nil
}
