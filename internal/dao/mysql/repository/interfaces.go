// Package repository 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
package repository

import (
	"context"

	"news_server/internal/model"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	// CreateUser 创建新用户
	CreateUser(ctx context.Context, user *model.UserInfo) error
}

// Repositories 聚合所有 Repository 实例
// Service 层通过此结构访问数据层
type Repositories struct {
	db   *gorm.DB
	User UserRepository
}

// NewRepositories 创建所有 Repository 实例
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:   db,
		User: NewUserRepository(db),
	}
}

// Transaction 在数据库事务中执行函数
// fn 返回错误时事务回滚，否则提交
func (r *Repositories) Transaction(ctx context.Context, fn func(txRepos *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// Ping 检查数据库连接
func (r *Repositories) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close 关闭底层连接池
func (r *Repositories) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
