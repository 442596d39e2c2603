// Package mysql 负责建立 MySQL 连接、自动迁移表结构、初始化 Repository 层
package mysql

import (
	"fmt"

	"news_server/internal/config"
	"news_server/internal/dao/mysql/repository"
	"news_server/internal/model"

	mysqldriver "gorm.io/driver/mysql" // GORM MySQL 驱动
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Init 初始化数据库连接并返回 Repository 层实例
// 执行步骤：
//  1. 根据配置构建 DSN
//  2. 使用 GORM 建立数据库连接
//  3. 执行 AutoMigrate 自动迁移表结构
//  4. 创建并返回 Repository 实例
func Init(conf *config.MysqlConfig) (*repository.Repositories, error) {
	// 格式：user:password@tcp(host:port)/database?params
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.User,
		conf.Password,
		conf.Host,
		conf.Port,
		conf.DatabaseName,
	)

	db, err := gorm.Open(mysqldriver.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	return Setup(db)
}

// Setup 迁移表结构并创建 Repository 实例
// 测试中可传入其他方言的 *gorm.DB
func Setup(db *gorm.DB) (*repository.Repositories, error) {
	// 如果表不存在则创建，不会删除已有字段或数据
	if err := db.AutoMigrate(&model.UserInfo{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return repository.NewRepositories(db), nil
}
