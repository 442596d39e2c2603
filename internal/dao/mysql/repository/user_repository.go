package repository

import (
	"context"

	"news_server/internal/model"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户 Repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser 创建用户
func (r *userRepository) CreateUser(ctx context.Context, user *model.UserInfo) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return wrapDBError(err, "创建用户")
	}
	return nil
}
