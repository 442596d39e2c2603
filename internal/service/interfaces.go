// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
package service

import (
	"context"

	"news_server/internal/dto/request"
	"news_server/internal/dto/respond"
)

// PassportService 注册与手机验证业务接口
type PassportService interface {
	// GetImageCode 生成图片验证码，文字以 imageCodeID 为键暂存，返回图片字节
	GetImageCode(ctx context.Context, imageCodeID string) ([]byte, error)
	// SendSmsCode 校验图片验证码后发送短信验证码
	SendSmsCode(ctx context.Context, req request.SmsCodeRequest) error
	// Register 校验短信验证码后创建用户
	Register(ctx context.Context, req request.RegisterRequest) (*respond.RegisterRespond, error)
}
