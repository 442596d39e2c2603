// Package sms 提供短信服务
// 本文件定义短信服务接口，Service 层依赖此接口而非具体实现
package sms

import "context"

// SmsService 短信服务接口
// 抽象短信发送操作，支持阿里云与本地 mock 两种实现
type SmsService interface {
	// SendVerificationCode 以模板短信发送验证码
	// code: 验证码内容
	// expireMinutes: 模板中展示的有效期（分钟）
	// 返回: 发送失败（含第三方返回非成功状态）时返回 THIRDERR 错误
	SendVerificationCode(ctx context.Context, telephone string, code string, expireMinutes int) error
}

// 确保实现了 SmsService 接口
var (
	_ SmsService = (*aliyunSmsService)(nil)
	_ SmsService = (*localSmsService)(nil)
)
