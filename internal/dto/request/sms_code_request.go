package request

// SmsCodeRequest 发送短信验证码请求
// 使用位置:
//   - internal/handler/passport_handler.go: SendSmsCode
type SmsCodeRequest struct {
	Mobile      string `json:"mobile" binding:"required,mobile"`
	ImageCode   string `json:"image_code" binding:"required"`
	ImageCodeID string `json:"image_code_id" binding:"required"`
}
