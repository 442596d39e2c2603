package request

// RegisterRequest 用户注册请求
// 使用位置:
//   - internal/handler/passport_handler.go: Register
type RegisterRequest struct {
	Mobile   string `json:"mobile" binding:"required,mobile"`
	SmsCode  string `json:"smscode" binding:"required"`
	Password string `json:"password" binding:"required"`
}
