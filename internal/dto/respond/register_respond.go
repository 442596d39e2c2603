package respond

// RegisterRespond 注册成功后写入 session 的用户信息
// 使用位置:
//   - internal/service/passport/service.go: Register
type RegisterRespond struct {
	UserID   uint   `json:"user_id"`
	Mobile   string `json:"mobile"`
	NickName string `json:"nick_name"`
}
