package request

// ImageCodeRequest 获取图片验证码的查询参数
// 使用位置:
//   - internal/handler/passport_handler.go: GetImageCode
type ImageCodeRequest struct {
	ImageCodeID string `form:"imageCodeId"`
}
