package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterPassportRoutes 注册流程路由（无需登录）
func (rt *Router) RegisterPassportRoutes(r *gin.Engine) {
	r.GET("/image_code", rt.handlers.Passport.GetImageCode) // 图片验证码
	r.POST("/sms_code", rt.handlers.Passport.SendSmsCode)   // 短信验证码
	r.POST("/register", rt.handlers.Passport.Register)      // 用户注册
}

// RegisterHealthRoutes 注册探活路由
func (rt *Router) RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", rt.handlers.Health.Check)
}
