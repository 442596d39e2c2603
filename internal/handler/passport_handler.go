// Package handler 提供 HTTP 请求处理器
// 本文件处理注册流程相关的 API 请求
package handler

import (
	"net/http"

	"news_server/internal/dto/request"
	"news_server/internal/infrastructure/captcha"
	"news_server/internal/service"
	"news_server/pkg/constants"
	"news_server/pkg/errorx"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PassportHandler 注册流程请求处理器
type PassportHandler struct {
	passportSvc service.PassportService
}

// NewPassportHandler 创建注册流程处理器实例
func NewPassportHandler(passportSvc service.PassportService) *PassportHandler {
	return &PassportHandler{passportSvc: passportSvc}
}

// GetImageCode 获取图片验证码
// GET /image_code?imageCodeId=xxx
// 响应: image/jpg 图片字节，失败时直接返回 HTTP 状态码
func (h *PassportHandler) GetImageCode(c *gin.Context) {
	var req request.ImageCodeRequest
	if err := c.ShouldBindQuery(&req); err != nil || req.ImageCodeID == "" {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	img, err := h.passportSvc.GetImageCode(c.Request.Context(), req.ImageCodeID)
	if err != nil {
		zap.L().Error("get image code failed",
			zap.String("image_code_id", req.ImageCodeID),
			zap.Error(err),
		)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, captcha.ContentType, img)
}

// SendSmsCode 发送短信验证码
// POST /sms_code
// 请求体: request.SmsCodeRequest
func (h *PassportHandler) SendSmsCode(c *gin.Context) {
	var req request.SmsCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	if err := h.passportSvc.SendSmsCode(c.Request.Context(), req); err != nil {
		HandleError(c, err)
		return
	}

	HandleSuccess(c, "发送成功")
}

// Register 用户注册，成功后写入 session 保持登录状态
// POST /register
// 请求体: request.RegisterRequest
func (h *PassportHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	data, err := h.passportSvc.Register(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.SESSION_USER_ID, data.UserID)
	session.Set(constants.SESSION_MOBILE, data.Mobile)
	session.Set(constants.SESSION_NICK_NAME, data.NickName)
	if err := session.Save(); err != nil {
		HandleError(c, errorx.Wrap(err, errorx.CodeServerError, "保存登录状态失败"))
		return
	}

	HandleSuccess(c, "注册成功")
}
