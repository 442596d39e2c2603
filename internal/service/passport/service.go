// Package passport 实现注册流程：图片验证码、短信验证码、用户注册
package passport

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"news_server/internal/config"
	"news_server/internal/dao/mysql/repository"
	myredis "news_server/internal/dao/redis"
	"news_server/internal/dto/request"
	"news_server/internal/dto/respond"
	"news_server/internal/infrastructure/captcha"
	"news_server/internal/infrastructure/sms"
	"news_server/internal/model"
	"news_server/pkg/constants"
	"news_server/pkg/errorx"
	"news_server/pkg/util/random"
	"news_server/pkg/util/validate"
)

// Service 注册流程业务实现
type Service struct {
	repos        *repository.Repositories
	cache        myredis.CacheService
	sms          sms.SmsService
	captcha      captcha.Generator
	imageCodeTTL time.Duration
	smsCodeTTL   time.Duration
	now          func() time.Time
	newSmsCode   func() (string, error)
}

// NewPassportService 构造函数，注入所有协作者
func NewPassportService(repos *repository.Repositories, cache myredis.CacheService, smsSvc sms.SmsService, gen captcha.Generator, cfg config.PassportConfig) *Service {
	imageExpires := cfg.ImageCodeExpires
	if imageExpires <= 0 {
		imageExpires = constants.IMAGE_CODE_REDIS_EXPIRES
	}
	smsExpires := cfg.SmsCodeExpires
	if smsExpires <= 0 {
		smsExpires = constants.SMS_CODE_REDIS_EXPIRES
	}
	return &Service{
		repos:        repos,
		cache:        cache,
		sms:          smsSvc,
		captcha:      gen,
		imageCodeTTL: time.Duration(imageExpires) * time.Second,
		smsCodeTTL:   time.Duration(smsExpires) * time.Second,
		now:          time.Now,
		newSmsCode: func() (string, error) {
			return random.GetZeroPaddedCode(constants.SMS_CODE_LENGTH)
		},
	}
}

// ImageCodeKey 图片验证码在缓存中的键
func ImageCodeKey(imageCodeID string) string {
	return constants.IMAGE_CODE_KEY_PREFIX + imageCodeID
}

// SmsCodeKey 短信验证码在缓存中的键
func SmsCodeKey(mobile string) string {
	return constants.SMS_CODE_KEY_PREFIX + mobile
}

// ExpireMinutes 短信中提示的有效分钟数，不足一分钟按一分钟计
func ExpireMinutes(ttl time.Duration) int {
	return int((ttl + time.Minute - 1) / time.Minute)
}

// GetImageCode 生成图片验证码并暂存文字内容
// 同一个 imageCodeID 重复请求会覆盖之前的内容
func (s *Service) GetImageCode(ctx context.Context, imageCodeID string) ([]byte, error) {
	if imageCodeID == "" {
		return nil, errorx.New(errorx.CodeParamErr, "参数错误")
	}

	_, text, image, err := s.captcha.Generate()
	if err != nil {
		zap.L().Error("生成图片验证码失败", zap.Error(err))
		return nil, errorx.Wrap(err, errorx.CodeServerError, "生成图片验证码失败")
	}

	if err := s.cache.Set(ctx, ImageCodeKey(imageCodeID), text, s.imageCodeTTL); err != nil {
		zap.L().Error("保存图片验证码失败", zap.Error(err), zap.String("image_code_id", imageCodeID))
		return nil, errorx.Wrap(err, errorx.CodeDBError, "保存图片验证码失败")
	}
	return image, nil
}

// SendSmsCode 发送短信验证码
//  1. 校验参数与手机号格式
//  2. 取出暂存的图片验证码并忽略大小写比较
//  3. 生成 6 位验证码并通过短信网关发送
//  4. 发送成功后暂存短信验证码
func (s *Service) SendSmsCode(ctx context.Context, req request.SmsCodeRequest) error {
	if req.Mobile == "" || req.ImageCode == "" || req.ImageCodeID == "" {
		return errorx.New(errorx.CodeParamErr, "参数错误")
	}
	if !validate.IsMobile(req.Mobile) {
		return errorx.New(errorx.CodeParamErr, "手机号格式不正确")
	}

	realImageCode, err := s.cache.Get(ctx, ImageCodeKey(req.ImageCodeID))
	if err != nil {
		zap.L().Error("查询图片验证码失败", zap.Error(err))
		return errorx.Wrap(err, errorx.CodeDBError, "数据查询失败")
	}
	if realImageCode == "" {
		return errorx.New(errorx.CodeNoData, "图片验证码已过期")
	}
	if !strings.EqualFold(realImageCode, req.ImageCode) {
		return errorx.New(errorx.CodeDataError, "验证码输入错误")
	}

	smsCode, err := s.newSmsCode()
	if err != nil {
		zap.L().Error("生成短信验证码失败", zap.Error(err))
		return errorx.Wrap(err, errorx.CodeServerError, "生成短信验证码失败")
	}
	zap.L().Debug("短信验证码内容", zap.String("mobile", req.Mobile), zap.String("sms_code", smsCode))

	if err := s.sms.SendVerificationCode(ctx, req.Mobile, smsCode, ExpireMinutes(s.smsCodeTTL)); err != nil {
		return errorx.Wrap(err, errorx.CodeThirdErr, "发送短信失败")
	}

	if err := s.cache.Set(ctx, SmsCodeKey(req.Mobile), smsCode, s.smsCodeTTL); err != nil {
		zap.L().Error("保存短信验证码失败", zap.Error(err))
		return errorx.Wrap(err, errorx.CodeDBError, "数据保存失败")
	}
	return nil
}

// Register 注册
//  1. 校验参数与手机号格式
//  2. 取出暂存的短信验证码并严格比较
//  3. 创建用户，昵称默认使用手机号
func (s *Service) Register(ctx context.Context, req request.RegisterRequest) (*respond.RegisterRespond, error) {
	if req.Mobile == "" || req.SmsCode == "" || req.Password == "" {
		return nil, errorx.New(errorx.CodeParamErr, "参数错误")
	}
	if !validate.IsMobile(req.Mobile) {
		return nil, errorx.New(errorx.CodeParamErr, "手机号格式不正确")
	}

	realSmsCode, err := s.cache.Get(ctx, SmsCodeKey(req.Mobile))
	if err != nil {
		zap.L().Error("查询短信验证码失败", zap.Error(err))
		return nil, errorx.Wrap(err, errorx.CodeDBError, "参数查询错误")
	}
	if realSmsCode == "" {
		return nil, errorx.New(errorx.CodeNoData, "验证码已过期")
	}
	if realSmsCode != req.SmsCode {
		return nil, errorx.New(errorx.CodeDataError, "验证码输入错误")
	}

	user := &model.UserInfo{
		Mobile:      req.Mobile,
		NickName:    req.Mobile,
		LastLogin:   s.now(),
		RawPassword: req.Password,
	}

	// 事务内出错自动回滚
	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		return tx.User.CreateUser(ctx, user)
	})
	if err != nil {
		zap.L().Error("保存用户失败", zap.Error(err), zap.String("mobile", req.Mobile))
		return nil, errorx.Wrap(err, errorx.CodeDBError, "数据保存失败")
	}

	return &respond.RegisterRespond{
		UserID:   user.ID,
		Mobile:   user.Mobile,
		NickName: user.NickName,
	}, nil
}
