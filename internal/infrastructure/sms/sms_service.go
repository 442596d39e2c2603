package sms

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dysmsapi20170525 "github.com/alibabacloud-go/dysmsapi-20170525/v4/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	"go.uber.org/zap"

	"news_server/internal/config"
	"news_server/pkg/errorx"
)

const (
	defaultSignName     = "阿里云短信测试"
	defaultTemplateCode = "SMS_154950909"
	aliyunEndpoint      = "dysmsapi.aliyuncs.com"
	aliyunOK            = "OK"
)

// smsClient 阿里云客户端中本服务用到的方法，便于测试替换
type smsClient interface {
	SendSmsWithOptions(request *dysmsapi20170525.SendSmsRequest, runtime *util.RuntimeOptions) (*dysmsapi20170525.SendSmsResponse, error)
}

// Init 根据配置创建短信服务
// 未配置真实 AccessKey 或设置 NEWS_SMS_MODE=mock 时使用本地 mock 实现
func Init(authCfg config.AuthCodeConfig) (SmsService, error) {
	if shouldUseMock(authCfg) {
		zap.L().Warn("SMS Service 使用本地 Mock 模式（不调用第三方短信）")
		return &localSmsService{}, nil
	}

	conf := &openapi.Config{
		AccessKeyId:     tea.String(authCfg.AccessKeyID),
		AccessKeySecret: tea.String(authCfg.AccessKeySecret),
		Endpoint:        tea.String(aliyunEndpoint),
	}
	client, err := dysmsapi20170525.NewClient(conf)
	if err != nil {
		zap.L().Error("Aliyun SMS Client Init Failed", zap.Error(err))
		return nil, err
	}
	return newAliyunSmsService(client, authCfg), nil
}

func shouldUseMock(auth config.AuthCodeConfig) bool {
	mode := strings.ToLower(strings.TrimSpace(os.Getenv("NEWS_SMS_MODE")))
	if mode == "mock" || mode == "local" || mode == "test" {
		return true
	}
	// configs/config.toml 默认是占位字符串
	ak := strings.ToLower(strings.TrimSpace(auth.AccessKeyID))
	ask := strings.ToLower(strings.TrimSpace(auth.AccessKeySecret))
	if ak == "" || ask == "" {
		return true
	}
	return strings.Contains(ak, "your accesskey") || strings.Contains(ask, "your accesskey")
}

// aliyunSmsService 阿里云短信服务实现
type aliyunSmsService struct {
	client       smsClient
	signName     string
	templateCode string
}

func newAliyunSmsService(client smsClient, authCfg config.AuthCodeConfig) *aliyunSmsService {
	signName := authCfg.SignName
	if signName == "" {
		signName = defaultSignName
	}
	templateCode := authCfg.TemplateCode
	if templateCode == "" {
		templateCode = defaultTemplateCode
	}
	return &aliyunSmsService{
		client:       client,
		signName:     signName,
		templateCode: templateCode,
	}
}

// SendVerificationCode 调用阿里云模板短信接口
// 模板变量：${code} 验证码，${minutes} 有效分钟数
func (s *aliyunSmsService) SendVerificationCode(ctx context.Context, telephone string, code string, expireMinutes int) error {
	if s.client == nil {
		return errorx.New(errorx.CodeThirdErr, "短信服务未初始化")
	}

	param, err := json.Marshal(map[string]string{
		"code":    code,
		"minutes": strconv.Itoa(expireMinutes),
	})
	if err != nil {
		return errorx.Wrap(err, errorx.CodeThirdErr, "构造短信模板参数失败")
	}

	req := &dysmsapi20170525.SendSmsRequest{
		SignName:      tea.String(s.signName),
		TemplateCode:  tea.String(s.templateCode),
		PhoneNumbers:  tea.String(telephone),
		TemplateParam: tea.String(string(param)),
	}

	rsp, err := s.client.SendSmsWithOptions(req, &util.RuntimeOptions{})
	if err != nil {
		zap.L().Error("调用阿里云短信接口发生系统级错误", zap.Error(err), zap.String("mobile", telephone))
		return errorx.Wrap(err, errorx.CodeThirdErr, "发送短信失败")
	}

	// 即使 err 为 nil，也需要看 Body.Code 是否为 "OK"
	if rsp == nil || rsp.Body == nil || tea.StringValue(rsp.Body.Code) != aliyunOK {
		var bizCode, bizMsg string
		if rsp != nil && rsp.Body != nil {
			bizCode = tea.StringValue(rsp.Body.Code)
			bizMsg = tea.StringValue(rsp.Body.Message)
		}
		zap.L().Error("阿里云短信发送失败",
			zap.String("mobile", telephone),
			zap.String("code", bizCode),
			zap.String("message", bizMsg),
		)
		return errorx.Newf(errorx.CodeThirdErr, "发送短信失败: %s", bizCode)
	}

	zap.L().Info("短信发送接口响应", zap.String("response", tea.StringValue(util.ToJSONString(rsp))))
	return nil
}

// localSmsService 本地 mock 实现，只打印验证码
type localSmsService struct{}

func (s *localSmsService) SendVerificationCode(ctx context.Context, telephone string, code string, expireMinutes int) error {
	zap.L().Info("【MockSMS】发送验证码",
		zap.String("mobile", telephone),
		zap.String("code", code),
		zap.Int("expire_minutes", expireMinutes),
	)
	return nil
}
