package sms

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	dysmsapi20170525 "github.com/alibabacloud-go/dysmsapi-20170525/v4/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"

	"news_server/internal/config"
	"news_server/pkg/errorx"
)

type fakeClient struct {
	req  *dysmsapi20170525.SendSmsRequest
	rsp  *dysmsapi20170525.SendSmsResponse
	err  error
	hits int
}

func (f *fakeClient) SendSmsWithOptions(req *dysmsapi20170525.SendSmsRequest, _ *util.RuntimeOptions) (*dysmsapi20170525.SendSmsResponse, error) {
	f.hits++
	f.req = req
	return f.rsp, f.err
}

func okResponse() *dysmsapi20170525.SendSmsResponse {
	return &dysmsapi20170525.SendSmsResponse{
		Body: &dysmsapi20170525.SendSmsResponseBody{Code: tea.String("OK"), Message: tea.String("OK")},
	}
}

func TestAliyunSendBuildsTemplateRequest(t *testing.T) {
	client := &fakeClient{rsp: okResponse()}
	svc := newAliyunSmsService(client, config.AuthCodeConfig{SignName: "新经资讯", TemplateCode: "SMS_1"})

	if err := svc.SendVerificationCode(context.Background(), "13800000000", "012345", 5); err != nil {
		t.Fatalf("SendVerificationCode: %v", err)
	}
	if tea.StringValue(client.req.PhoneNumbers) != "13800000000" {
		t.Fatalf("unexpected phone %q", tea.StringValue(client.req.PhoneNumbers))
	}
	if tea.StringValue(client.req.SignName) != "新经资讯" || tea.StringValue(client.req.TemplateCode) != "SMS_1" {
		t.Fatalf("unexpected sign/template %+v", client.req)
	}

	var param map[string]string
	if err := json.Unmarshal([]byte(tea.StringValue(client.req.TemplateParam)), &param); err != nil {
		t.Fatalf("template param is not json: %v", err)
	}
	if param["code"] != "012345" || param["minutes"] != "5" {
		t.Fatalf("unexpected template param %v", param)
	}
}

func TestAliyunDefaultsSignAndTemplate(t *testing.T) {
	client := &fakeClient{rsp: okResponse()}
	svc := newAliyunSmsService(client, config.AuthCodeConfig{})
	_ = svc.SendVerificationCode(context.Background(), "13800000000", "000001", 5)

	if tea.StringValue(client.req.SignName) != defaultSignName || tea.StringValue(client.req.TemplateCode) != defaultTemplateCode {
		t.Fatalf("expected default sign/template, got %+v", client.req)
	}
}

func TestAliyunFailuresAreThirdErr(t *testing.T) {
	cases := map[string]*fakeClient{
		"transport": {err: errors.New("dial tcp: timeout")},
		"biz code": {rsp: &dysmsapi20170525.SendSmsResponse{
			Body: &dysmsapi20170525.SendSmsResponseBody{Code: tea.String("isv.BUSINESS_LIMIT_CONTROL")},
		}},
		"empty body": {rsp: &dysmsapi20170525.SendSmsResponse{}},
	}
	for name, client := range cases {
		t.Run(name, func(t *testing.T) {
			svc := newAliyunSmsService(client, config.AuthCodeConfig{})
			err := svc.SendVerificationCode(context.Background(), "13800000000", "123456", 5)
			if errorx.GetCode(err) != errorx.CodeThirdErr {
				t.Fatalf("expected THIRDERR got %v", err)
			}
		})
	}
}

func TestShouldUseMock(t *testing.T) {
	t.Setenv("NEWS_SMS_MODE", "")
	if !shouldUseMock(config.AuthCodeConfig{}) {
		t.Fatalf("empty keys must use mock")
	}
	if !shouldUseMock(config.AuthCodeConfig{AccessKeyID: "your accessKey id", AccessKeySecret: "x"}) {
		t.Fatalf("placeholder keys must use mock")
	}
	configured := config.AuthCodeConfig{AccessKeyID: "LTAI5t", AccessKeySecret: "secret"}
	if shouldUseMock(configured) {
		t.Fatalf("configured keys must not use mock")
	}
	t.Setenv("NEWS_SMS_MODE", "mock")
	if !shouldUseMock(configured) {
		t.Fatalf("NEWS_SMS_MODE=mock must force mock")
	}
}

func TestInitMockMode(t *testing.T) {
	t.Setenv("NEWS_SMS_MODE", "mock")
	svc, err := Init(config.AuthCodeConfig{})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := svc.SendVerificationCode(context.Background(), "13800000000", "123456", 5); err != nil {
		t.Fatalf("mock send: %v", err)
	}
}
