package handler

import (
	"fmt"
	"reflect"
	"strings"

	"news_server/pkg/util/validate"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
)

// Trans 全局翻译器，供 response.go 翻译参数校验错误
var Trans ut.Translator

// mobileTag 自定义手机号校验 tag，用法 binding:"required,mobile"
const mobileTag = "mobile"

// InitTrans 初始化 gin 的校验引擎与翻译器
// locale 支持 "zh" 和 "en"，其他值回退到英文
func InitTrans(locale string) (err error) {
	// Gin v1.9+ 中 binding.Validator 可能为 nil
	if binding.Validator == nil {
		binding.Validator = &defaultValidator{validator: validator.New()}
	}

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	// 错误信息使用 json tag 作为字段名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err = v.RegisterValidation(mobileTag, func(fl validator.FieldLevel) bool {
		return validate.IsMobile(fl.Field().String())
	}); err != nil {
		return err
	}

	enT := en.New()
	uni := ut.New(enT, zh.New(), enT)
	Trans, ok = uni.GetTranslator(locale)
	if !ok {
		return fmt.Errorf("uni.GetTranslator(%s) failed", locale)
	}

	mobileMsg := "{0} is not a valid mobile number"
	switch locale {
	case "zh":
		err = zh_translations.RegisterDefaultTranslations(v, Trans)
		mobileMsg = "{0}格式不正确"
	default:
		err = en_translations.RegisterDefaultTranslations(v, Trans)
	}
	if err != nil {
		return err
	}

	return v.RegisterTranslation(mobileTag, Trans,
		func(t ut.Translator) error {
			return t.Add(mobileTag, mobileMsg, true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(mobileTag, fe.Field())
			return msg
		},
	)
}

// RemoveTopStruct 去除提示信息中的结构体名称，如 "SmsCodeRequest.mobile" -> "mobile"
func RemoveTopStruct(fields map[string]string) map[string]string {
	res := make(map[string]string, len(fields))
	for field, err := range fields {
		res[field[strings.Index(field, ".")+1:]] = err
	}
	return res
}

// defaultValidator 实现 binding.StructValidator
type defaultValidator struct {
	validator *validator.Validate
}

func (v *defaultValidator) ValidateStruct(obj interface{}) error {
	return v.validator.Struct(obj)
}

func (v *defaultValidator) Engine() interface{} {
	return v.validator
}
