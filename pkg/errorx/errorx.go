package errorx

import (
	"errors"
	"fmt"
)

// CodeError 带业务错误码（errno）的自定义错误
// 实现了 error 接口，支持 %w 包装底层错误，且能被 errors.Is/errors.As 识别
type CodeError struct {
	Code  string // 业务错误码，对应响应中的 errno
	Msg   string // 错误消息，对应响应中的 errmsg
	cause error  // 被包装的底层错误
}

// Error 实现 Go 标准 error 接口
// 当存在底层错误时，返回格式为 "消息: 底层错误"；否则仅返回消息
func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap 支持 errors.Is/errors.As 向下追溯
func (e *CodeError) Unwrap() error {
	return e.cause
}

// Is 按错误码比较，使 errors.Is(err, ErrParam) 对任意 PARAMERR 错误成立
func (e *CodeError) Is(target error) bool {
	t, ok := target.(*CodeError)
	if !ok {
		return false
	}
	return t.cause == nil && t.Code == e.Code
}

// New 创建一个新的 CodeError
func New(code string, msg string) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  msg,
	}
}

// Newf 创建一个带格式化消息的 CodeError
func Newf(code string, format string, args ...any) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap 包装底层错误，添加业务错误码和消息
// 用法: errorx.Wrap(err, CodeDBError, "数据保存失败")
func Wrap(err error, code string, msg string) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf 包装底层错误，支持格式化消息
func Wrapf(err error, code string, format string, args ...any) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// GetCode 从错误中提取业务错误码，如果不是 CodeError 则返回 CodeServerError
func GetCode(err error) string {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerError
}

// 业务状态码常量定义（errno）
const (
	CodeOK          = "0"    // 成功
	CodeDBError     = "4001" // 数据库（含缓存）查询/写入错误
	CodeNoData      = "4002" // 无数据（验证码不存在或已过期）
	CodeDataExist   = "4003" // 数据已存在
	CodeDataError   = "4004" // 数据错误（验证码不一致）
	CodeSessionErr  = "4101" // 用户未登录
	CodeLoginErr    = "4102" // 用户登录失败
	CodeParamErr    = "4103" // 参数错误
	CodeUserErr     = "4104" // 用户不存在或未激活
	CodeRoleErr     = "4105" // 用户身份错误
	CodePwdErr      = "4106" // 密码错误
	CodeReqErr      = "4201" // 非法请求或请求次数受限
	CodeIPErr       = "4202" // IP 受限
	CodeThirdErr    = "4301" // 第三方系统错误
	CodeIOErr       = "4302" // 文件读写错误
	CodeServerError = "4500" // 内部错误
	CodeUnknownErr  = "4501" // 未知错误
)

// 预定义常用错误实例
// 这些实例既可直接返回，也可用于 errors.Is 比较
var (
	ErrParam    = New(CodeParamErr, "参数错误")
	ErrInternal = New(CodeServerError, "内部错误")
)
