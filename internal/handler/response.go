package handler

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"news_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ResponseData 统一响应结构体
type ResponseData struct {
	Errno  string `json:"errno"`  // 业务响应状态码
	Errmsg string `json:"errmsg"` // 提示信息
}

// HandleSuccess 返回成功响应
func HandleSuccess(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, ResponseData{
		Errno:  errorx.CodeOK,
		Errmsg: msg,
	})
}

// HandleError 通用错误处理方法
// 自动识别 errorx.CodeError 类型的业务错误，其他错误记录日志后返回 SERVERERR
func HandleError(c *gin.Context, err error) {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		c.JSON(http.StatusOK, ResponseData{
			Errno:  codeErr.Code,
			Errmsg: codeErr.Msg,
		})
		return
	}

	zap.L().Error("system error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.JSON(http.StatusOK, ResponseData{
		Errno:  errorx.ErrInternal.Code,
		Errmsg: errorx.ErrInternal.Msg,
	})
}

// HandleParamError 处理参数绑定错误（带 validator 翻译支持）
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && Trans != nil {
		translated := RemoveTopStruct(validationErrs.Translate(Trans))
		c.JSON(http.StatusOK, ResponseData{
			Errno:  errorx.ErrParam.Code,
			Errmsg: joinMessages(translated),
		})
		return
	}

	// 非 validator 错误（如 JSON 格式错误、请求体为空）
	zap.L().Debug("param bind error", zap.Error(err))
	c.JSON(http.StatusOK, ResponseData{
		Errno:  errorx.ErrParam.Code,
		Errmsg: errorx.ErrParam.Msg,
	})
}

// joinMessages 按字段名排序后拼接翻译结果，保证输出稳定
func joinMessages(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fields[k])
	}
	return strings.Join(msgs, "; ")
}
