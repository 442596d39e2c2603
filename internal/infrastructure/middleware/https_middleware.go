package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

// TlsHandler 将 HTTP 请求重定向到 HTTPS，并附加基础安全响应头
func TlsHandler(host string, port int) gin.HandlerFunc {
	secureMiddleware := secure.New(secure.Options{
		SSLRedirect:        true,
		SSLHost:            host + ":" + strconv.Itoa(port),
		FrameDeny:          true,
		ContentTypeNosniff: true,
	})

	return func(c *gin.Context) {
		// 重定向时 Process 已写好响应并返回错误
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			zap.L().Warn("TLS redirection", zap.Error(err), zap.String("path", c.Request.URL.Path))
			c.Abort()
			return
		}
		c.Next()
	}
}
