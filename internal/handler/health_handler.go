package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// healthTimeout 单个依赖的探测超时
const healthTimeout = 2 * time.Second

// Pinger 可探活的外部依赖
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler 依赖探活处理器
type HealthHandler struct {
	names   []string
	pingers map[string]Pinger
}

// NewHealthHandler 按传入顺序输出各依赖状态
func NewHealthHandler(names []string, pingers map[string]Pinger) *HealthHandler {
	return &HealthHandler{names: names, pingers: pingers}
}

// Check 探测所有依赖
// GET /health
// 全部正常返回 200，否则返回 503
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	status := http.StatusOK
	deps := make(gin.H, len(h.names))
	for _, name := range h.names {
		p, ok := h.pingers[name]
		if !ok || p == nil {
			continue
		}
		if err := p.Ping(ctx); err != nil {
			deps[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	c.JSON(status, gin.H{
		"status":    deps,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}
