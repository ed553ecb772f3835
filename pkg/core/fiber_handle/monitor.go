package fiber_handle

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Recorder 接收接口调用耗时
type Recorder interface {
	ObserveRequest(method, path string, status int, duration time.Duration)
}

// MonitorConfig 监控配置
type MonitorConfig struct {
	Recorder Recorder
}

// FilterFunc 过滤器函数类型，返回 false 时跳过监控
type FilterFunc func(c *fiber.Ctx) bool

// NewAPIMonitor 创建 API 监控中间件
func NewAPIMonitor(config MonitorConfig, filters ...FilterFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if config.Recorder == nil {
			return c.Next()
		}

		for _, filter := range filters {
			if !filter(c) {
				return c.Next()
			}
		}

		startTime := time.Now()
		err := c.Next()

		// 优先使用路由路径，避免把 ID 带进标签
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}

		status := c.Response().StatusCode()
		if err != nil {
			// 错误尚未经过 ErrorHandler，状态码按错误类型推断
			status = errorStatus(err)
		}
		config.Recorder.ObserveRequest(c.Method(), path, status, time.Since(startTime))
		return err
	}
}

// SkipPaths 跳过指定前缀的请求
func SkipPaths(prefixes ...string) FilterFunc {
	return func(c *fiber.Ctx) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(c.Path(), p) {
				return false
			}
		}
		return true
	}
}
