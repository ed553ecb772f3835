package app

import (
	"time"

	"bloodbank/pkg/core/logger"
	"bloodbank/pkg/core/start"

	"github.com/gofiber/fiber/v2"
)

// GetApp 创建 Fiber 应用并挂载静态资源
func GetApp(log *logger.Log, staticPath string) *fiber.App {
	app := start.GetApp(log)

	RegisterStaticFiles(app, staticPath, "/static")

	return app
}

// RegisterStaticFiles 配置静态文件服务，用于页面的样式表等资源
func RegisterStaticFiles(app *fiber.App, staticPath string, prefixPath string) {
	if staticPath == "" {
		return
	}

	app.Static(prefixPath, staticPath, fiber.Static{
		Compress:      true,
		ByteRange:     true,
		Browse:        false, // 禁止目录浏览
		CacheDuration: 10 * time.Minute,
	})

	logger.GetLogger().WithField("path", staticPath).WithField("prefix", prefixPath).Info("已注册静态文件服务")
}
