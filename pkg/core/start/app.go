package start

import (
	"fmt"

	"bloodbank/pkg/core/fiber_handle"
	"bloodbank/pkg/core/logger"

	"github.com/gofiber/fiber/v2"
	recover2 "github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func GetApp(log *logger.Log) *fiber.App {
	app := fiber.New(
		fiber.Config{
			BodyLimit:    4 * 1024 * 1024,
			ErrorHandler: fiber_handle.ErrHandler,
			JSONEncoder:  json.Marshal,
			JSONDecoder:  json.Unmarshal,
		})
	app.Use(recover2.New(recover2.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.WithField("path", c.Path()).Error(fmt.Sprintf("请求处理崩溃: %+v", e))
		},
	}))
	app.Use(fiber_handle.HealthCheck(fiber_handle.HealthCheckConfig{Path: "/health"}))
	app.Use(fiber_handle.NewTracer())
	app.Use(logger.NewApiLogger(logger.Config{Logger: log}))
	return app
}
