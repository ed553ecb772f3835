package logger

import (
	"strings"
	"time"

	"bloodbank/pkg/core/consts"
	errorc "bloodbank/pkg/core/err"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	Logger *Log
}

// NewApiLogger 请求日志中间件，记录状态码、耗时、方法和路径
func NewApiLogger(config Config) fiber.Handler {
	log := config.Logger.WithEntryName("API")

	return func(c *fiber.Ctx) (err error) {
		url := strings.SplitN(c.OriginalURL(), "?", 2)[0]

		start := time.Now()
		err = c.Next()
		latency := time.Since(start).Round(time.Millisecond)

		reqLog := log.WithField("status", c.Response().StatusCode()).
			WithField("latency", latency).
			WithField("method", c.Method()).
			WithField("path", url).
			WithField("TraceId", c.Locals(consts.LocalsTraceKey))

		if err != nil {
			errc := errorc.ParseError(err)
			if errorc.IsValidation(errc) {
				reqLog.WithField("Err", errc.Message()).Info("请求参数校验失败")
			} else {
				errc.ToLog(reqLog.GetLogger())
			}
			return err
		}

		reqLog.Debug("请求处理完毕")
		return nil
	}
}
