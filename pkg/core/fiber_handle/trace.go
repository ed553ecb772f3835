package fiber_handle

import (
	"context"

	"bloodbank/pkg/core/consts"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/satori/go.uuid"
)

// TraceHeaderName 上游透传链路ID使用的请求头
const TraceHeaderName = "X-Request-Id"

// NewTracer 为每个请求生成链路ID，写入 UserContext、Locals 和响应头
func NewTracer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := c.Get(TraceHeaderName)
		if traceID == "" {
			traceID = uuid.NewV4().String()
		}

		ctx := context.WithValue(c.UserContext(), consts.TraceKey, traceID)
		c.SetUserContext(ctx)
		c.Locals(consts.LocalsTraceKey, traceID)
		c.Set(TraceHeaderName, traceID)
		return c.Next()
	}
}
