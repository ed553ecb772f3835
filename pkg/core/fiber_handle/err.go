package fiber_handle

import (
	"errors"
	"strings"

	errorc "bloodbank/pkg/core/err"

	"github.com/gofiber/fiber/v2"
)

// ErrHandler 统一错误出口：/api 下返回 JSON，其余返回错误页
func ErrHandler(ctx *fiber.Ctx, err error) error {
	var e *fiber.Error
	if errors.As(err, &e) {
		return ctx.Status(e.Code).SendString(e.Message)
	}

	cError := errorc.ParseError(err)
	status := cError.StatusCode()

	if strings.HasPrefix(ctx.Path(), "/api") {
		return ctx.Status(status).JSON(fiber.Map{
			"status":  status,
			"message": cError.Message(),
			"traceId": cError.TraceID,
		})
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return ctx.Status(status).SendString(cError.Message())
}

func errorStatus(err error) int {
	var e *fiber.Error
	if errors.As(err, &e) {
		return e.Code
	}
	return errorc.ParseError(err).StatusCode()
}
