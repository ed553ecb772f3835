package util

import (
	"bloodbank/pkg/core/mvc"

	"github.com/gofiber/fiber/v2"
)

// Params 合并查询参数与表单请求体参数
func Params(c *fiber.Ctx) mvc.Params {
	params := make(mvc.Params)
	c.Request().URI().QueryArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		params[k] = append(params[k], string(value))
	})
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		params[k] = append(params[k], string(value))
	})
	return params
}
