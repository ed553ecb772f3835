package person

import (
	controller "bloodbank/system/person/external/http"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes 注册人员组件的所有 HTTP 路由
func RegisterRoutes(m *Module, web, api fiber.Router) {
	controller.NewPersonController(m.internalApp, m.views, m.metrics).RegisterRoutes(web)
	controller.NewPersonAPIController(m.internalApp, m.metrics).RegisterRoutes(api)
}
