package bloodbank

import (
	controller "bloodbank/system/bloodbank/external/http"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes 注册血库组件的所有 HTTP 路由
func RegisterRoutes(m *Module, web, api fiber.Router) {
	controller.NewBloodBankController(m.internalApp, m.views, m.metrics).RegisterRoutes(web)
	controller.NewBloodBankAPIController(m.internalApp, m.metrics).RegisterRoutes(api)
}
