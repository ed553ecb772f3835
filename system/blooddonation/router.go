package blooddonation

import (
	controller "bloodbank/system/blooddonation/external/http"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes 注册献血组件的所有 HTTP 路由
func RegisterRoutes(m *Module, web, api fiber.Router) {
	controller.NewBloodDonationController(m.internalApp, m.views, m.metrics).RegisterRoutes(web)
	controller.NewBloodDonationAPIController(m.internalApp, m.metrics).RegisterRoutes(api)
}
