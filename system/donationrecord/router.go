package donationrecord

import (
	controller "bloodbank/system/donationrecord/external/http"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes 注册献血登记组件的所有 HTTP 路由
func RegisterRoutes(m *Module, web, api fiber.Router) {
	controller.NewDonationRecordController(m.internalApp, m.views, m.metrics).RegisterRoutes(web)
	controller.NewDonationRecordAPIController(m.internalApp, m.metrics).RegisterRoutes(api)
}
