package router

import (
	"bloodbank/app"
	"bloodbank/pkg/core/config"
	"bloodbank/pkg/core/fiber_handle"
	"bloodbank/system/bloodbank"
	"bloodbank/system/blooddonation"
	"bloodbank/system/donationrecord"
	"bloodbank/system/person"

	"github.com/gofiber/fiber/v2"
)

// Register 负责集中注册所有 HTTP 路由。
//   - 只依赖 app.App（业务编排入口）和 fiber.App（HTTP Server）。
//   - 不直接依赖任何 DAO / Service / system/internal 包。
//   - 不包含业务逻辑，只做分组与路由绑定。
func Register(a *app.App, f *fiber.App, mc config.MetricsConfig) {
	f.Use(fiber_handle.NewAPIMonitor(
		fiber_handle.MonitorConfig{Recorder: a.Metrics},
		fiber_handle.SkipPaths("/health", mc.Path, "/static"),
	))
	if mc.Enabled {
		f.Get(mc.Path, a.Metrics.Handler())
	}

	f.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/BloodBankTable", fiber.StatusFound)
	})

	// 页面路由挂在根路径，JSON 接口统一在 /api 下
	api := f.Group("/api")

	person.RegisterRoutes(a.PersonModule, f, api)
	bloodbank.RegisterRoutes(a.BloodBankModule, f, api)
	blooddonation.RegisterRoutes(a.BloodDonationModule, f, api)
	donationrecord.RegisterRoutes(a.DonationRecordModule, f, api)
}
