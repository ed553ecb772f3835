package blooddonation

import (
	"bloodbank/pkg/core/metrics"
	"bloodbank/pkg/core/view"
	bankclient "bloodbank/system/bloodbank/api/client"
	"bloodbank/system/blooddonation/api/client"
	"bloodbank/system/blooddonation/internal/app"

	"gorm.io/gorm"
)

// Module 献血组件模块门面
type Module struct {
	internalApp *app.App
	// Client 对外客户端，供献血记录组件查询献血
	Client  *client.BloodDonationClient
	views   *view.Renderer
	metrics *metrics.Metrics
}

// NewModule 创建献血组件模块
func NewModule(db *gorm.DB, banks *bankclient.BloodBankClient, views *view.Renderer, m *metrics.Metrics) *Module {
	internalApp := app.NewApp(db, banks)

	return &Module{
		internalApp: internalApp,
		Client:      client.NewBloodDonationClient(internalApp),
		views:       views,
		metrics:     m,
	}
}
