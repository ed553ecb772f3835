package bloodbank

import (
	"bloodbank/pkg/core/metrics"
	"bloodbank/pkg/core/view"
	"bloodbank/system/bloodbank/api/client"
	"bloodbank/system/bloodbank/internal/app"
	personclient "bloodbank/system/person/api/client"

	"gorm.io/gorm"
)

// Module 血库组件模块门面
type Module struct {
	internalApp *app.App
	// Client 对外客户端，供献血组件查询血库
	Client  *client.BloodBankClient
	views   *view.Renderer
	metrics *metrics.Metrics
}

// NewModule 创建血库组件模块，所有人通过人员组件客户端校验
func NewModule(db *gorm.DB, persons *personclient.PersonClient, views *view.Renderer, m *metrics.Metrics) *Module {
	internalApp := app.NewApp(db, persons)

	return &Module{
		internalApp: internalApp,
		Client:      client.NewBloodBankClient(internalApp),
		views:       views,
		metrics:     m,
	}
}
