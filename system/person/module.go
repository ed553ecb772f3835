package person

import (
	"bloodbank/pkg/core/metrics"
	"bloodbank/pkg/core/view"
	"bloodbank/system/person/api/client"
	"bloodbank/system/person/internal/app"

	"gorm.io/gorm"
)

// Module 人员组件模块门面
type Module struct {
	// internalApp 内部应用实例，仅供组件内部使用
	internalApp *app.App
	// Client 对外客户端，供血库和献血记录组件查询人员
	Client  *client.PersonClient
	views   *view.Renderer
	metrics *metrics.Metrics
}

// NewModule 创建人员组件模块
func NewModule(db *gorm.DB, views *view.Renderer, m *metrics.Metrics) *Module {
	internalApp := app.NewApp(db)

	return &Module{
		internalApp: internalApp,
		Client:      client.NewPersonClient(internalApp),
		views:       views,
		metrics:     m,
	}
}
