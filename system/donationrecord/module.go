package donationrecord

import (
	"bloodbank/pkg/core/metrics"
	"bloodbank/pkg/core/view"
	donationclient "bloodbank/system/blooddonation/api/client"
	"bloodbank/system/donationrecord/internal/app"
	personclient "bloodbank/system/person/api/client"

	"gorm.io/gorm"
)

// Module 献血登记组件模块门面
type Module struct {
	internalApp *app.App
	views       *view.Renderer
	metrics     *metrics.Metrics
}

// NewModule 创建献血登记组件模块，献血人和献血通过对应组件的客户端校验
func NewModule(db *gorm.DB, persons *personclient.PersonClient, donations *donationclient.BloodDonationClient, views *view.Renderer, m *metrics.Metrics) *Module {
	return &Module{
		internalApp: app.NewApp(db, persons, donations),
		views:       views,
		metrics:     m,
	}
}
