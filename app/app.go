package app

import (
	"bloodbank/pkg/core/metrics"
	"bloodbank/pkg/core/view"
	"bloodbank/system/bloodbank"
	"bloodbank/system/blooddonation"
	"bloodbank/system/donationrecord"
	"bloodbank/system/person"

	"gorm.io/gorm"
)

// App 应用组合根，持有各业务组件模块
//
// 组件之间只通过对方的 api/client 交互，创建顺序即依赖顺序：
// 人员 → 血库 → 献血 → 献血登记。
type App struct {
	PersonModule         *person.Module
	BloodBankModule      *bloodbank.Module
	BloodDonationModule  *blooddonation.Module
	DonationRecordModule *donationrecord.Module

	Metrics *metrics.Metrics
}

// NewApp 创建应用组合根
func NewApp(db *gorm.DB, views *view.Renderer, m *metrics.Metrics) *App {
	personModule := person.NewModule(db, views, m)
	bankModule := bloodbank.NewModule(db, personModule.Client, views, m)
	donationModule := blooddonation.NewModule(db, bankModule.Client, views, m)
	recordModule := donationrecord.NewModule(db, personModule.Client, donationModule.Client, views, m)

	return &App{
		PersonModule:         personModule,
		BloodBankModule:      bankModule,
		BloodDonationModule:  donationModule,
		DonationRecordModule: recordModule,
		Metrics:              m,
	}
}
