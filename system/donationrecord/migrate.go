package donationrecord

import (
	"bloodbank/pkg/core/logger"
	"bloodbank/system/donationrecord/internal/model"

	"gorm.io/gorm"
)

// Models 献血登记组件的表
func Models() []interface{} {
	return []interface{}{&model.DonationRecord{}}
}

// AutoMigrate 自动执行献血登记组件的数据库迁移
func AutoMigrate(db *gorm.DB, log *logger.Log) error {
	log.Info("开始迁移献血登记组件表...")

	if err := db.AutoMigrate(Models()...); err != nil {
		log.WithErr(err).Error("献血登记组件表迁移失败")
		return err
	}

	log.Info("献血登记组件表迁移完成")
	return nil
}
