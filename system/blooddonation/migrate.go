package blooddonation

import (
	"bloodbank/pkg/core/logger"
	"bloodbank/system/blooddonation/internal/model"

	"gorm.io/gorm"
)

// Models 献血组件的表
func Models() []interface{} {
	return []interface{}{&model.BloodDonation{}}
}

// AutoMigrate 自动执行献血组件的数据库迁移
func AutoMigrate(db *gorm.DB, log *logger.Log) error {
	log.Info("开始迁移献血组件表...")

	if err := db.AutoMigrate(Models()...); err != nil {
		log.WithErr(err).Error("献血组件表迁移失败")
		return err
	}

	log.Info("献血组件表迁移完成")
	return nil
}
