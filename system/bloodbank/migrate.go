package bloodbank

import (
	"bloodbank/pkg/core/logger"
	"bloodbank/system/bloodbank/internal/model"

	"gorm.io/gorm"
)

// Models 血库组件的表
func Models() []interface{} {
	return []interface{}{&model.BloodBank{}}
}

// AutoMigrate 自动执行血库组件的数据库迁移
func AutoMigrate(db *gorm.DB, log *logger.Log) error {
	log.Info("开始迁移血库组件表...")

	if err := db.AutoMigrate(Models()...); err != nil {
		log.WithErr(err).Error("血库组件表迁移失败")
		return err
	}

	log.Info("血库组件表迁移完成")
	return nil
}
