package person

import (
	"bloodbank/pkg/core/logger"
	"bloodbank/system/person/internal/model"

	"gorm.io/gorm"
)

// Models 人员组件的表
func Models() []interface{} {
	return []interface{}{&model.Person{}}
}

// AutoMigrate 自动执行人员组件的数据库迁移
func AutoMigrate(db *gorm.DB, log *logger.Log) error {
	log.Info("开始迁移人员组件表...")

	if err := db.AutoMigrate(Models()...); err != nil {
		log.WithErr(err).Error("人员组件表迁移失败")
		return err
	}

	log.Info("人员组件表迁移完成")
	return nil
}
